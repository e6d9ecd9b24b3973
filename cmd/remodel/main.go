// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/walteh/remodel/pkg/operation"
	"github.com/walteh/remodel/pkg/status"
	"gitlab.com/tozd/go/errors"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitConfig   = 2
	exitCanceled = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, nil)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, ro *rootOpts) int {
	cmd := newRootCmd(stdout, stderr, ro)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, status.NewDefaultFileFormatter().FormatError(err))
	}
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, operation.ErrOperationCanceled):
		return exitCanceled
	case errors.Is(err, operation.ErrConfig):
		return exitConfig
	default:
		return exitFailure
	}
}
