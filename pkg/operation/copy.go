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

package operation

import (
	"context"
	"fmt"

	"github.com/walteh/remodel/pkg/log"
	"github.com/walteh/remodel/pkg/status"
)

// 📦 copyOperation copies the source tree into the destination
type copyOperation struct {
	tree   *status.Manager
	source string
	ignore []string
}

func newCopyOperation(tree *status.Manager, source string, ignore []string) Operation {
	return &copyOperation{tree: tree, source: source, ignore: ignore}
}

func (op *copyOperation) Name() string { return "copy" }

// 🏃 Execute runs the copy operation
func (op *copyOperation) Execute(ctx context.Context) error {
	n, err := status.CopyTree(ctx, op.source, op.tree.Root(), op.ignore)
	if err != nil {
		return err
	}

	log.FromContext(ctx).Infof("%s is copied to %s", op.source, op.tree.Root())
	op.tree.TrackFile(ctx, status.FileEntry{
		Path:   ".",
		Status: status.StatusCopied,
		Detail: fmt.Sprintf("%d files from %s", n, op.source),
	})
	return nil
}
