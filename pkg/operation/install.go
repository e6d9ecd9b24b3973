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
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/walteh/remodel/pkg/log"
	"github.com/walteh/remodel/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// InstallSubdir is where the application looks for custom objects, below
// the Program Files directory.
const InstallSubdir = "Steam/steamapps/common/FaceRig/Mod/VP/PC_CustomData/Objects"

// 💻 Platform describes the machine the install step targets
type Platform struct {
	GOOS   string
	GOARCH string
	Getenv func(string) string
}

// HostPlatform returns the running machine.
func HostPlatform() Platform {
	return Platform{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		Getenv: os.Getenv,
	}
}

// InstallRoot returns the application's object directory. ok is false
// off windows or when Program Files is unknown.
func (p Platform) InstallRoot() (dir string, ok bool) {
	if p.GOOS != "windows" || p.Getenv == nil {
		return "", false
	}

	env := "ProgramFiles"
	if p.GOARCH == "amd64" {
		env = "ProgramFiles(x86)"
	}

	base := p.Getenv(env)
	if base == "" {
		return "", false
	}
	return filepath.Join(base, filepath.FromSlash(InstallSubdir)), true
}

// install copies the finished tree into the application. Everything that
// prevents it is a warning, not a failure, except I/O errors.
func (o *operator) install(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	console := log.FromContext(ctx)
	after := o.job.After()

	root := o.config.Install.Dir
	if root == "" {
		dir, ok := o.platform.InstallRoot()
		if !ok {
			console.Warningf("install is only supported on windows (running on %s), skipped", o.platform.GOOS)
			return nil
		}
		root = dir
	}

	exists, isDir, err := status.Exists(root)
	if err != nil {
		return err
	}
	if !exists || !isDir {
		console.Warningf("%s is not found, install is skipped", root)
		return nil
	}

	target := filepath.Join(root, after)
	exists, _, err = status.Exists(target)
	if err != nil {
		return err
	}
	if exists {
		if !o.job.Force {
			ok, err := o.confirm(ctx, fmt.Sprintf("%s already exists, remove it and install?", target))
			if err != nil {
				return err
			}
			if !ok {
				console.Warningf("install to %s is skipped", target)
				return nil
			}
		}
		if err := status.RemoveTree(ctx, target); err != nil {
			return errors.Errorf("removing installed copy: %w", err)
		}
	}

	logger.Debug().Str("target", target).Msg("installing")
	if _, err := status.CopyTree(ctx, o.job.Destination, target, nil); err != nil {
		return err
	}

	o.tree.TrackFile(ctx, status.FileEntry{
		Path:   after,
		Status: status.StatusInstalled,
		Detail: target,
	})
	return nil
}
