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

package status

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	cp "github.com/otiai10/copy"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Exists reports whether path exists and whether it is a directory.
func Exists(path string) (exists bool, isDir bool, err error) {
	fi, err := os.Stat(path)
	if err == nil {
		return true, fi.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, false, nil
	}
	return false, false, errors.Errorf("checking %s: %w", path, err)
}

// RemoveTree deletes path and everything below it.
func RemoveTree(ctx context.Context, path string) error {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("removing tree")
	if err := os.RemoveAll(path); err != nil {
		return errors.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// CopyTree copies src into dst recursively. Entries whose slash separated
// path relative to src matches one of the ignore globs are skipped. It
// returns the number of regular files copied.
func CopyTree(ctx context.Context, src, dst string, ignore []string) (int, error) {
	logger := zerolog.Ctx(ctx)

	for _, pattern := range ignore {
		if !doublestar.ValidatePattern(pattern) {
			return 0, errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	copied := 0
	err := cp.Copy(src, dst, cp.Options{
		OnSymlink: func(string) cp.SymlinkAction {
			return cp.Deep
		},
		Skip: func(info os.FileInfo, path, _ string) (bool, error) {
			rel, err := filepath.Rel(src, path)
			if err != nil {
				return false, err
			}
			rel = filepath.ToSlash(rel)
			for _, pattern := range ignore {
				if ok, _ := doublestar.Match(pattern, rel); ok {
					logger.Debug().Str("file", rel).Str("pattern", pattern).Msg("file ignored by pattern")
					return true, nil
				}
			}
			if info.Mode().IsRegular() {
				copied++
			}
			return false, nil
		},
	})
	if err != nil {
		return 0, errors.Errorf("copying %s to %s: %w", src, dst, err)
	}

	return copied, nil
}

// Prune removes every empty directory below root, deepest first, and
// returns their slash separated paths relative to root. root itself is
// kept.
func Prune(ctx context.Context, root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	// children sort after their parents, so walk backwards
	sort.Strings(dirs)

	var pruned []string
	for i := len(dirs) - 1; i >= 0; i-- {
		entries, err := os.ReadDir(dirs[i])
		if err != nil {
			return nil, errors.Errorf("reading %s: %w", dirs[i], err)
		}
		if len(entries) > 0 {
			continue
		}
		if err := os.Remove(dirs[i]); err != nil {
			return nil, errors.Errorf("removing %s: %w", dirs[i], err)
		}
		rel, _ := filepath.Rel(root, dirs[i])
		pruned = append(pruned, filepath.ToSlash(rel))
	}

	return pruned, nil
}
