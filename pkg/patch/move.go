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

package patch

import (
	"context"

	"github.com/walteh/remodel/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// Move relocates before to after inside the tree, creating the parent
// directories of after.
func Move(ctx context.Context, tree Tree, before, after string) error {
	ok, err := tree.FileExists(ctx, before)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Errorf("moving %s: source not found", before)
	}

	if err := tree.Rename(ctx, before, after); err != nil {
		return err
	}

	tree.TrackFile(ctx, status.FileEntry{
		Path:   after,
		Status: status.StatusMoved,
		Detail: "from " + before,
	})
	return nil
}

// MoveAll moves every affected item once, in order. Items sharing a Before
// value after the first are ignored.
func MoveAll(ctx context.Context, tree Tree, items []AffectedItem) error {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if seen[item.Before] {
			continue
		}
		seen[item.Before] = true

		if err := Move(ctx, tree, item.Before, item.After); err != nil {
			return err
		}
	}
	return nil
}
