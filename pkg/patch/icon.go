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
	"fmt"

	"github.com/rs/zerolog"
	"github.com/walteh/remodel/pkg/label"
	"github.com/walteh/remodel/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// IconName returns the icon file name for a model name.
func IconName(name string) string {
	return "ico_" + name + ".png"
}

// Icon renames ico_{before}.png to ico_{after}.png. With applyLabel the
// trailing alphanumeric run of after is stamped onto the icon first; names
// without one are renamed unlabeled.
func Icon(ctx context.Context, tree Tree, before, after string, applyLabel bool, compositor label.Compositor) error {
	src := IconName(before)
	dst := IconName(after)

	ok, err := found(ctx, tree, src)
	if err != nil || !ok {
		return err
	}

	entry := status.FileEntry{
		Path:   dst,
		Status: status.StatusRenamed,
		Detail: fmt.Sprintf("from %s", src),
	}

	if applyLabel {
		text := label.Extract(after)
		switch {
		case text == "":
			zerolog.Ctx(ctx).Warn().Str("name", after).Msg("no trailing alphanumeric run, icon left unlabeled")
		case compositor == nil:
			return errors.Errorf("labeling %s: no compositor configured", src)
		default:
			if err := compositor.Compose(ctx, tree.Abs(src), text); err != nil {
				return errors.Errorf("labeling %s: %w", src, err)
			}
			entry.Status = status.StatusLabeled
			entry.Detail = fmt.Sprintf("from %s, label %q", src, text)
		}
	}

	if err := tree.Rename(ctx, src, dst); err != nil {
		return err
	}

	tree.TrackFile(ctx, entry)
	return nil
}
