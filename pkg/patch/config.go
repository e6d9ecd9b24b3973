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

	"github.com/walteh/remodel/pkg/log"
	"github.com/walteh/remodel/pkg/status"
	"github.com/walteh/remodel/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// Config renames {prefix}{before}.cfg to {prefix}{after}.cfg and rewrites
// every `KEY before` value to `KEY after`. The file is written back as UTF-8
// with its original line ending. It returns the number of lines replaced.
func Config(ctx context.Context, tree Tree, before, after, prefix string) (int, error) {
	src := prefix + before + ".cfg"
	dst := prefix + after + ".cfg"

	ok, err := found(ctx, tree, src)
	if err != nil || !ok {
		return 0, err
	}

	content, err := open(ctx, tree, src, dst)
	if err != nil {
		return 0, err
	}

	if err := tree.Rename(ctx, src, dst); err != nil {
		return 0, err
	}

	result, err := text.NewIdentifierReplacer().ReplaceText(ctx, content, text.ReplacementRule{
		FromText: before,
		ToText:   after,
	})
	if err != nil {
		return 0, errors.Errorf("replacing in %s: %w", dst, err)
	}

	if err := tree.WriteFileAtomic(ctx, dst, []byte(result.ModifiedContent)); err != nil {
		return 0, err
	}

	log.FromContext(ctx).Infof("%s is replaced (%d lines)", dst, result.ReplacementCount)
	tree.TrackFile(ctx, status.FileEntry{
		Path:         dst,
		Status:       status.StatusPatched,
		Detail:       fmt.Sprintf("from %s", src),
		Replacements: result.ReplacementCount,
	})

	return result.ReplacementCount, nil
}
