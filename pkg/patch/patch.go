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

// Package patch rewrites the files of a copied asset tree from the old base
// name to the new one.
//
// Every patcher works on paths relative to the tree root through a [Tree].
// A missing input file is not an error: the patcher warns, records the file
// as skipped and returns.
package patch

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/remodel/pkg/charset"
	"github.com/walteh/remodel/pkg/log"
	"github.com/walteh/remodel/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// DefaultDescriptorExt is the suffix of the JSON model descriptor.
const DefaultDescriptorExt = ".model3.json"

// DefaultConfigPrefixes are the prefixes of the `KEY value` config files, in
// patch order.
var DefaultConfigPrefixes = []string{"cc_", "cc_names_"}

// Tree is the asset tree a patcher works on.
type Tree interface {
	status.FileManager
	status.StatusReporter
}

// AffectedItem is a descriptor value rewritten from Before to After. Both are
// slash separated paths relative to the tree root.
type AffectedItem struct {
	Before string
	After  string
}

// found reports whether path exists, recording a skip when it does not.
func found(ctx context.Context, tree Tree, path string) (bool, error) {
	ok, err := tree.FileExists(ctx, path)
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}

	zerolog.Ctx(ctx).Warn().Str("file", path).Msg("input not found, skipping")
	log.FromContext(ctx).Warningf("%s is not found, operation is skipped", path)
	tree.TrackFile(ctx, status.FileEntry{
		Path:   path,
		Status: status.StatusSkipped,
		Detail: "not found",
	})
	return false, nil
}

// open reads path and decodes it from its most likely encoding. display is
// the name used in the progress message.
func open(ctx context.Context, tree Tree, path, display string) (string, error) {
	raw, err := tree.ReadFile(ctx, path)
	if err != nil {
		return "", err
	}

	guess := charset.Detect(raw)[0]
	log.FromContext(ctx).Infof("%s is opened in %s (confidence: %d%%)", display, guess.Name, guess.Confidence)

	decoded, err := charset.Decode(raw, guess.Name)
	if err != nil {
		return "", errors.Errorf("decoding %s: %w", path, err)
	}
	return decoded, nil
}
