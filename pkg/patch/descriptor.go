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
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/walteh/remodel/pkg/log"
	"github.com/walteh/remodel/pkg/status"
	"github.com/walteh/remodel/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// Descriptor renames {before}{ext} to {after}{ext} and rewrites every string
// value, at any depth, that starts with "before." so it starts with "after."
// instead. Member order and untouched values are kept. The affected values
// are returned in document order. An object repeating a key is an error.
func Descriptor(ctx context.Context, tree Tree, before, after, ext string) ([]AffectedItem, error) {
	if ext == "" {
		ext = DefaultDescriptorExt
	}
	src := before + ext
	dst := after + ext

	ok, err := found(ctx, tree, src)
	if err != nil || !ok {
		return nil, err
	}

	content, err := open(ctx, tree, src, dst)
	if err != nil {
		return nil, err
	}

	if err := tree.Rename(ctx, src, dst); err != nil {
		return nil, err
	}

	if !gjson.Valid(content) {
		return nil, errors.Errorf("parsing %s: invalid JSON", dst)
	}

	out, items, err := rewrite(content, text.NewPrefixReplacer(text.ReplacementRule{
		FromText: before,
		ToText:   after,
	}))
	if err != nil {
		return nil, errors.Errorf("rewriting %s: %w", dst, err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, out, "", "  "); err != nil {
		return nil, errors.Errorf("formatting %s: %w", dst, err)
	}

	if err := tree.WriteFileAtomic(ctx, dst, buf.Bytes()); err != nil {
		return nil, err
	}

	log.FromContext(ctx).Infof("%s is replaced (%d string objects)", dst, len(items))
	tree.TrackFile(ctx, status.FileEntry{
		Path:         dst,
		Status:       status.StatusPatched,
		Detail:       fmt.Sprintf("from %s", src),
		Replacements: len(items),
	})

	return items, nil
}

type leaf struct {
	offset int
	raw    string
	value  string
}

// rewrite applies r to every string leaf of doc. Replacements are spliced in
// at the offsets gjson reports, so every member is addressed exactly and the
// rest of the document is kept byte for byte.
func rewrite(doc string, r *text.PrefixReplacer) ([]byte, []AffectedItem, error) {
	root := gjson.Parse(doc)
	if !root.IsObject() && !root.IsArray() {
		return []byte(doc), nil, nil
	}
	root.Index = len(doc) - len(root.Raw)

	var leaves []leaf
	if err := walk(root, func(v gjson.Result) {
		if v.Type == gjson.String {
			leaves = append(leaves, leaf{offset: v.Index, raw: v.Raw, value: v.Str})
		}
	}); err != nil {
		return nil, nil, err
	}

	out := make([]byte, 0, len(doc))
	last := 0
	var items []AffectedItem
	for _, l := range leaves {
		replaced, ok := r.Replace(l.value)
		if !ok {
			continue
		}
		if l.offset < last || l.offset+len(l.raw) > len(doc) || doc[l.offset:l.offset+len(l.raw)] != l.raw {
			return nil, nil, errors.Errorf("locating %s at offset %d", l.raw, l.offset)
		}

		quoted, err := quote(replaced)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, doc[last:l.offset]...)
		out = append(out, quoted...)
		last = l.offset + len(l.raw)
		items = append(items, AffectedItem{Before: l.value, After: replaced})
	}
	out = append(out, doc[last:]...)

	return out, items, nil
}

// walk visits every scalar below v in document order. Objects repeating a
// key are rejected since only one of the members could be rewritten
// meaningfully.
func walk(v gjson.Result, visit func(v gjson.Result)) error {
	var err error
	switch {
	case v.IsObject():
		seen := map[string]bool{}
		v.ForEach(func(key, value gjson.Result) bool {
			if seen[key.Str] {
				err = errors.Errorf("duplicate key %q", key.Str)
				return false
			}
			seen[key.Str] = true
			err = walk(value, visit)
			return err == nil
		})
	case v.IsArray():
		v.ForEach(func(_, value gjson.Result) bool {
			err = walk(value, visit)
			return err == nil
		})
	default:
		visit(v)
	}
	return err
}

func quote(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, errors.Errorf("encoding %q: %w", s, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
