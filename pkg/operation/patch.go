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

	"github.com/walteh/remodel/pkg/label"
	"github.com/walteh/remodel/pkg/patch"
	"github.com/walteh/remodel/pkg/status"
)

// 📝 descriptorOperation rewrites the model descriptor and moves every file
// it points at
type descriptorOperation struct {
	tree          *status.Manager
	before, after string
	ext           string
}

func newDescriptorOperation(tree *status.Manager, before, after, ext string) Operation {
	return &descriptorOperation{tree: tree, before: before, after: after, ext: ext}
}

func (op *descriptorOperation) Name() string { return "descriptor" }

func (op *descriptorOperation) Execute(ctx context.Context) error {
	items, err := patch.Descriptor(ctx, op.tree, op.before, op.after, op.ext)
	if err != nil {
		return err
	}
	return patch.MoveAll(ctx, op.tree, items)
}

// 📝 configOperation rewrites one {prefix}{name}.cfg file
type configOperation struct {
	tree          *status.Manager
	before, after string
	prefix        string
}

func newConfigOperation(tree *status.Manager, before, after, prefix string) Operation {
	return &configOperation{tree: tree, before: before, after: after, prefix: prefix}
}

func (op *configOperation) Name() string { return "config " + op.prefix }

func (op *configOperation) Execute(ctx context.Context) error {
	_, err := patch.Config(ctx, op.tree, op.before, op.after, op.prefix)
	return err
}

// 🖼️ iconOperation renames and optionally labels the icon
type iconOperation struct {
	tree          *status.Manager
	before, after string
	applyLabel    bool
	compositor    label.Compositor
}

func newIconOperation(tree *status.Manager, before, after string, applyLabel bool, compositor label.Compositor) Operation {
	return &iconOperation{tree: tree, before: before, after: after, applyLabel: applyLabel, compositor: compositor}
}

func (op *iconOperation) Name() string { return "icon" }

func (op *iconOperation) Execute(ctx context.Context) error {
	return patch.Icon(ctx, op.tree, op.before, op.after, op.applyLabel, op.compositor)
}
