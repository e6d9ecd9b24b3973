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

package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/remodel/pkg/patch"
	"github.com/walteh/remodel/pkg/status"
)

func TestMove(t *testing.T) {
	ctx, tree, _ := newTree(t, map[string]string{
		"model_a.moc3": "moc",
	})

	require.NoError(t, patch.Move(ctx, tree, "model_a.moc3", "nested/dir/model_b.moc3"))
	assertMissing(t, tree, "model_a.moc3")
	assert.Equal(t, "moc", readTree(t, tree, "nested/dir/model_b.moc3"))

	err := patch.Move(ctx, tree, "model_a.moc3", "model_b.moc3")
	assert.ErrorContains(t, err, "moving model_a.moc3: source not found")

	err = patch.Move(ctx, tree, "nested/dir/model_b.moc3", "../escape.moc3")
	assert.ErrorContains(t, err, "escapes")
}

func TestMoveAll(t *testing.T) {
	ctx, tree, _ := newTree(t, map[string]string{
		"model_a.2048/texture_00.png": "tex",
		"model_a.moc3":                "moc",
	})

	err := patch.MoveAll(ctx, tree, []patch.AffectedItem{
		{Before: "model_a.moc3", After: "model_b.moc3"},
		{Before: "model_a.2048/texture_00.png", After: "model_b.2048/texture_00.png"},
		{Before: "model_a.moc3", After: "model_b.moc3"},
	})
	require.NoError(t, err)

	assert.Equal(t, "moc", readTree(t, tree, "model_b.moc3"))
	assert.Equal(t, "tex", readTree(t, tree, "model_b.2048/texture_00.png"))
	assert.Equal(t, map[string]status.FileStatus{
		"model_b.moc3":                status.StatusMoved,
		"model_b.2048/texture_00.png": status.StatusMoved,
	}, statuses(tree.ListFiles(ctx)))
	assert.Len(t, tree.ListFiles(ctx), 2)
}
