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
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestManagerFileOperations(t *testing.T) {
	ctx := testContext(t)
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"model_a.moc3":                "moc",
		"model_a.4096/texture_00.png": "png",
	})
	mgr := New(root)

	t.Run("exists", func(t *testing.T) {
		ok, err := mgr.FileExists(ctx, "model_a.moc3")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = mgr.FileExists(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("write_atomic", func(t *testing.T) {
		require.NoError(t, mgr.WriteFileAtomic(ctx, "model_a.moc3", []byte("new")))
		got, err := mgr.ReadFile(ctx, "model_a.moc3")
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp-", "temp file should not be left behind")
		}
	})

	t.Run("rename_creates_parents", func(t *testing.T) {
		require.NoError(t, mgr.Rename(ctx, "model_a.4096/texture_00.png", "model_b.4096/texture_00.png"))
		_, err := os.Stat(filepath.Join(root, "model_b.4096", "texture_00.png"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(root, "model_a.4096", "texture_00.png"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("rename_missing_source", func(t *testing.T) {
		err := mgr.Rename(ctx, "nope.png", "still_nope.png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "renaming nope.png to still_nope.png")
	})

	t.Run("rename_outside_root", func(t *testing.T) {
		err := mgr.Rename(ctx, "model_a.moc3", "../escaped.moc3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "escapes")
	})

	t.Run("rename_failure_propagates", func(t *testing.T) {
		orig := renameFunc
		renameFunc = func(string, string) error { return errors.New("disk on fire") }
		defer func() { renameFunc = orig }()

		err := mgr.Rename(ctx, "model_a.moc3", "model_b.moc3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk on fire")
	})
}

func TestManagerTracking(t *testing.T) {
	ctx := testContext(t)
	mgr := New(t.TempDir())

	assert.Equal(t, "no changes", mgr.Summary(ctx))

	mgr.TrackFile(ctx, FileEntry{Path: "model_b.model3.json", Status: StatusPatched, Replacements: 4})
	mgr.TrackFile(ctx, FileEntry{Path: "cc_names_model_a.cfg", Status: StatusSkipped})
	mgr.TrackFile(ctx, FileEntry{Path: "model_b.moc3", Status: StatusMoved})
	mgr.TrackFile(ctx, FileEntry{Path: "model_b.physics3.json", Status: StatusMoved})

	files := mgr.ListFiles(ctx)
	require.Len(t, files, 4)
	assert.Equal(t, "model_b.model3.json", files[0].Path)
	assert.Equal(t, "1 patched, 2 moved, 1 skipped", mgr.Summary(ctx))
}

func TestCopyTree(t *testing.T) {
	ctx := testContext(t)
	src := filepath.Join(t.TempDir(), "model_a")
	writeTree(t, src, map[string]string{
		"model_a.model3.json":         "{}",
		"model_a.4096/texture_00.png": "png",
		".DS_Store":                   "junk",
		"motions/.DS_Store":           "junk",
		"motions/idle.motion3.json":   "{}",
	})
	dst := filepath.Join(t.TempDir(), "model_b")

	n, err := CopyTree(ctx, src, dst, []string{"**/.DS_Store"})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, name := range []string{"model_a.model3.json", "model_a.4096/texture_00.png", "motions/idle.motion3.json"} {
		_, err := os.Stat(filepath.Join(dst, filepath.FromSlash(name)))
		assert.NoError(t, err, "%s should be copied", name)
	}
	for _, name := range []string{".DS_Store", "motions/.DS_Store"} {
		_, err := os.Stat(filepath.Join(dst, filepath.FromSlash(name)))
		assert.True(t, os.IsNotExist(err), "%s should be ignored", name)
	}

	_, err = CopyTree(ctx, src, dst, []string{"[unterminated"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ignore pattern")
}

func TestPrune(t *testing.T) {
	ctx := testContext(t)
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"keep/file.txt": "x",
	})
	for _, d := range []string{"model_a.4096", "deep/er/est", "keep/empty"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755))
	}

	pruned, err := Prune(ctx, root)
	require.NoError(t, err)
	sort.Strings(pruned)
	assert.Equal(t, []string{"deep", "deep/er", "deep/er/est", "keep/empty", "model_a.4096"}, pruned)

	_, err = os.Stat(filepath.Join(root, "keep", "file.txt"))
	require.NoError(t, err)
	_, err = os.Stat(root)
	require.NoError(t, err, "root should be kept")
}

func TestExistsAndRemoveTree(t *testing.T) {
	ctx := testContext(t)
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a/b.txt": "x"})

	ok, isDir, err := Exists(filepath.Join(root, "a"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, isDir)

	ok, isDir, err = Exists(filepath.Join(root, "a", "b.txt"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, isDir)

	require.NoError(t, RemoveTree(ctx, filepath.Join(root, "a")))
	ok, _, err = Exists(filepath.Join(root, "a"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStatusString(t *testing.T) {
	assert.Equal(t, "patched", StatusPatched.String())
	assert.Equal(t, "installed", StatusInstalled.String())
	assert.Equal(t, "unknown", FileStatus(99).String())
}
