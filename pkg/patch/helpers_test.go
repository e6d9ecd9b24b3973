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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/remodel/pkg/log"
	"github.com/walteh/remodel/pkg/status"
)

// 🔧 newTree lays out files under a temp dir and returns a context carrying
// test loggers, the tree and the console output.
func newTree(t *testing.T, files map[string]string) (context.Context, *status.Manager, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	zlog := zerolog.New(zerolog.NewTestWriter(t)).With().Timestamp().Logger()
	console := &bytes.Buffer{}

	ctx := zlog.WithContext(context.Background())
	ctx = log.NewContext(ctx, log.New(console, zlog))

	return ctx, status.New(dir), console
}

func readTree(t *testing.T, tree *status.Manager, name string) string {
	t.Helper()
	content, err := os.ReadFile(tree.Abs(name))
	require.NoError(t, err)
	return string(content)
}

func assertMissing(t *testing.T, tree *status.Manager, name string) {
	t.Helper()
	_, err := os.Stat(tree.Abs(name))
	assert.True(t, os.IsNotExist(err), "%s should not exist", name)
}

func statuses(entries []status.FileEntry) map[string]status.FileStatus {
	out := make(map[string]status.FileStatus, len(entries))
	for _, e := range entries {
		out[e.Path] = e.Status
	}
	return out
}
