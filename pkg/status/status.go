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
	"os"
	"path/filepath"
	"sync"

	"github.com/walteh/remodel/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// swapped in tests to simulate rename failures
var renameFunc = os.Rename

// 📊 FileStatus represents what happened to a file of the asset tree
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusCopied               // Tree copied from the source
	StatusRenamed              // File renamed, content untouched
	StatusPatched              // File renamed and content rewritten
	StatusLabeled              // Icon composited with a label
	StatusMoved                // File moved after a descriptor change
	StatusSkipped              // Expected file was missing
	StatusPruned               // Empty directory removed
	StatusDeleted              // Tree or file deleted
	StatusInstalled            // Tree installed into the application
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusCopied:
		return "copied"
	case StatusRenamed:
		return "renamed"
	case StatusPatched:
		return "patched"
	case StatusLabeled:
		return "labeled"
	case StatusMoved:
		return "moved"
	case StatusSkipped:
		return "skipped"
	case StatusPruned:
		return "pruned"
	case StatusDeleted:
		return "deleted"
	case StatusInstalled:
		return "installed"
	default:
		return "unknown"
	}
}

// 📄 FileEntry records one change to the asset tree
type FileEntry struct {
	Path         string     // Path relative to the tree, slash separated
	Status       FileStatus // What happened
	Detail       string     // Human readable detail
	Replacements int        // Replaced lines or values, when relevant
}

// 💾 FileManager handles file system operations rooted at one directory.
// Paths are relative and slash separated.
type FileManager interface {
	Root() string
	Abs(path string) string
	FileExists(ctx context.Context, path string) (bool, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
	Rename(ctx context.Context, from, to string) error
}

// 📈 StatusReporter tracks what happened to each file
type StatusReporter interface {
	TrackFile(ctx context.Context, entry FileEntry)
	ListFiles(ctx context.Context) []FileEntry
}

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	baseDir   string
	formatter FileFormatter

	mu    sync.Mutex
	files []FileEntry
}

var (
	_ FileManager    = (*Manager)(nil)
	_ StatusReporter = (*Manager)(nil)
)

// 🏭 New creates a new status manager rooted at baseDir
func New(baseDir string) *Manager {
	return &Manager{
		baseDir:   filepath.Clean(baseDir),
		formatter: NewDefaultFileFormatter(),
	}
}

// Root returns the directory the manager operates in
func (m *Manager) Root() string {
	return m.baseDir
}

// Abs returns the absolute path for a given relative path
func (m *Manager) Abs(path string) string {
	return filepath.Join(m.baseDir, filepath.FromSlash(path))
}

// FileManager interface implementation

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(m.Abs(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.Abs(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.Abs(path)
	dir := filepath.Dir(absPath)

	perm := os.FileMode(0644)
	if fi, err := os.Stat(absPath); err == nil {
		perm = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(absPath)+".tmp-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Errorf("setting file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := renameFunc(tmpName, absPath); err != nil {
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// Rename moves from to to, creating the parent directories of to. Both
// paths must stay inside the root.
func (m *Manager) Rename(ctx context.Context, from, to string) error {
	for _, p := range []string{from, to} {
		if !filepath.IsLocal(filepath.FromSlash(p)) {
			return errors.Errorf("path %q escapes %s", p, m.baseDir)
		}
	}

	dst := m.Abs(to)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	if err := renameFunc(m.Abs(from), dst); err != nil {
		return errors.Errorf("renaming %s to %s: %w", from, to, err)
	}

	return nil
}

// StatusReporter interface implementation

func (m *Manager) TrackFile(ctx context.Context, entry FileEntry) {
	m.mu.Lock()
	m.files = append(m.files, entry)
	m.mu.Unlock()

	log.FromContext(ctx).LogFileOperation(ctx, log.FileOperation{
		Path:         entry.Path,
		Action:       entry.Status.String(),
		Detail:       entry.Detail,
		IsSkipped:    entry.Status == StatusSkipped,
		IsRemoved:    entry.Status == StatusPruned || entry.Status == StatusDeleted,
		IsModified:   entry.Status == StatusPatched || entry.Status == StatusLabeled,
		Replacements: entry.Replacements,
	})
}

func (m *Manager) ListFiles(ctx context.Context) []FileEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	files := make([]FileEntry, len(m.files))
	copy(files, m.files)
	return files
}

// Summary formats the tracked entries for the end of run report
func (m *Manager) Summary(ctx context.Context) string {
	return m.formatter.FormatSummary(m.ListFiles(ctx))
}
