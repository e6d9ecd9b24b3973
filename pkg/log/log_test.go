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

package log

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(symbol, path, action, detail string) string {
	return strings.TrimSpace(fmt.Sprintf("%s %-35s %-12s %s", symbol, path, action, detail))
}

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_file_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:   "model_b.model3.json",
					Action: "renamed",
					Detail: "from model_a.model3.json",
				})
			},
			wantLogs: []string{
				row("✓", "model_b.model3.json", "renamed", "from model_a.model3.json"),
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("renaming model_a to model_b")
			},
			wantLogs: []string{
				"remodel • renaming model_a to model_b",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop())

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := New(&bytes.Buffer{}, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx), "logger from context should be the same instance")

	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info("dropped")
	}, "FromContext should fall back to a discarding logger")
}

func TestFileOperationFormatting(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "patched_file",
			op: FileOperation{
				Path:         "cc_model_b.cfg",
				Action:       "patched",
				Detail:       "3 lines",
				IsModified:   true,
				Replacements: 3,
			},
			want: row("⟳", "cc_model_b.cfg", "patched", "3 lines"),
		},
		{
			name: "skipped_file",
			op: FileOperation{
				Path:      "cc_names_model_a.cfg",
				Action:    "skipped",
				Detail:    "not found",
				IsSkipped: true,
			},
			want: row("-", "cc_names_model_a.cfg", "skipped", "not found"),
		},
		{
			name: "removed_file",
			op: FileOperation{
				Path:      "model_a.4096",
				Action:    "pruned",
				IsRemoved: true,
			},
			want: row("✗", "model_a.4096", "pruned", ""),
		},
		{
			name: "long_detail_truncated",
			op: FileOperation{
				Path:   "x",
				Action: "moved",
				Detail: strings.Repeat("a", 80),
			},
			want: row("✓", "x", "moved", strings.Repeat("a", 59)+"…"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop())

			logger.LogFileOperation(context.Background(), tt.op)

			assert.Equal(t, tt.want, strings.TrimSpace(buf.String()), "formatted output should match")
		})
	}
}
