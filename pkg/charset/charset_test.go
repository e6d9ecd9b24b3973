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

package charset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Run("empty_input", func(t *testing.T) {
		got := Detect(nil)
		require.Len(t, got, 1)
		assert.Equal(t, Guess{Name: UTF8, Confidence: 100}, got[0])
	})

	t.Run("utf8_bom", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("cc_model_a model_a\n")...)
		got := Detect(data)
		require.NotEmpty(t, got)
		assert.Equal(t, "UTF-8", got[0].Name)
		assert.Equal(t, 100, got[0].Confidence)
	})

	t.Run("sorted_by_confidence", func(t *testing.T) {
		got := Detect([]byte("name model_a\r\nskin model_a_skin\r\n"))
		require.NotEmpty(t, got)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Confidence, got[i].Confidence, "guess %d out of order", i)
		}
	})
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cc_model_a.cfg")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFkey value\n"), 0644))

	got, err := DetectFile(path)
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", got[0].Name)

	_, err = DetectFile(filepath.Join(dir, "missing.cfg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		encoding string
		want     string
		wantErr  string
	}{
		{
			name:     "utf8_strips_bom",
			data:     []byte("\xEF\xBB\xBFhello"),
			encoding: "UTF-8",
			want:     "hello",
		},
		{
			name:     "shift_jis",
			data:     []byte{0x82, 0xB1, 0x82, 0xF1, 0x82, 0xC9, 0x82, 0xBF, 0x82, 0xCD},
			encoding: "Shift_JIS",
			want:     "こんにちは",
		},
		{
			name:     "latin1",
			data:     []byte{'c', 'a', 'f', 0xE9},
			encoding: "ISO-8859-1",
			want:     "café",
		},
		{
			name:     "utf16le_with_bom",
			data:     []byte{0xFF, 0xFE, 'o', 0x00, 'k', 0x00},
			encoding: "UTF-16LE",
			want:     "ok",
		},
		{
			name:     "gb18030_alias",
			data:     []byte("abc"),
			encoding: "GB-18030",
			want:     "abc",
		},
		{
			name:     "unknown",
			data:     []byte("abc"),
			encoding: "x-not-a-charset",
			wantErr:  "unsupported encoding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data, tt.encoding)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
