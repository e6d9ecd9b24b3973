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

package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "yes_word_upper", input: "YES\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "other", input: "maybe\n", want: false},
		{name: "empty_line", input: "\n", want: false},
		{name: "eof", input: "", want: false},
		{name: "yes_without_newline", input: "y", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			p := NewLine(strings.NewReader(tt.input), out)

			got, err := p.Confirm(context.Background(), "/tmp/model_b already exists, remove it and continue operation?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "/tmp/model_b already exists, remove it and continue operation? [y/n]: ", out.String())
		})
	}
}

func TestLine_ConfirmSequential(t *testing.T) {
	p := NewLine(strings.NewReader("n\ny\n"), &bytes.Buffer{})

	first, err := p.Confirm(context.Background(), "first?")
	require.NoError(t, err)
	second, err := p.Confirm(context.Background(), "second?")
	require.NoError(t, err)

	assert.False(t, first)
	assert.True(t, second)
}

func TestLine_ConfirmCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewLine(strings.NewReader("y\n"), &bytes.Buffer{})
	_, err := p.Confirm(ctx, "remove?")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScripted_Confirm(t *testing.T) {
	s := &Scripted{Answers: []bool{true}}

	got, err := s.Confirm(context.Background(), "one?")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = s.Confirm(context.Background(), "two?")
	require.NoError(t, err)
	assert.False(t, got, "an exhausted script answers no")

	assert.Equal(t, []string{"one?", "two?"}, s.Asked)
}
