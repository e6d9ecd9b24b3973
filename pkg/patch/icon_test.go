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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/remodel/gen/mockery"
	"github.com/walteh/remodel/pkg/patch"
	"github.com/walteh/remodel/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func TestIcon(t *testing.T) {
	tests := []struct {
		name       string
		after      string
		applyLabel bool
		setupMock  func(*mockery.MockCompositor_label, string)
		wantStatus status.FileStatus
	}{
		{
			name:       "rename_only",
			after:      "model_b2",
			wantStatus: status.StatusRenamed,
		},
		{
			name:       "labeled",
			after:      "model_b2",
			applyLabel: true,
			setupMock: func(m *mockery.MockCompositor_label, icon string) {
				m.EXPECT().Compose(mock.Anything, icon, "b2").Return(nil)
			},
			wantStatus: status.StatusLabeled,
		},
		{
			name:       "no_label_text",
			after:      "model_",
			applyLabel: true,
			wantStatus: status.StatusRenamed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, tree, _ := newTree(t, map[string]string{
				"ico_model_a.png": "png",
			})

			compositor := mockery.NewMockCompositor_label(t)
			if tt.setupMock != nil {
				tt.setupMock(compositor, tree.Abs("ico_model_a.png"))
			}

			err := patch.Icon(ctx, tree, "model_a", tt.after, tt.applyLabel, compositor)
			require.NoError(t, err)

			dst := patch.IconName(tt.after)
			assertMissing(t, tree, "ico_model_a.png")
			assert.Equal(t, "png", readTree(t, tree, dst))
			assert.Equal(t, map[string]status.FileStatus{dst: tt.wantStatus}, statuses(tree.ListFiles(ctx)))
		})
	}
}

func TestIcon_Missing(t *testing.T) {
	ctx, tree, console := newTree(t, nil)
	compositor := mockery.NewMockCompositor_label(t)

	require.NoError(t, patch.Icon(ctx, tree, "model_a", "model_b", true, compositor))
	assert.Contains(t, console.String(), "ico_model_a.png is not found")
}

func TestIcon_CompositorFailure(t *testing.T) {
	ctx, tree, _ := newTree(t, map[string]string{
		"ico_model_a.png": "png",
	})

	compositor := mockery.NewMockCompositor_label(t)
	compositor.EXPECT().Compose(mock.Anything, mock.Anything, "b").Return(errors.New("magick: not found"))

	err := patch.Icon(ctx, tree, "model_a", "model_b", true, compositor)
	assert.ErrorContains(t, err, "labeling ico_model_a.png: magick: not found")
	assert.Equal(t, "png", readTree(t, tree, "ico_model_a.png"))
}
