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

// Package label stamps a short text label onto icon images.
package label

import (
	"context"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

const (
	EngineMagick = "magick"
	EngineNative = "native"
)

// Compositor replaces the PNG at iconPath with a copy carrying text in its
// bottom-left corner.
type Compositor interface {
	Compose(ctx context.Context, iconPath, text string) error
}

// Options holds the label geometry shared by every compositor.
type Options struct {
	FontFamily string // font family passed to ImageMagick
	PointSize  int    // text size in points
	Padding    int    // transparent margin around the text, every side
	Offset     int    // distance between the label and the bottom edge
	Blend      int    // opacity of the black backdrop, percent
}

// DefaultOptions returns the stock label geometry.
func DefaultOptions() Options {
	return Options{
		FontFamily: "courier new",
		PointSize:  32,
		Padding:    8,
		Offset:     8,
		Blend:      50,
	}
}

var trailingAlnum = regexp.MustCompile(`[0-9A-Za-z]+$`)

// Extract returns the trailing alphanumeric run of name, or "" when name
// does not end with one.
func Extract(name string) string {
	return trailingAlnum.FindString(name)
}

// New returns the compositor for engine.
func New(engine, magickPath string, opts Options) (Compositor, error) {
	switch strings.ToLower(engine) {
	case "", EngineMagick:
		return NewMagick(magickPath, opts), nil
	case EngineNative:
		return NewNative(opts), nil
	default:
		return nil, errors.Errorf("unknown label engine %q", engine)
	}
}
