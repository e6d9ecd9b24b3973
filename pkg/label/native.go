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

package label

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Native composes labels in-process with the Go Mono font. FontFamily is
// ignored.
type Native struct {
	Options Options
}

func NewNative(opts Options) *Native {
	return &Native{Options: opts}
}

func (n *Native) face() (font.Face, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, errors.Errorf("parsing font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(n.Options.PointSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Errorf("creating font face: %w", err)
	}
	return face, nil
}

// Box returns the backdrop rectangle for a label of the given text size
// inside bounds.
func (n *Native) Box(bounds image.Rectangle, textWidth, textHeight int) image.Rectangle {
	pad := n.Options.Padding
	bottom := bounds.Max.Y - n.Options.Offset
	return image.Rect(
		bounds.Min.X,
		bottom-textHeight-2*pad,
		bounds.Min.X+textWidth+2*pad,
		bottom,
	)
}

// Compose implements Compositor.Compose
func (n *Native) Compose(ctx context.Context, iconPath, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := readPNG(iconPath)
	if err != nil {
		return err
	}

	face, err := n.face()
	if err != nil {
		return err
	}
	defer face.Close()

	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)

	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	box := n.Box(bounds, width, height)

	alpha := uint8(255 * n.Options.Blend / 100)
	draw.Draw(dst, box.Intersect(bounds), image.NewUniform(color.NRGBA{A: alpha}), image.Point{}, draw.Over)

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(box.Min.X+n.Options.Padding, box.Min.Y+n.Options.Padding+metrics.Ascent.Ceil()),
	}
	drawer.DrawString(text)

	zerolog.Ctx(ctx).Debug().
		Str("icon", iconPath).
		Str("label", text).
		Stringer("box", box).
		Msg("composed label")

	return writePNG(iconPath, dst)
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening icon: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.Errorf("decoding icon %s: %w", path, err)
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".label-*.png")
	if err != nil {
		return errors.Errorf("creating temp icon: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return errors.Errorf("encoding icon: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("closing temp icon: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Errorf("replacing icon: %w", err)
	}
	return nil
}
