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
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Magick composes labels by driving the ImageMagick command line.
type Magick struct {
	Binary  string
	Options Options

	command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewMagick creates a Magick compositor. An empty binary means "magick" on
// PATH.
func NewMagick(binary string, opts Options) *Magick {
	if binary == "" {
		binary = "magick"
	}
	return &Magick{
		Binary:  binary,
		Options: opts,
		command: exec.CommandContext,
	}
}

type intermediates struct {
	label      string
	background string
	blended    string
	final      string
}

func newIntermediates(iconPath string) intermediates {
	stem := strings.TrimSuffix(iconPath, filepath.Ext(iconPath))
	return intermediates{
		label:      stem + "_lbl.png",
		background: stem + "_bkg.png",
		blended:    stem + "_cmp1.png",
		final:      stem + "_cmp2.png",
	}
}

func (p intermediates) all() []string {
	return []string{p.label, p.background, p.blended, p.final}
}

// commands lists the four invocations: render the label, derive its black
// backdrop, blend the backdrop onto the icon, then lay the label on top.
func (m *Magick) commands(iconPath, text string, p intermediates) [][]string {
	o := m.Options
	padding := fmt.Sprintf("%dx%d", o.Padding, o.Padding)
	geometry := fmt.Sprintf("+0+%d", o.Offset)

	return [][]string{
		{
			"convert",
			"-background", "transparent",
			"-fill", "white",
			"-family", o.FontFamily,
			"-gravity", "southeast", "-splice", padding,
			"-gravity", "northwest", "-splice", padding,
			"-pointsize", strconv.Itoa(o.PointSize),
			"label:" + text,
			p.label,
		},
		{
			"convert", p.label,
			"-fill", "black",
			"-draw", "color 0,0 reset",
			p.background,
		},
		{
			"composite",
			"-gravity", "southwest", "-geometry", geometry,
			"-blend", strconv.Itoa(o.Blend),
			p.background, iconPath, p.blended,
		},
		{
			"composite",
			"-gravity", "southwest", "-geometry", geometry,
			p.label, p.blended, p.final,
		},
	}
}

// Compose implements Compositor.Compose
func (m *Magick) Compose(ctx context.Context, iconPath, text string) error {
	logger := zerolog.Ctx(ctx)
	p := newIntermediates(iconPath)

	defer func() {
		for _, f := range p.all() {
			if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
				logger.Debug().Err(err).Str("file", f).Msg("removing intermediate")
			}
		}
	}()

	for _, args := range m.commands(iconPath, text, p) {
		logger.Debug().Str("binary", m.Binary).Strs("args", args).Msg("running image tool")

		out, err := m.command(ctx, m.Binary, args...).CombinedOutput()
		if err != nil {
			return errors.Errorf("running %s %s: %w: %s", m.Binary, args[0], err, strings.TrimSpace(string(out)))
		}
	}

	if err := os.Rename(p.final, iconPath); err != nil {
		return errors.Errorf("replacing icon: %w", err)
	}

	return nil
}
