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

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/remodel/pkg/label"
	"github.com/walteh/remodel/pkg/patch"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ LabelConfig configures the icon label compositor
type LabelConfig struct {
	Engine     string `json:"engine,omitempty" yaml:"engine,omitempty" hcl:"engine,optional"`                // magick or native
	MagickPath string `json:"magick_path,omitempty" yaml:"magick_path,omitempty" hcl:"magick_path,optional"` // ImageMagick binary
	FontFamily string `json:"font_family,omitempty" yaml:"font_family,omitempty" hcl:"font_family,optional"`
	PointSize  int    `json:"point_size,omitempty" yaml:"point_size,omitempty" hcl:"point_size,optional"`
	Padding    int    `json:"padding,omitempty" yaml:"padding,omitempty" hcl:"padding,optional"`
	Offset     int    `json:"offset,omitempty" yaml:"offset,omitempty" hcl:"offset,optional"`
	Blend      int    `json:"blend,omitempty" yaml:"blend,omitempty" hcl:"blend,optional"` // percent
}

// 📦 InstallConfig configures the install step
type InstallConfig struct {
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" hcl:"dir,optional"` // overrides the platform target
}

// 🔧 CopyConfig configures the tree copy
type CopyConfig struct {
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"` // doublestar globs, relative to the source
}

// 📚 Config represents the complete configuration
type Config struct {
	DescriptorExt string         `json:"descriptor_ext,omitempty" yaml:"descriptor_ext,omitempty" hcl:"descriptor_ext,optional"`
	CfgPrefixes   []string       `json:"cfg_prefixes,omitempty" yaml:"cfg_prefixes,omitempty" hcl:"cfg_prefixes,optional"`
	Label         *LabelConfig   `json:"label,omitempty" yaml:"label,omitempty" hcl:"label,block"`
	Install       *InstallConfig `json:"install,omitempty" yaml:"install,omitempty" hcl:"install,block"`
	Copy          *CopyConfig    `json:"copy,omitempty" yaml:"copy,omitempty" hcl:"copy,block"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	// the zero config always validates
	_ = cfg.Validate()
	return cfg
}

// 🔍 Validate checks the configuration and fills in defaults. Zero numeric
// label settings mean "use the default".
func (cfg *Config) Validate() error {
	if cfg.DescriptorExt == "" {
		cfg.DescriptorExt = patch.DefaultDescriptorExt
	}
	if !strings.HasPrefix(cfg.DescriptorExt, ".") {
		return errors.Errorf("descriptor_ext %q must start with a dot", cfg.DescriptorExt)
	}

	if len(cfg.CfgPrefixes) == 0 {
		cfg.CfgPrefixes = append([]string(nil), patch.DefaultConfigPrefixes...)
	}
	for _, p := range cfg.CfgPrefixes {
		if strings.ContainsAny(p, `/\`) {
			return errors.Errorf("cfg_prefixes entry %q must not contain a path separator", p)
		}
	}

	if cfg.Label == nil {
		cfg.Label = &LabelConfig{}
	}
	if err := cfg.Label.validate(); err != nil {
		return errors.Errorf("label: %w", err)
	}

	if cfg.Install == nil {
		cfg.Install = &InstallConfig{}
	}
	if cfg.Install.Dir != "" {
		cfg.Install.Dir = filepath.Clean(cfg.Install.Dir)
	}

	if cfg.Copy == nil {
		cfg.Copy = &CopyConfig{}
	}
	for _, p := range cfg.Copy.IgnorePatterns {
		if !doublestar.ValidatePattern(p) {
			return errors.Errorf("copy: invalid ignore pattern %q", p)
		}
	}

	return nil
}

func (l *LabelConfig) validate() error {
	def := label.DefaultOptions()

	switch strings.ToLower(l.Engine) {
	case "":
		l.Engine = label.EngineMagick
	case label.EngineMagick, label.EngineNative:
		l.Engine = strings.ToLower(l.Engine)
	default:
		return errors.Errorf("unknown engine %q", l.Engine)
	}

	if l.FontFamily == "" {
		l.FontFamily = def.FontFamily
	}

	for _, f := range []struct {
		name  string
		value *int
		def   int
	}{
		{"point_size", &l.PointSize, def.PointSize},
		{"padding", &l.Padding, def.Padding},
		{"offset", &l.Offset, def.Offset},
		{"blend", &l.Blend, def.Blend},
	} {
		if *f.value < 0 {
			return errors.Errorf("%s must not be negative", f.name)
		}
		if *f.value == 0 {
			*f.value = f.def
		}
	}

	if l.Blend > 100 {
		return errors.Errorf("blend %d is above 100", l.Blend)
	}

	return nil
}

// Options converts the label settings for the compositor.
func (l *LabelConfig) Options() label.Options {
	return label.Options{
		FontFamily: l.FontFamily,
		PointSize:  l.PointSize,
		Padding:    l.Padding,
		Offset:     l.Offset,
		Blend:      l.Blend,
	}
}

// Compositor builds the configured label compositor.
func (cfg *Config) Compositor() (label.Compositor, error) {
	return label.New(cfg.Label.Engine, cfg.Label.MagickPath, cfg.Label.Options())
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("descriptor=%s prefixes=%v label=%s", cfg.DescriptorExt, cfg.CfgPrefixes, cfg.Label.Engine)
}
