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
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

// 🗺️ parsers is a list of available parsers
var parsers []Parser

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// RCName is the extensionless config file name, read as YAML or HCL.
const RCName = ".remodelrc"

// 🎯 Load reads, parses and validates the configuration at path. The format
// follows the extension; a .remodelrc file may hold YAML or HCL.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg *Config
	if filepath.Base(path) == RCName {
		cfg, err = parseRC(ctx, data)
	} else {
		p := GetParser(strings.ToLower(path))
		if p == nil {
			return nil, errors.Errorf("no parser found for file: %s", path)
		}
		cfg, err = p.Parse(ctx, data)
	}
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Stringer("config", cfg).Msg("configuration loaded")
	return cfg, nil
}

func parseRC(ctx context.Context, data []byte) (*Config, error) {
	cfg, yamlErr := (&YAMLParser{}).Parse(ctx, data)
	if yamlErr == nil {
		return cfg, nil
	}

	cfg, hclErr := (&HCLParser{}).Parse(ctx, data)
	if hclErr == nil {
		return cfg, nil
	}

	return nil, errors.Errorf("not YAML (%v) nor HCL: %w", yamlErr, hclErr)
}
