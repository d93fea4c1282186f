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
	"regexp"

	"github.com/rs/zerolog"
	"github.com/walteh/relicense/pkg/header"
	"gitlab.com/tozd/go/errors"
)

// DefaultPath is the config file looked up when none is given. A missing
// file at this path is not an error: the built-in defaults apply.
const DefaultPath = ".relicense.yaml"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

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

// 🔄 HeaderArgs overrides the built-in presets with a custom header pair
type HeaderArgs struct {
	OldExact     string   // Literal old header to match verbatim
	OldPattern   string   // Tolerant regular expression for the old header
	MatchGeneric bool     // Fall back to any copyright comment block
	SkipForeign  bool     // Skip files with unrecognized copyright text
	Replacement  string   // Header block to substitute or prepend
	Markers      []string // Leading directive prefixes kept as line 1
}

// 📚 Config represents the complete configuration
type Config struct {
	Root           string      // Root directory to rewrite
	Extensions     []string    // File extensions to consider
	ExcludeDirs    []string    // Path substrings to skip
	IgnorePatterns []string    // doublestar globs to skip
	Preset         string      // Built-in header pair to apply
	Headers        *HeaderArgs // Custom header pair, overrides Preset
	DryRun         bool        // Classify and report without writing
	Async          bool        // Run the operation off the main goroutine
}

// 🎯 Default returns the built-in configuration, matching a zero-argument
// invocation against the current directory.
func Default() *Config {
	return &Config{
		Root:        ".",
		Extensions:  []string{".ts", ".tsx", ".js", ".jsx"},
		ExcludeDirs: []string{"node_modules", ".next", "dist", "build"},
		Preset:      "agpl-to-mit",
	}
}

// 🎯 Load loads the configuration from a file, falling back to defaults
// when the default config file does not exist.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			logger.Debug().Msg("no config file, using defaults")
			return Default(), nil
		}
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// ✅ Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Root == "" {
		return errors.New("root is required")
	}
	if len(c.Extensions) == 0 {
		return errors.New("at least one extension is required")
	}
	if c.Headers == nil && c.Preset == "" {
		return errors.New("either a preset or a headers block is required")
	}
	if c.Headers != nil && c.Headers.Replacement == "" {
		return errors.New("headers.replacement is required")
	}
	return nil
}

// 🎯 Policy builds the header policy described by the configuration,
// preferring a custom headers block over the named preset.
func (c *Config) Policy() (*header.Policy, error) {
	if c.Headers == nil {
		return header.Preset(c.Preset)
	}

	policy := &header.Policy{
		Name:         "custom",
		OldExact:     c.Headers.OldExact,
		MatchGeneric: c.Headers.MatchGeneric,
		SkipForeign:  c.Headers.SkipForeign,
		Replacement:  c.Headers.Replacement,
		Markers:      c.Headers.Markers,
	}
	if c.Headers.OldPattern != "" {
		re, err := regexp.Compile(c.Headers.OldPattern)
		if err != nil {
			return nil, errors.Errorf("compiling old_pattern: %w", err)
		}
		policy.OldPattern = re
	}
	if err := policy.Validate(); err != nil {
		return nil, errors.Errorf("validating custom policy: %w", err)
	}
	return policy, nil
}
