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
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses the config from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	// Define YAML schema
	type yamlHeaders struct {
		OldExact     string   `yaml:"old_exact,omitempty"`
		OldPattern   string   `yaml:"old_pattern,omitempty"`
		MatchGeneric bool     `yaml:"match_generic,omitempty"`
		SkipForeign  bool     `yaml:"skip_foreign,omitempty"`
		Replacement  string   `yaml:"replacement"`
		Markers      []string `yaml:"markers,omitempty"`
	}
	type yamlConfig struct {
		Root           string       `yaml:"root,omitempty"`
		Extensions     []string     `yaml:"extensions,omitempty"`
		ExcludeDirs    []string     `yaml:"exclude_dirs,omitempty"`
		IgnorePatterns []string     `yaml:"ignore_patterns,omitempty"`
		Preset         string       `yaml:"preset,omitempty"`
		Headers        *yamlHeaders `yaml:"headers,omitempty"`
		DryRun         bool         `yaml:"dry_run,omitempty"`
		Async          bool         `yaml:"async,omitempty"`
	}

	// Parse YAML
	var yamlCfg yamlConfig
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&yamlCfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	// Convert to model, filling unset fields from the defaults
	cfg := Default()
	if yamlCfg.Root != "" {
		cfg.Root = yamlCfg.Root
	}
	if len(yamlCfg.Extensions) > 0 {
		cfg.Extensions = yamlCfg.Extensions
	}
	if yamlCfg.ExcludeDirs != nil {
		cfg.ExcludeDirs = yamlCfg.ExcludeDirs
	}
	cfg.IgnorePatterns = yamlCfg.IgnorePatterns
	if yamlCfg.Preset != "" {
		cfg.Preset = yamlCfg.Preset
	}
	cfg.DryRun = yamlCfg.DryRun
	cfg.Async = yamlCfg.Async

	if yamlCfg.Headers != nil {
		cfg.Headers = &HeaderArgs{
			OldExact:     yamlCfg.Headers.OldExact,
			OldPattern:   yamlCfg.Headers.OldPattern,
			MatchGeneric: yamlCfg.Headers.MatchGeneric,
			SkipForeign:  yamlCfg.Headers.SkipForeign,
			Replacement:  yamlCfg.Headers.Replacement,
			Markers:      yamlCfg.Headers.Markers,
		}
	}

	return cfg, nil
}
