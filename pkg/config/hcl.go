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

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclHeaders struct {
		OldExact     string   `hcl:"old_exact,optional"`
		OldPattern   string   `hcl:"old_pattern,optional"`
		MatchGeneric bool     `hcl:"match_generic,optional"`
		SkipForeign  bool     `hcl:"skip_foreign,optional"`
		Replacement  string   `hcl:"replacement"`
		Markers      []string `hcl:"markers,optional"`
	}
	type hclConfig struct {
		Root           string      `hcl:"root,optional"`
		Extensions     []string    `hcl:"extensions,optional"`
		ExcludeDirs    []string    `hcl:"exclude_dirs,optional"`
		IgnorePatterns []string    `hcl:"ignore_patterns,optional"`
		Preset         string      `hcl:"preset,optional"`
		Headers        *hclHeaders `hcl:"headers,block"`
		DryRun         bool        `hcl:"dry_run,optional"`
		Async          bool        `hcl:"async,optional"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model, filling unset fields from the defaults
	cfg := Default()
	if hclCfg.Root != "" {
		cfg.Root = hclCfg.Root
	}
	if len(hclCfg.Extensions) > 0 {
		cfg.Extensions = hclCfg.Extensions
	}
	if hclCfg.ExcludeDirs != nil {
		cfg.ExcludeDirs = hclCfg.ExcludeDirs
	}
	cfg.IgnorePatterns = hclCfg.IgnorePatterns
	if hclCfg.Preset != "" {
		cfg.Preset = hclCfg.Preset
	}
	cfg.DryRun = hclCfg.DryRun
	cfg.Async = hclCfg.Async

	if hclCfg.Headers != nil {
		cfg.Headers = &HeaderArgs{
			OldExact:     hclCfg.Headers.OldExact,
			OldPattern:   hclCfg.Headers.OldPattern,
			MatchGeneric: hclCfg.Headers.MatchGeneric,
			SkipForeign:  hclCfg.Headers.SkipForeign,
			Replacement:  hclCfg.Headers.Replacement,
			Markers:      hclCfg.Headers.Markers,
		}
	}

	return cfg, nil
}
