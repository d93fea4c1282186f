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

// Package header classifies and rewrites license header comment blocks.
package header

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 Outcome describes what the rewrite did to a file's content
type Outcome int

const (
	OutcomeUnknown   Outcome = iota
	OutcomeReplaced          // An existing header was swapped for the replacement
	OutcomeAdded             // No header found, replacement prepended or inserted
	OutcomeSkipped           // Foreign copyright notice left alone
	OutcomeUnchanged         // Content already carries the replacement
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeReplaced:
		return "replaced"
	case OutcomeAdded:
		return "added"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// 🧲 genericPattern matches any block comment that mentions a copyright,
// from its opening /* or /** through the first comment close and trailing
// newline run.
var genericPattern = regexp.MustCompile(`(?s)/\*\*?\s*\n.*?[Cc]opyright.*?\*/\s*\n`)

// foreignWindow is how far into the content a bare "copyright" token is
// taken as evidence of a header we don't recognize.
const foreignWindow = 1000

// 🔄 Policy is an immutable header matching and replacement configuration.
// Matchers are tried in priority order: OldExact, OldPattern, the generic
// copyright matcher, then the skip-foreign check.
type Policy struct {
	Name         string         // Preset or config name, for logging
	OldExact     string         // Literal old header block, matched verbatim
	OldPattern   *regexp.Regexp // Tolerant old header pattern, may be nil
	MatchGeneric bool           // Fall back to any copyright comment block
	SkipForeign  bool           // Leave files with unrecognized copyright text alone
	Replacement  string         // Literal header block to substitute or prepend
	Markers      []string       // Leading directive prefixes preserved as line 1

	exactOnce sync.Once
	exactRe   *regexp.Regexp
}

// 📦 Result holds the original and rewritten content of one file
type Result struct {
	OriginalContent []byte
	ModifiedContent []byte
	Outcome         Outcome
	Matcher         string // Which matcher fired: "exact", "pattern", "generic" or ""
	WasModified     bool
}

// Validate checks that the policy is usable
func (p *Policy) Validate() error {
	if p.Name == "" {
		return errors.New("policy name is required")
	}
	if p.Replacement == "" {
		return errors.New("replacement header is required")
	}
	return nil
}

// exactPattern compiles OldExact into a matcher that also absorbs the
// blank line run following the literal, so substitution leaves exactly
// one blank line after the new header.
func (p *Policy) exactPattern() *regexp.Regexp {
	p.exactOnce.Do(func() {
		if p.OldExact != "" {
			p.exactRe = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(p.OldExact) + `\s*\n`)
		}
	})
	return p.exactRe
}

// 🔄 Rewrite classifies the header state of content and applies the policy.
// The returned result always carries the original bytes; ModifiedContent
// equals OriginalContent when nothing changed.
func (p *Policy) Rewrite(ctx context.Context, content []byte) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	if err := p.Validate(); err != nil {
		return nil, errors.Errorf("validating policy: %w", err)
	}

	result := &Result{
		OriginalContent: content,
		ModifiedContent: content,
	}

	text := string(content)

	// Try structured matchers in priority order
	if re := p.exactPattern(); re != nil {
		if loc := re.FindStringIndex(text); loc != nil {
			result.Matcher = "exact"
			p.substitute(result, text, loc)
			return result, nil
		}
	}
	if p.OldPattern != nil {
		if loc := p.OldPattern.FindStringIndex(text); loc != nil {
			result.Matcher = "pattern"
			p.substitute(result, text, loc)
			return result, nil
		}
	}
	if p.MatchGeneric {
		if loc := genericPattern.FindStringIndex(text); loc != nil {
			result.Matcher = "generic"
			p.substitute(result, text, loc)
			return result, nil
		}
	}

	// A copyright-looking string without a recognized shape is someone
	// else's header, not ours to rewrite.
	if p.SkipForeign && containsCopyright(text) {
		logger.Debug().Str("policy", p.Name).Msg("foreign copyright notice, skipping")
		result.Outcome = OutcomeSkipped
		return result, nil
	}

	p.prepend(result, text)
	return result, nil
}

// substitute replaces the matched span with the replacement header and
// exactly one blank line.
func (p *Policy) substitute(result *Result, text string, loc []int) {
	out := text[:loc[0]] + p.Replacement + "\n\n" + text[loc[1]:]
	if out == text {
		result.Outcome = OutcomeUnchanged
		return
	}
	result.ModifiedContent = []byte(out)
	result.Outcome = OutcomeReplaced
	result.WasModified = true
}

// prepend adds the replacement header at the start of content, keeping a
// leading marker directive (e.g. 'use client') as the very first line.
func (p *Policy) prepend(result *Result, text string) {
	var out string
	if marker := p.leadingMarker(text); marker {
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			out = text[:i] + "\n\n" + p.Replacement + "\n\n" + text[i+1:]
		} else {
			out = text + "\n\n" + p.Replacement + "\n\n"
		}
	} else {
		out = p.Replacement + "\n\n" + text
	}
	result.ModifiedContent = []byte(out)
	result.Outcome = OutcomeAdded
	result.WasModified = true
}

// leadingMarker reports whether the content starts with one of the
// configured directive prefixes.
func (p *Policy) leadingMarker(text string) bool {
	for _, m := range p.Markers {
		if m != "" && strings.HasPrefix(text, m) {
			return true
		}
	}
	return false
}

// containsCopyright checks the first kilobyte for a copyright token.
func containsCopyright(text string) bool {
	window := text
	if len(window) > foreignWindow {
		window = window[:foreignWindow]
	}
	return strings.Contains(strings.ToLower(window), "copyright")
}

// TODO(dr.methodical): 🧪 Add tests for CRLF line endings
// TODO(dr.methodical): 📝 Add support for line-comment (//) header blocks
