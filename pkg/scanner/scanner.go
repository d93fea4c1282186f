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

// Package scanner enumerates the source files a rewrite run operates on.
package scanner

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Scanner walks a root directory and selects files by extension,
// dropping anything under an excluded directory or matching an ignore glob.
type Scanner struct {
	root           string
	extensions     map[string]bool
	excludeDirs    []string
	ignorePatterns []string
}

// 🔧 Options configures a scanner
type Options struct {
	Root           string   // Root directory to walk
	Extensions     []string // File extensions to consider, with leading dot
	ExcludeDirs    []string // Path substrings to skip (node_modules, dist, ...)
	IgnorePatterns []string // doublestar globs matched against the relative path
}

// 🏭 New creates a new scanner
func New(opts Options) (*Scanner, error) {
	if opts.Root == "" {
		return nil, errors.New("root directory is required")
	}
	if len(opts.Extensions) == 0 {
		return nil, errors.New("at least one extension is required")
	}

	exts := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return nil, errors.Errorf("extension %q must start with a dot", ext)
		}
		exts[ext] = true
	}

	for _, pattern := range opts.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid ignore pattern: %s", pattern)
		}
	}

	return &Scanner{
		root:           filepath.Clean(opts.Root),
		extensions:     exts,
		excludeDirs:    opts.ExcludeDirs,
		ignorePatterns: opts.IgnorePatterns,
	}, nil
}

// 🔍 Scan walks the root and returns the relative paths of all matching
// files, sorted for reproducible logs. Excluded directories are pruned
// before descent, so their contents are never opened.
func (s *Scanner) Scan(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var files []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return errors.Errorf("relativizing %s: %w", path, relErr)
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && s.isExcluded(rel+"/") {
				logger.Debug().Str("dir", rel).Msg("skipping excluded directory")
				return filepath.SkipDir
			}
			return nil
		}

		if !s.extensions[filepath.Ext(path)] {
			return nil
		}
		if s.isExcluded(rel) || s.isIgnored(rel) {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", s.root, err)
	}

	sort.Strings(files)
	logger.Debug().Int("files", len(files)).Str("root", s.root).Msg("scan complete")
	return files, nil
}

// Root returns the scanner's root directory
func (s *Scanner) Root() string {
	return s.root
}

// isExcluded checks the relative path against the exclude substrings
func (s *Scanner) isExcluded(rel string) bool {
	for _, dir := range s.excludeDirs {
		if dir != "" && strings.Contains(rel, dir) {
			return true
		}
	}
	return false
}

// isIgnored checks the relative path against the ignore globs
func (s *Scanner) isIgnored(rel string) bool {
	for _, pattern := range s.ignorePatterns {
		// Patterns are validated in New
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
