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

package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/relicense/pkg/header"
	"github.com/walteh/relicense/pkg/scanner"
	"github.com/walteh/relicense/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// progressInterval is how often a progress line is emitted
const progressInterval = 10

// 🔄 RewriteOperation applies a header policy across a file tree
type RewriteOperation struct {
	root       string
	dryRun     bool
	policy     *header.Policy
	scan       *scanner.Scanner
	statusMgr  *status.Manager
	userLogger *status.UserLogger
	formatter  status.FileFormatter
}

// 🏭 NewRewriteOperation creates a new rewrite operation from options
func NewRewriteOperation(opts Options) (*RewriteOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}

	policy, err := opts.Config.Policy()
	if err != nil {
		return nil, errors.Errorf("building header policy: %w", err)
	}

	scan, err := scanner.New(scanner.Options{
		Root:           opts.Config.Root,
		Extensions:     opts.Config.Extensions,
		ExcludeDirs:    opts.Config.ExcludeDirs,
		IgnorePatterns: opts.Config.IgnorePatterns,
	})
	if err != nil {
		return nil, errors.Errorf("creating scanner: %w", err)
	}

	formatter := opts.Formatter
	if formatter == nil {
		formatter = status.NewDefaultFileFormatter()
	}

	return &RewriteOperation{
		root:       opts.Config.Root,
		dryRun:     opts.Config.DryRun,
		policy:     policy,
		scan:       scan,
		statusMgr:  opts.StatusMgr,
		userLogger: opts.UserLogger,
		formatter:  formatter,
	}, nil
}

// 🏃 Execute scans the tree and rewrites each file in turn. Files are
// processed sequentially in sorted order; a failing file is logged,
// counted and skipped, never fatal.
func (op *RewriteOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	files, err := op.scan.Scan(ctx)
	if err != nil {
		return errors.Errorf("scanning %s: %w", op.root, err)
	}

	logger.Info().
		Int("files", len(files)).
		Str("policy", op.policy.Name).
		Bool("dry_run", op.dryRun).
		Msg("starting rewrite")

	for i, rel := range files {
		if (i+1)%progressInterval == 0 {
			op.userLogger.LogProgress(i+1, len(files))
		}

		info := op.rewriteFile(ctx, rel)
		op.statusMgr.Track(ctx, info)
		op.userLogger.LogFileOutcome(info)
	}

	op.userLogger.LogSummary(op.statusMgr.Summary(), op.formatter)
	return nil
}

// rewriteFile processes a single file end to end and returns its outcome.
// All failures are captured in the returned FileInfo.
func (op *RewriteOperation) rewriteFile(ctx context.Context, rel string) status.FileInfo {
	info := status.FileInfo{Path: rel}
	abs := filepath.Join(op.root, filepath.FromSlash(rel))

	data, err := os.ReadFile(abs)
	if err != nil {
		info.Error = errors.Errorf("reading %s: %w", rel, err)
		return info
	}
	if !isText(data) {
		info.Error = errors.Errorf("reading %s: content is not decodable text", rel)
		return info
	}

	result, err := op.policy.Rewrite(ctx, data)
	if err != nil {
		info.Error = errors.Errorf("rewriting %s: %w", rel, err)
		return info
	}

	info.Outcome = result.Outcome
	info.Matcher = result.Matcher

	// Write back only when the content actually changed, so repeated
	// runs stabilize without touching file modification times.
	if result.WasModified && !op.dryRun {
		mode := os.FileMode(0644)
		if fi, statErr := os.Stat(abs); statErr == nil {
			mode = fi.Mode()
		}
		if err := os.WriteFile(abs, result.ModifiedContent, mode); err != nil {
			info.Error = errors.Errorf("writing %s: %w", rel, err)
			return info
		}
		info.Written = true
	}

	return info
}

// isText reports whether content can be treated as text. A NUL byte or
// invalid UTF-8 marks the file as binary.
func isText(content []byte) bool {
	return utf8.Valid(content) && !bytes.ContainsRune(content, 0)
}
