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

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/walteh/relicense/pkg/header"
)

// FileFormatter defines how file outcomes and the run summary are formatted
type FileFormatter interface {
	// FormatFileOperation formats a per-file status line
	FormatFileOperation(info FileInfo) string

	// FormatSummary formats the final summary block
	FormatSummary(s Summary) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOperation formats a per-file status line with emojis
func (f *DefaultFileFormatter) FormatFileOperation(info FileInfo) string {
	switch {
	case info.Error != nil:
		return fmt.Sprintf("❌ Failed %s", info.Path)
	case info.Outcome == header.OutcomeReplaced:
		return fmt.Sprintf("🔄 Replaced header in %s", info.Path)
	case info.Outcome == header.OutcomeAdded:
		return fmt.Sprintf("✨ Added header to %s", info.Path)
	case info.Outcome == header.OutcomeSkipped:
		return fmt.Sprintf("⏭️  Skipped %s", info.Path)
	default:
		return fmt.Sprintf("👍 Unchanged %s", info.Path)
	}
}

// FormatSummary formats the final summary block
func (f *DefaultFileFormatter) FormatSummary(s Summary) string {
	var b strings.Builder

	bold := color.New(color.Bold)
	b.WriteString(bold.Sprint("Summary Report"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total files processed: %d\n", s.Scanned)
	fmt.Fprintf(&b, "Headers replaced:      %d\n", s.Replaced)
	fmt.Fprintf(&b, "New headers added:     %d\n", s.Added)
	fmt.Fprintf(&b, "Files skipped:         %d\n", s.Skipped)
	fmt.Fprintf(&b, "Files unchanged:       %d\n", s.Unchanged)
	fmt.Fprintf(&b, "Errors encountered:    %d\n", s.Errors)

	switch {
	case s.Errors > 0:
		fmt.Fprintf(&b, "%s\n", color.New(color.FgRed).Sprintf("⚠️  %d errors during processing", s.Errors))
	case s.Updated() > 0:
		fmt.Fprintf(&b, "%s\n", color.New(color.FgGreen).Sprintf("✅ Updated %d files", s.Updated()))
	default:
		fmt.Fprintf(&b, "%s\n", color.New(color.FgCyan).Sprint("ℹ️  No files needed updates"))
	}

	return b.String()
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
