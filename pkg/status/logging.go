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
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/relicense/pkg/header"
)

// 📢 UserLogger provides user-friendly feedback about file outcomes
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogFileOutcome logs a file outcome with appropriate emoji and formatting
func (u *UserLogger) LogFileOutcome(info FileInfo) {
	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch {
	case info.Error != nil:
		prefix = "❌"
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	case info.Outcome == header.OutcomeReplaced:
		prefix = "🔄"
		action = "Replaced"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case info.Outcome == header.OutcomeAdded:
		prefix = "✨"
		action = "Added"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case info.Outcome == header.OutcomeSkipped:
		prefix = "⏭️"
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	default:
		prefix = "👍"
		action = "Unchanged"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, info.Path)
	if info.Matcher != "" {
		msg += fmt.Sprintf(" (%s)", info.Matcher)
	}

	if info.Error != nil {
		printer.Println(msg)
		pterm.Error.Println(info.Error)
		u.log.Error().Err(info.Error).Msg(msg) // Also log to zerolog for debugging
	} else {
		printer.Println(msg)
		u.log.Debug().Msg(msg)
	}
}

// 📊 LogProgress logs a progress line every interval files
func (u *UserLogger) LogProgress(processed, total int) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "⏳"}).Printf("Progress: %d/%d files processed...\n", processed, total)
	u.log.Debug().Int("processed", processed).Int("total", total).Msg("progress")
}

// 📊 LogSummary logs the final run summary
func (u *UserLogger) LogSummary(s Summary, formatter FileFormatter) {
	pterm.Println()
	pterm.Println(formatter.FormatSummary(s))
	u.log.Info().
		Int("scanned", s.Scanned).
		Int("replaced", s.Replaced).
		Int("added", s.Added).
		Int("skipped", s.Skipped).
		Int("unchanged", s.Unchanged).
		Int("errors", s.Errors).
		Msg("run complete")
}
