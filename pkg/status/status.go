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
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/relicense/pkg/header"
)

// 📄 FileInfo describes the outcome of processing one file
type FileInfo struct {
	Path    string         // Relative path to the file
	Outcome header.Outcome // What the rewrite did
	Matcher string         // Which matcher fired, if any
	Written bool           // Whether the file was written back
	Error   error          // Per-file error, if any
}

// 📊 Summary holds the counters accumulated over one run
type Summary struct {
	Scanned   int // Files considered
	Replaced  int // Existing headers swapped
	Added     int // Headers newly inserted
	Skipped   int // Foreign headers left alone
	Unchanged int // Files already carrying the target header
	Errors    int // Files that failed to read or write
}

// Updated returns the number of files whose content changed
func (s Summary) Updated() int {
	return s.Replaced + s.Added
}

// 🔧 Manager tracks per-file outcomes and produces the run summary
type Manager struct {
	logger *zerolog.Logger

	mu    sync.RWMutex
	files []FileInfo
}

// 🏭 NewManager creates a new status manager
func NewManager(logger *zerolog.Logger) *Manager {
	return &Manager{
		logger: logger,
	}
}

// 📈 Track records the outcome of one file
func (m *Manager) Track(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files = append(m.files, info)

	ev := m.logger.Info()
	if info.Error != nil {
		ev = m.logger.Error().Err(info.Error)
	}
	ev.Str("file", info.Path).
		Str("outcome", info.Outcome.String()).
		Str("matcher", info.Matcher).
		Bool("written", info.Written).
		Msg("file processed")
}

// 📋 Files returns tracked files in processing order
func (m *Manager) Files() []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]FileInfo, len(m.files))
	copy(out, m.files)
	return out
}

// 📊 Summary returns the accumulated counters
func (m *Manager) Summary() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var s Summary
	for _, info := range m.files {
		s.Scanned++
		if info.Error != nil {
			s.Errors++
			continue
		}
		switch info.Outcome {
		case header.OutcomeReplaced:
			s.Replaced++
		case header.OutcomeAdded:
			s.Added++
		case header.OutcomeSkipped:
			s.Skipped++
		case header.OutcomeUnchanged:
			s.Unchanged++
		}
	}
	return s
}
