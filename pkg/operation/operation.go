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
	"context"

	"github.com/walteh/relicense/pkg/config"
	"github.com/walteh/relicense/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work executed by the runner
type Operation interface {
	// Execute runs the operation. Per-file failures are recovered and
	// counted; only setup failures surface as an error.
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for the rewrite operation
type Options struct {
	// Config is the relicense configuration
	Config *config.Config
	// StatusMgr tracks per-file outcomes
	StatusMgr *status.Manager
	// UserLogger provides user-facing console output
	UserLogger *status.UserLogger
	// Formatter renders the final summary
	Formatter status.FileFormatter
}

// validate checks that all required options are set
func (o Options) validate() error {
	if o.Config == nil {
		return errors.New("config is required")
	}
	if o.StatusMgr == nil {
		return errors.New("status manager is required")
	}
	if o.UserLogger == nil {
		return errors.New("user logger is required")
	}
	return nil
}
