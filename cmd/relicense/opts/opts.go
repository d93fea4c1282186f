package opts

import (
	"github.com/walteh/relicense/pkg/config"
	"github.com/walteh/relicense/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	StatusMgr  *status.Manager
	UserLogger *status.UserLogger
}
