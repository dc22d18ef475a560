package opts

import (
	"github.com/walteh/rewriterc/pkg/config"
	"github.com/walteh/rewriterc/pkg/log"
	"github.com/walteh/rewriterc/pkg/text"
)

// RootOpts contains shared options used by all commands.
// It is filled in before any command runs.
type RootOpts struct {
	Config  *config.Config
	Catalog *text.Catalog
	Console *log.Logger
}
