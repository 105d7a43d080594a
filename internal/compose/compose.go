// Package compose derives the ordered flag list shared by the forwarded
// cargo commands from a build configuration.
package compose

import (
	"strings"

	"github.com/crateops/cargomk/internal/config"
)

// Flags returns the flag tokens contributed by cfg, in fixed order:
// the workspace token, then the extra flags, then the features pair.
// An unset field contributes nothing at all; in particular an empty
// Features never yields an empty-valued "--features" flag. The result
// depends only on cfg, so identical inputs give identical outputs.
func Flags(cfg config.Build) []string {
	var flags []string
	if cfg.Workspace != "" {
		flags = append(flags, cfg.Workspace)
	}
	flags = append(flags, strings.Fields(cfg.ExtraFlags)...)
	if cfg.Features != "" {
		flags = append(flags, "--features", cfg.Features)
	}
	return flags
}
