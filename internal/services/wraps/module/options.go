package module

import (
	"gitwrapped/internal/platform/config"
	wrapssvc "gitwrapped/internal/services/wraps/service"
)

// FromConfig reads WRAPS_* values from process config/env
func FromConfig(cfg config.Conf) wrapssvc.Options {
	wc := cfg.Prefix("WRAPS_")
	return wrapssvc.Options{
		LangWorkers: wc.MayInt("LANG_WORKERS", 8),
	}
}
