// Package api provides the HTTP API for the application
package api

import (
	"time"

	"gitwrapped/internal/platform/config"
	"gitwrapped/internal/platform/logger"
	phttp "gitwrapped/internal/platform/net/http"
	"gitwrapped/internal/platform/store"

	"gitwrapped/internal/modkit"
	"gitwrapped/internal/modkit/httpkit"
	"gitwrapped/internal/modkit/module"
	"gitwrapped/internal/modkit/swaggerkit"

	"gitwrapped/internal/adapters/github"
	"gitwrapped/internal/adapters/narrative"
	metamod "gitwrapped/internal/services/api/meta/module"
	analyticsmod "gitwrapped/internal/services/analytics/module"
	wrapsmod "gitwrapped/internal/services/wraps/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	gh := github.NewClient(githubFromConfig(deps.Cfg))
	groq := narrative.New(groqFromConfig(deps.Cfg))

	// Analytics first so its Tracker port can feed the wraps pipeline
	analytics := analyticsmod.New(deps)
	tracker := module.MustPortsOf[analyticsmod.Ports](analytics).Tracker

	wraps := wrapsmod.New(
		deps,
		modkit.WithPorts(wrapsmod.Ports{
			GitHub:    gh,
			Narrative: groq,
			Tracker:   tracker,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		analytics,
		wraps,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}

// githubFromConfig reads GH_* values from process config/env
func githubFromConfig(cfg config.Conf) github.Options {
	gc := cfg.Prefix("GH_")
	return github.Options{
		TokensCSV:  gc.MayString("TOKENS", ""),
		BaseURL:    gc.MayString("BASE_URL", ""),
		UserAgent:  gc.MayString("UA", "gitwrapped-api"),
		Timeout:    gc.MayDuration("TIMEOUT", 15*time.Second),
		MaxRetries: gc.MayInt("MAX_RETRIES", 3),
		RetryBase:  gc.MayDuration("RETRY_BASE", 500*time.Millisecond),
	}
}

// groqFromConfig reads GROQ_* values from process config/env
func groqFromConfig(cfg config.Conf) narrative.Options {
	nc := cfg.Prefix("GROQ_")
	return narrative.Options{
		APIKey:  nc.MayString("API_KEY", ""),
		BaseURL: nc.MayString("BASE_URL", ""),
		Timeout: nc.MayDuration("TIMEOUT", 30*time.Second),
	}
}
