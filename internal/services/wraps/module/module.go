// Package module wires wraps into the API using modkit
package module

import (
	"net/http"

	modkit "gitwrapped/internal/modkit"
	"gitwrapped/internal/modkit/httpkit"
	str "gitwrapped/internal/platform/strings"
	adomain "gitwrapped/internal/services/analytics/domain"
	wrapshttp "gitwrapped/internal/services/wraps/http"
	wrapsrepo "gitwrapped/internal/services/wraps/repo"
	wrapssvc "gitwrapped/internal/services/wraps/service"
)

// Ports declares the injected dependencies this module needs from the
// composition root. Tracker may be nil when analytics is disabled
type Ports struct {
	GitHub    wrapssvc.Source
	Narrative wrapssvc.Analyzer
	Tracker   adomain.TrackerPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc wrapssvc.Service
}

// New constructs a wraps module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("wraps"), modkit.WithPrefix("/wraps")}, opts...)...)

	injected, ok := b.Ports.(Ports)
	if !ok {
		panic("wraps module requires injected Ports{GitHub, Narrative}")
	}

	svcOpts := FromConfig(deps.Cfg)
	repo := wrapsrepo.NewPG()
	svc := wrapssvc.New(deps.PG, repo, injected.GitHub, injected.Narrative, injected.Tracker, deps.Log, svcOpts)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptWrapsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		wrapshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
