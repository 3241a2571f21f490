// Package module wires the analytics sink into the app using modkit
package module

import (
	"net/http"

	modkit "gitwrapped/internal/modkit"
	"gitwrapped/internal/modkit/httpkit"
	str "gitwrapped/internal/platform/strings"
	"gitwrapped/internal/services/analytics/domain"
	asvc "gitwrapped/internal/services/analytics/service"
)

// Ports exposes the tracker for other modules to consume
type Ports struct {
	Tracker domain.TrackerPort
}

// Module implements the modkit.Module interface. Analytics has no routes
// of its own; it only publishes the Tracker port
type Module struct {
	deps  modkit.Deps
	name  string
	ports any
}

// New constructs the analytics module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("analytics")}, opts...)...)

	svc := asvc.New(deps.CH, deps.Log)
	return &Module{
		deps:  deps,
		name:  b.Name,
		ports: Ports{Tracker: svc},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return "" }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
