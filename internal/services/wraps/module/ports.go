package module

import (
	"context"

	"gitwrapped/internal/services/wraps/domain"
	wrapssvc "gitwrapped/internal/services/wraps/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptWrapsPort exposes service methods as module ports for cross-module usage
type adaptWrapsPort struct{ svc wrapssvc.Service }

func (a adaptWrapsPort) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.AnalyzeResult, error) {
	return a.svc.Analyze(ctx, in)
}

func (a adaptWrapsPort) ByID(ctx context.Context, id string) (domain.WrapSnapshot, error) {
	return a.svc.ByID(ctx, id)
}

func (a adaptWrapsPort) Share(ctx context.Context, in domain.ShareInput) error {
	return a.svc.Share(ctx, in)
}
