package domain

import "context"

// ServicePort defines the service contract for wraps
type ServicePort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (AnalyzeResult, error)
	ByID(ctx context.Context, id string) (WrapSnapshot, error)
	Share(ctx context.Context, in ShareInput) error
}
