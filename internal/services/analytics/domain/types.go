// Package domain holds the analytics event contract
package domain

import (
	"context"
	"time"
)

// Event names mirror the product funnel
const (
	EventUsernameEntered     = "username_entered"
	EventWrapViewed          = "wrap_viewed"
	EventShareClicked        = "share_clicked"
	EventGenerationCompleted = "generation_completed"
	EventErrorOccurred       = "error_occurred"
)

// Event is one analytics row. Metadata is free form and serialized to JSON
type Event struct {
	Name     string
	Username string
	At       time.Time
	Metadata map[string]any
}

// TrackerPort records events without ever failing the caller
type TrackerPort interface {
	Track(ctx context.Context, ev Event)
}
