package usecase

import (
	"context"

	"vplmon/internal/domain/entity"
)

// ChannelSettings updates a channel's switches. Nil fields are left unchanged.
type ChannelSettings struct {
	Enabled    *bool
	Severities map[entity.Severity]bool
}

// PreferenceUsecase owns the notification preferences of the session.
type PreferenceUsecase interface {
	// Load reads the stored preferences into memory, falling back to defaults.
	Load(ctx context.Context) (*entity.NotificationPreferences, error)

	// Save replaces the stored preferences atomically.
	Save(ctx context.Context, prefs *entity.NotificationPreferences) error

	// Snapshot returns a copy of the in-memory preferences.
	Snapshot() *entity.NotificationPreferences

	AddRecipient(ctx context.Context, channel entity.Channel, value string) (*entity.NotificationPreferences, error)
	RemoveRecipient(ctx context.Context, channel entity.Channel, value string) (*entity.NotificationPreferences, error)
	SetChannel(ctx context.Context, channel entity.Channel, settings ChannelSettings) (*entity.NotificationPreferences, error)
}
