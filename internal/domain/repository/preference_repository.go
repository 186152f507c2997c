package repository

import (
	"context"

	"vplmon/internal/domain/entity"
)

// PreferenceRepository stores the notification preferences of a profile.
type PreferenceRepository interface {
	// Load returns the stored preferences. found is false when the profile has never been saved.
	Load(ctx context.Context, profile string) (prefs *entity.NotificationPreferences, found bool, err error)

	// Replace overwrites every stored row of the profile with prefs.
	// Callers run it inside TransactionManager.Execute so readers never observe a partial write.
	Replace(ctx context.Context, profile string, prefs *entity.NotificationPreferences) error
}
