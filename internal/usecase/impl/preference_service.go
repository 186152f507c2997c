package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"vplmon/config"
	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/repository"
	"vplmon/internal/usecase"

	"go.uber.org/fx"
)

// PreferenceServiceParams holds dependencies for the preference service, injected by Fx.
type PreferenceServiceParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Repo      repository.PreferenceRepository
	TxManager repository.TransactionManager
}

type preferenceService struct {
	profile   string
	repo      repository.PreferenceRepository
	txManager repository.TransactionManager
	logger    *slog.Logger

	// writeMu serialises mutations so each one starts from the last committed state.
	writeMu sync.Mutex
	mu      sync.RWMutex
	current *entity.NotificationPreferences
}

// NewPreferenceService creates the preference store of the configured profile.
func NewPreferenceService(params PreferenceServiceParams) usecase.PreferenceUsecase {
	return &preferenceService{
		profile:   params.Config.Preferences.Profile,
		repo:      params.Repo,
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (s *preferenceService) Load(ctx context.Context) (*entity.NotificationPreferences, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	prefs, found, err := s.repo.Load(ctx, s.profile)
	if err != nil {
		return nil, domainerrors.NewPersistenceError("load preferences", err)
	}
	if !found || prefs == nil {
		s.logger.Info("No stored notification preferences, using defaults", slog.String("profile", s.profile))
		prefs = entity.NewNotificationPreferences()
	}
	prefs = withDefaults(prefs)

	s.mu.Lock()
	s.current = prefs
	s.mu.Unlock()

	return prefs.Clone(), nil
}

func (s *preferenceService) Snapshot() *entity.NotificationPreferences {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return entity.NewNotificationPreferences()
	}

	return s.current.Clone()
}

func (s *preferenceService) Save(ctx context.Context, prefs *entity.NotificationPreferences) error {
	if prefs == nil {
		return domainerrors.ErrValidationFailed.WithDetails("preferences are required")
	}

	_, err := s.mutate(ctx, func(next *entity.NotificationPreferences) error {
		candidate := withDefaults(prefs.Clone())
		for _, channel := range entity.Channels {
			seen := make(map[string]struct{}, len(candidate.Recipients[channel]))
			normalized := make([]string, 0, len(candidate.Recipients[channel]))
			for _, raw := range candidate.Recipients[channel] {
				value, err := validateRecipient(channel, raw)
				if err != nil {
					return err
				}
				if _, dup := seen[value]; dup {
					return domainerrors.ErrDuplicateRecipient.WithDetails(value)
				}
				seen[value] = struct{}{}
				normalized = append(normalized, value)
			}
			candidate.Recipients[channel] = normalized
		}
		*next = *candidate

		return nil
	})

	return err
}

func (s *preferenceService) AddRecipient(ctx context.Context, channel entity.Channel, value string) (*entity.NotificationPreferences, error) {
	if !slices.Contains(entity.Channels, channel) {
		return nil, domainerrors.ErrUnknownChannel
	}

	return s.mutate(ctx, func(next *entity.NotificationPreferences) error {
		normalized, err := validateRecipient(channel, value)
		if err != nil {
			return err
		}
		if next.HasRecipient(channel, normalized) {
			return domainerrors.ErrDuplicateRecipient.WithDetails(normalized)
		}
		next.Recipients[channel] = append(next.Recipients[channel], normalized)

		return nil
	})
}

func (s *preferenceService) RemoveRecipient(ctx context.Context, channel entity.Channel, value string) (*entity.NotificationPreferences, error) {
	if !slices.Contains(entity.Channels, channel) {
		return nil, domainerrors.ErrUnknownChannel
	}

	return s.mutate(ctx, func(next *entity.NotificationPreferences) error {
		normalized := entity.NormalizeRecipient(channel, value)
		idx := slices.Index(next.Recipients[channel], normalized)
		if idx < 0 {
			return domainerrors.ErrRecipientNotFound.WithDetails(normalized)
		}
		next.Recipients[channel] = slices.Delete(next.Recipients[channel], idx, idx+1)

		return nil
	})
}

func (s *preferenceService) SetChannel(ctx context.Context, channel entity.Channel, settings usecase.ChannelSettings) (*entity.NotificationPreferences, error) {
	if !slices.Contains(entity.Channels, channel) {
		return nil, domainerrors.ErrUnknownChannel
	}

	return s.mutate(ctx, func(next *entity.NotificationPreferences) error {
		if settings.Enabled != nil {
			next.ChannelEnabled[channel] = *settings.Enabled
		}
		for severity, enabled := range settings.Severities {
			if !slices.Contains(entity.Severities, severity) {
				return domainerrors.ErrValidationFailed.WithDetails("unknown severity: " + string(severity))
			}
			next.AlertTypeEnabled[channel][severity] = enabled
		}

		return nil
	})
}

// mutate applies fn to a copy of the current preferences, persists the whole object in one
// transaction and only then publishes it. Rejections leave both storage and memory untouched.
func (s *preferenceService) mutate(ctx context.Context, fn func(next *entity.NotificationPreferences) error) (*entity.NotificationPreferences, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := s.Snapshot()
	if err := fn(next); err != nil {
		return nil, err
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewPreferenceRepository().Replace(ctx, s.profile, next)
	})
	if err != nil {
		return nil, domainerrors.NewPersistenceError("save preferences", err)
	}

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	return next.Clone(), nil
}

func validateRecipient(channel entity.Channel, value string) (string, error) {
	normalized := entity.NormalizeRecipient(channel, value)

	switch channel {
	case entity.ChannelSMS:
		if !entity.IsValidPhone(normalized) {
			return "", domainerrors.ErrInvalidPhone.WithDetails(value)
		}
	case entity.ChannelEmail:
		if !entity.IsValidEmail(normalized) {
			return "", domainerrors.ErrInvalidEmail.WithDetails(value)
		}
	default:
		return "", domainerrors.ErrUnknownChannel
	}

	return normalized, nil
}

// withDefaults fills channels and severities missing from stored data.
func withDefaults(prefs *entity.NotificationPreferences) *entity.NotificationPreferences {
	defaults := entity.NewNotificationPreferences()
	if prefs.ChannelEnabled == nil {
		prefs.ChannelEnabled = defaults.ChannelEnabled
	}
	if prefs.AlertTypeEnabled == nil {
		prefs.AlertTypeEnabled = defaults.AlertTypeEnabled
	}
	if prefs.Recipients == nil {
		prefs.Recipients = defaults.Recipients
	}

	for _, channel := range entity.Channels {
		if _, ok := prefs.ChannelEnabled[channel]; !ok {
			prefs.ChannelEnabled[channel] = false
		}
		if prefs.AlertTypeEnabled[channel] == nil {
			prefs.AlertTypeEnabled[channel] = defaults.AlertTypeEnabled[channel]
		}
		for _, severity := range entity.Severities {
			if _, ok := prefs.AlertTypeEnabled[channel][severity]; !ok {
				prefs.AlertTypeEnabled[channel][severity] = true
			}
		}
		if prefs.Recipients[channel] == nil {
			prefs.Recipients[channel] = []string{}
		}
	}

	return prefs
}
