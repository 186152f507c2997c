package postgres

import (
	"context"

	"vplmon/internal/domain/entity"
	"vplmon/internal/domain/repository"
	"vplmon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// Load reads the stored preferences of profile. found is false when nothing was ever saved.
func (repo *preferenceRepository) Load(ctx context.Context, profile string) (*entity.NotificationPreferences, bool, error) {
	var settings []*model.ChannelSettingModel
	if err := repo.db.WithContext(ctx).
		Where("profile = ?", profile).
		Find(&settings).Error; err != nil {
		return nil, false, errors.Wrap(err, "failed to load channel settings")
	}
	if len(settings) == 0 {
		return nil, false, nil
	}

	var recipients []*model.RecipientModel
	if err := repo.db.WithContext(ctx).
		Where("profile = ?", profile).
		Order("channel ASC, position ASC").
		Find(&recipients).Error; err != nil {
		return nil, false, errors.Wrap(err, "failed to load recipients")
	}

	return toPreferencesDomain(settings, recipients), true, nil
}

// Replace overwrites every row of profile. Callers run it inside a transaction so readers
// never observe a half-written object.
func (repo *preferenceRepository) Replace(ctx context.Context, profile string, prefs *entity.NotificationPreferences) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("profile = ?", profile).Delete(&model.RecipientModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear recipients")
	}
	if err := db.Where("profile = ?", profile).Delete(&model.ChannelSettingModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear channel settings")
	}

	settings, recipients := fromPreferencesDomain(profile, prefs)

	if err := db.Create(&settings).Error; err != nil {
		return errors.Wrap(err, "failed to save channel settings")
	}
	if len(recipients) == 0 {
		return nil
	}
	if err := db.Create(&recipients).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "duplicate recipient")
		}

		return errors.Wrap(err, "failed to save recipients")
	}

	return nil
}

func toPreferencesDomain(settings []*model.ChannelSettingModel, recipients []*model.RecipientModel) *entity.NotificationPreferences {
	prefs := entity.NewNotificationPreferences()

	for _, s := range settings {
		channel, ok := entity.ParseChannel(s.Channel)
		if !ok {
			continue
		}
		prefs.ChannelEnabled[channel] = s.Enabled
		prefs.AlertTypeEnabled[channel] = map[entity.Severity]bool{
			entity.SeverityRed:   s.RedEnabled,
			entity.SeverityAmber: s.AmberEnabled,
			entity.SeverityGreen: s.GreenEnabled,
		}
	}

	for _, r := range recipients {
		channel, ok := entity.ParseChannel(r.Channel)
		if !ok {
			continue
		}
		prefs.Recipients[channel] = append(prefs.Recipients[channel], r.Value)
	}

	return prefs
}

func fromPreferencesDomain(profile string, prefs *entity.NotificationPreferences) ([]*model.ChannelSettingModel, []*model.RecipientModel) {
	settings := make([]*model.ChannelSettingModel, 0, len(entity.Channels))
	recipients := make([]*model.RecipientModel, 0)

	for _, channel := range entity.Channels {
		severities := prefs.AlertTypeEnabled[channel]
		settings = append(settings, &model.ChannelSettingModel{
			Profile:      profile,
			Channel:      string(channel),
			Enabled:      prefs.ChannelEnabled[channel],
			RedEnabled:   severities[entity.SeverityRed],
			AmberEnabled: severities[entity.SeverityAmber],
			GreenEnabled: severities[entity.SeverityGreen],
		})

		for i, value := range prefs.Recipients[channel] {
			recipients = append(recipients, &model.RecipientModel{
				ID:       uuid.New(),
				Profile:  profile,
				Channel:  string(channel),
				Value:    value,
				Position: i,
			})
		}
	}

	return settings, recipients
}
