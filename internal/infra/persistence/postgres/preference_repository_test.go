package postgres

import (
	"testing"

	"vplmon/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPreferenceRows_RoundTrip(t *testing.T) {
	prefs := entity.NewNotificationPreferences()
	prefs.ChannelEnabled[entity.ChannelSMS] = true
	prefs.AlertTypeEnabled[entity.ChannelSMS][entity.SeverityAmber] = false
	prefs.Recipients[entity.ChannelSMS] = []string{"+14155550123", "+14155550124"}
	prefs.Recipients[entity.ChannelEmail] = []string{"ops@example.com"}

	settings, recipients := fromPreferencesDomain("default", prefs)

	require.Len(t, settings, 2)
	require.Len(t, recipients, 3)
	for i, r := range recipients[:2] {
		assert.Equal(t, "sms", r.Channel)
		assert.Equal(t, i, r.Position)
		assert.Equal(t, "default", r.Profile)
	}

	assert.Equal(t, prefs, toPreferencesDomain(settings, recipients))
}

func TestPreferenceRows_IgnoresUnknownChannels(t *testing.T) {
	settings, recipients := fromPreferencesDomain("default", entity.NewNotificationPreferences())
	settings[0].Channel = "pager"

	got := toPreferencesDomain(settings, recipients)

	assert.Len(t, got.ChannelEnabled, len(entity.Channels))
	assert.NotContains(t, got.ChannelEnabled, entity.Channel("pager"))
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_recipient_unique" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection reset")))
	assert.False(t, isUniqueConstraintViolation(nil))
}
