package impl

import (
	"context"
	"testing"

	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/repository"
	mockRepo "vplmon/internal/mocks/repository"
	"vplmon/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type preferenceFixture struct {
	service   usecase.PreferenceUsecase
	repo      *mockRepo.MockPreferenceRepository
	txRepo    *mockRepo.MockPreferenceRepository
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
}

func newPreferenceFixture(t *testing.T) *preferenceFixture {
	f := &preferenceFixture{
		repo:      mockRepo.NewMockPreferenceRepository(t),
		txRepo:    mockRepo.NewMockPreferenceRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
	}
	f.service = NewPreferenceService(PreferenceServiceParams{
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
		Repo:      f.repo,
		TxManager: f.txManager,
	})

	return f
}

// expectCommit wires the transaction manager to run the callback against txRepo.
func (f *preferenceFixture) expectCommit(ctx context.Context, times int) {
	f.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).Times(times)
	f.factory.EXPECT().NewPreferenceRepository().Return(f.txRepo).Times(times)
}

func TestPreferenceService_LoadFallsBackToDefaults(t *testing.T) {
	f := newPreferenceFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().Load(ctx, "default").Return(nil, false, nil)

	prefs, err := f.service.Load(ctx)

	require.NoError(t, err)
	assert.False(t, prefs.ChannelEnabled[entity.ChannelSMS])
	assert.True(t, prefs.AlertTypeEnabled[entity.ChannelEmail][entity.SeverityGreen])
	assert.Empty(t, prefs.Recipients[entity.ChannelSMS])
}

func TestPreferenceService_LoadFillsMissingSeverities(t *testing.T) {
	f := newPreferenceFixture(t)
	ctx := context.Background()

	stored := &entity.NotificationPreferences{
		ChannelEnabled:   map[entity.Channel]bool{entity.ChannelSMS: true},
		AlertTypeEnabled: map[entity.Channel]map[entity.Severity]bool{entity.ChannelSMS: {entity.SeverityAmber: false}},
		Recipients:       map[entity.Channel][]string{entity.ChannelSMS: {"+14155550123"}},
	}
	f.repo.EXPECT().Load(ctx, "default").Return(stored, true, nil)

	prefs, err := f.service.Load(ctx)

	require.NoError(t, err)
	assert.True(t, prefs.Allows(entity.ChannelSMS, entity.SeverityRed))
	assert.False(t, prefs.Allows(entity.ChannelSMS, entity.SeverityAmber))
	assert.False(t, prefs.ChannelEnabled[entity.ChannelEmail])
	assert.Equal(t, []string{"+14155550123"}, f.service.Snapshot().Recipients[entity.ChannelSMS])
}

func TestPreferenceService_LoadError(t *testing.T) {
	f := newPreferenceFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().Load(ctx, "default").Return(nil, false, errors.New("connection refused"))

	prefs, err := f.service.Load(ctx)

	require.Error(t, err)
	assert.Nil(t, prefs)
	assert.Equal(t, domainerrors.KindPersistence, domainerrors.KindOf(err))
}

func TestPreferenceService_AddRecipientPersistsWholeObject(t *testing.T) {
	f := newPreferenceFixture(t)
	ctx := context.Background()
	f.expectCommit(ctx, 1)

	f.txRepo.EXPECT().Replace(ctx, "default", mock.MatchedBy(func(p *entity.NotificationPreferences) bool {
		return len(p.Recipients[entity.ChannelSMS]) == 1 && p.Recipients[entity.ChannelSMS][0] == "+14155550123"
	})).Return(nil)

	prefs, err := f.service.AddRecipient(ctx, entity.ChannelSMS, "+1 415 555 0123")

	require.NoError(t, err)
	assert.Equal(t, []string{"+14155550123"}, prefs.Recipients[entity.ChannelSMS])
	assert.Equal(t, []string{"+14155550123"}, f.service.Snapshot().Recipients[entity.ChannelSMS])
}

func TestPreferenceService_DuplicateRecipientIsRejectedWithoutWrite(t *testing.T) {
	f := newPreferenceFixture(t)
	ctx := context.Background()
	f.expectCommit(ctx, 1)
	f.txRepo.EXPECT().Replace(ctx, "default", mock.Anything).Return(nil).Once()

	_, err := f.service.AddRecipient(ctx, entity.ChannelEmail, "ops@example.com")
	require.NoError(t, err)

	prefs, err := f.service.AddRecipient(ctx, entity.ChannelEmail, "OPS@example.com")

	require.Error(t, err)
	assert.Nil(t, prefs)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateRecipient))
	assert.True(t, domainerrors.IsValidation(err))
	assert.Equal(t, []string{"ops@example.com"}, f.service.Snapshot().Recipients[entity.ChannelEmail])
}

func TestPreferenceService_InvalidRecipients(t *testing.T) {
	f := newPreferenceFixture(t)
	ctx := context.Background()

	_, err := f.service.AddRecipient(ctx, entity.ChannelSMS, "0123")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPhone))

	_, err = f.service.AddRecipient(ctx, entity.ChannelEmail, "not-an-email")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidEmail))

	_, err = f.service.AddRecipient(ctx, entity.Channel("fax"), "123")
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownChannel))
}

func TestPreferenceService_FailedWriteKeepsPreviousState(t *testing.T) {
	f := newPreferenceFixture(t)
	ctx := context.Background()
	f.expectCommit(ctx, 1)
	f.txRepo.EXPECT().Replace(ctx, "default", mock.Anything).Return(errors.New("disk full"))

	_, err := f.service.AddRecipient(ctx, entity.ChannelSMS, "+14155550123")

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindPersistence, domainerrors.KindOf(err))
	assert.Empty(t, f.service.Snapshot().Recipients[entity.ChannelSMS])
}

func TestPreferenceService_RemoveRecipient(t *testing.T) {
	f := newPreferenceFixture(t)
	ctx := context.Background()
	f.expectCommit(ctx, 2)
	f.txRepo.EXPECT().Replace(ctx, "default", mock.Anything).Return(nil).Times(2)

	_, err := f.service.AddRecipient(ctx, entity.ChannelSMS, "+14155550123")
	require.NoError(t, err)

	prefs, err := f.service.RemoveRecipient(ctx, entity.ChannelSMS, "+14155550123")
	require.NoError(t, err)
	assert.Empty(t, prefs.Recipients[entity.ChannelSMS])

	_, err = f.service.RemoveRecipient(ctx, entity.ChannelSMS, "+14155550123")
	assert.True(t, errors.Is(err, domainerrors.ErrRecipientNotFound))
}

func TestPreferenceService_SetChannel(t *testing.T) {
	f := newPreferenceFixture(t)
	ctx := context.Background()
	f.expectCommit(ctx, 1)
	f.txRepo.EXPECT().Replace(ctx, "default", mock.Anything).Return(nil)

	enabled := true
	prefs, err := f.service.SetChannel(ctx, entity.ChannelSMS, usecase.ChannelSettings{
		Enabled:    &enabled,
		Severities: map[entity.Severity]bool{entity.SeverityGreen: false},
	})

	require.NoError(t, err)
	assert.True(t, prefs.Allows(entity.ChannelSMS, entity.SeverityRed))
	assert.False(t, prefs.Allows(entity.ChannelSMS, entity.SeverityGreen))

	_, err = f.service.SetChannel(ctx, entity.ChannelSMS, usecase.ChannelSettings{
		Severities: map[entity.Severity]bool{"purple": true},
	})
	assert.True(t, domainerrors.IsValidation(err))
}

func TestPreferenceService_SaveRejectsDuplicatesInInput(t *testing.T) {
	f := newPreferenceFixture(t)
	ctx := context.Background()

	prefs := entity.NewNotificationPreferences()
	prefs.Recipients[entity.ChannelSMS] = []string{"+14155550123", "+1 415 555 0123"}

	err := f.service.Save(ctx, prefs)

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateRecipient))
}
