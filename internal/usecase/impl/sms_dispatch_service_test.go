package impl

import (
	"context"
	"testing"
	"time"

	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/service"
	mockSvc "vplmon/internal/mocks/service"
	"vplmon/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var readyProvider = service.ProviderConfigStatus{HasSID: true, HasToken: true, HasPhone: true}

func newDispatch(t *testing.T) (*smsDispatchService, *mockSvc.MockSMSProvider) {
	t.Helper()

	provider := mockSvc.NewMockSMSProvider(t)
	svc := NewSMSDispatchService(SMSDispatchServiceParams{
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
		Provider: provider,
	}).(*smsDispatchService)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return svc, provider
}

func TestDispatch_RejectsIncompleteRequests(t *testing.T) {
	svc, _ := newDispatch(t)

	_, err := svc.Dispatch(context.Background(), usecase.SMSDispatchRequest{Message: "Test"})
	assert.True(t, errors.Is(err, domainerrors.ErrMissingPhones))

	_, err = svc.Dispatch(context.Background(), usecase.SMSDispatchRequest{Phones: []string{"+15551230000"}, Message: "  "})
	assert.True(t, errors.Is(err, domainerrors.ErrMissingMessage))
}

func TestDispatch_MisconfiguredProvider(t *testing.T) {
	svc, provider := newDispatch(t)
	provider.EXPECT().Configured().Return(service.ProviderConfigStatus{HasSID: true})

	_, err := svc.Dispatch(context.Background(), usecase.SMSDispatchRequest{Phones: []string{"+15551230000"}, Message: "Test"})

	assert.True(t, errors.Is(err, domainerrors.ErrProviderMisconfigured))
}

func TestDispatch_PartialFailure(t *testing.T) {
	svc, provider := newDispatch(t)
	provider.EXPECT().Configured().Return(readyProvider)
	provider.EXPECT().Send(mock.Anything, "+15551230000", "Test\nTimestamp: 2024-05-01T10:00:00Z").Return("SM123", nil).Once()

	result, err := svc.Dispatch(context.Background(), usecase.SMSDispatchRequest{
		Phones:    []string{"+15551230000", "+1bad"},
		Message:   "Test",
		Timestamp: "2024-05-01T10:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BatchPartial, result.Outcome)
	require.Len(t, result.Results, 2)
	assert.Equal(t, entity.DeliveryResult{Recipient: "+15551230000", Channel: entity.ChannelSMS, Outcome: entity.OutcomeSuccess, ProviderID: "SM123"}, result.Results[0])
	assert.Equal(t, "+1bad", result.Results[1].Recipient)
	assert.Equal(t, entity.OutcomeFailure, result.Results[1].Outcome)
	assert.NotEmpty(t, result.Results[1].ErrorDetail)
}

func TestDispatch_ResultsKeepRequestOrder(t *testing.T) {
	svc, provider := newDispatch(t)
	provider.EXPECT().Configured().Return(readyProvider)
	provider.EXPECT().Send(mock.Anything, mock.Anything, "Alert\nTimestamp: 2024-05-01T12:00:00Z").
		RunAndReturn(func(_ context.Context, phone, _ string) (string, error) {
			if phone == "+15551230002" {
				return "", errors.New("unreachable handset")
			}

			return "SM" + phone[len(phone)-1:], nil
		})

	phones := []string{"+15551230001", "+15551230002", "+15551230003", "+15551230004"}
	result, err := svc.Dispatch(context.Background(), usecase.SMSDispatchRequest{Phones: phones, Message: "Alert"})
	require.NoError(t, err)

	require.Len(t, result.Results, len(phones))
	for i, phone := range phones {
		assert.Equal(t, phone, result.Results[i].Recipient)
	}
	assert.Equal(t, "SM1", result.Results[0].ProviderID)
	assert.Equal(t, "unreachable handset", result.Results[1].ErrorDetail)
	assert.Equal(t, entity.BatchPartial, result.Outcome)
}

func TestDispatch_AllFailedAndPanicsContained(t *testing.T) {
	svc, provider := newDispatch(t)
	provider.EXPECT().Configured().Return(readyProvider)
	provider.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, string, string) { panic("driver bug") })

	result, err := svc.Dispatch(context.Background(), usecase.SMSDispatchRequest{Phones: []string{"+15551230000"}, Message: "Test"})
	require.NoError(t, err)

	assert.Equal(t, entity.BatchAllFailed, result.Outcome)
	assert.Contains(t, result.Results[0].ErrorDetail, "driver bug")
}
