package errors

import (
	"testing"

	"vplmon/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := ErrInvalidPhone.WithDetails("12")

	assert.True(t, errors.Is(err, ErrInvalidPhone))
	assert.False(t, errors.Is(err, ErrInvalidEmail))
	assert.Equal(t, "12", err.Details())
	assert.Contains(t, err.Error(), "12")
}

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation sentinel", err: ErrDuplicateRecipient, want: KindValidation},
		{name: "wrapped validation", err: errors.Wrap(ErrInvalidEmail.WithDetails("x"), "add recipient"), want: KindValidation},
		{name: "transport", err: NewTransportError("publish", cause), want: KindTransport},
		{name: "gateway", err: errors.Wrap(NewGatewayError("send sms", cause), "fanout"), want: KindGateway},
		{name: "persistence", err: NewPersistenceError("save preferences", cause), want: KindPersistence},
		{name: "classification", err: NewClassificationError("decode", cause), want: KindClassification},
		{name: "plain", err: cause, want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestOperationError_UnwrapsCause(t *testing.T) {
	err := NewTransportError("connect", ErrNotConnected)

	assert.True(t, errors.Is(err, ErrNotConnected))
	assert.Nil(t, NewGatewayError("send", nil))
}
