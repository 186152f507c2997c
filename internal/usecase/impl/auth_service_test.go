package impl

import (
	"context"
	"testing"
	"time"

	"vplmon/config"
	domainerrors "vplmon/internal/domain/errors"
	mockSvc "vplmon/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T, operator *config.OperatorConfig) (*authService, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	t.Helper()

	cfg := newTestConfig()
	cfg.Operator = operator
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		Config: cfg,
		Logger: newDiscardLogger(),
		Hasher: hasher,
		Tokens: tokens,
	}).(*authService)

	return svc, hasher, tokens
}

func TestAuth_LoginIssuesToken(t *testing.T) {
	svc, hasher, tokens := newAuth(t, &config.OperatorConfig{Username: "operator", PasswordHash: "$2a$hash"})
	expires := time.Now().Add(time.Hour)

	hasher.EXPECT().Check("secret", "$2a$hash").Return(true)
	tokens.EXPECT().GenerateToken("operator").Return("signed", expires, nil)

	result, err := svc.Login(context.Background(), "operator", "secret")
	require.NoError(t, err)

	assert.Equal(t, "signed", result.AccessToken)
	assert.Equal(t, expires, result.ExpiresAt)
}

func TestAuth_LoginRejectsBadCredentials(t *testing.T) {
	svc, hasher, _ := newAuth(t, &config.OperatorConfig{Username: "operator", PasswordHash: "$2a$hash"})

	hasher.EXPECT().Check("wrong", "$2a$hash").Return(false).Once()
	_, err := svc.Login(context.Background(), "operator", "wrong")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	hasher.EXPECT().Check("secret", "$2a$hash").Return(true).Once()
	_, err = svc.Login(context.Background(), "intruder", "secret")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuth_LoginWithoutOperatorAccount(t *testing.T) {
	svc, _, _ := newAuth(t, nil)

	_, err := svc.Login(context.Background(), "operator", "secret")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuth_TokenFailureIsInternal(t *testing.T) {
	svc, hasher, tokens := newAuth(t, &config.OperatorConfig{Username: "operator", PasswordHash: "$2a$hash"})

	hasher.EXPECT().Check("secret", "$2a$hash").Return(true)
	tokens.EXPECT().GenerateToken("operator").Return("", time.Time{}, errors.New("sign failed"))

	_, err := svc.Login(context.Background(), "operator", "secret")

	assert.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
