package usecase

import (
	"context"
	"time"
)

// LoginResult is returned to a signed-in operator.
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthUsecase is the operator login gate of the dashboard.
type AuthUsecase interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
