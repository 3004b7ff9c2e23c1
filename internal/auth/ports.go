package auth

import (
	"context"

	"alumni-connect-api/internal/logs"
)

type AuthServicePort interface {
	Register(ctx context.Context, req RegisterRequest) (*ProfileSummary, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// ProfileLookup resolves the caller of /auth/me.
type ProfileLookup interface {
	GetProfile(ctx context.Context, id int) (*ProfileSummary, error)
}

type LogServicePort interface {
	Log(ctx context.Context, entry logs.SystemLog, payload any) error
}

var _ AuthServicePort = (*AuthService)(nil)
var _ LogServicePort = (*logs.LogService)(nil)
