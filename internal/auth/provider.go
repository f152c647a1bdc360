package auth

import (
	"context"

	"github.com/sammeh543/CycleTrackApp-sub001/internal"
)

type Provider interface {
	ValidateTokenLocal(token string) (*internal.User, error)
	ValidateTokenRemote(ctx context.Context, token string) (*internal.User, error)
}
