package auth

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/sammeh543/CycleTrackApp-sub001/internal"
)

// LocalAuthProvider validates tokens against a users file. Meant for
// development and self-hosted single-user installs.
type LocalAuthProvider struct {
	users  map[string]*internal.User // token -> user
	logger internal.Logger
}

func NewLocalAuthProvider(usersFile string, logger internal.Logger) (*LocalAuthProvider, error) {
	p := &LocalAuthProvider{
		users:  make(map[string]*internal.User),
		logger: logger,
	}

	file, err := os.Open(usersFile)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, err
	}
	defer file.Close()

	var users []*internal.User
	if err := json.NewDecoder(file).Decode(&users); err != nil {
		return nil, err
	}
	for _, u := range users {
		p.users[u.Token] = u
	}
	return p, nil
}

func (a *LocalAuthProvider) ValidateTokenLocal(token string) (*internal.User, error) {
	if u, ok := a.users[token]; ok {
		return u, nil
	}
	a.logger.Warnf("invalid token: %s", token)
	return nil, errors.New("invalid token")
}

func (a *LocalAuthProvider) ValidateTokenRemote(ctx context.Context, token string) (*internal.User, error) {
	a.logger.Warnf("ValidateTokenRemote not implemented in LocalAuthProvider")
	return nil, errors.New("not implemented in LocalAuthProvider")
}
