package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	IsLogged(ctx context.Context, token string) (Identity, bool, error)
}

// LoginTestChecker is an in-memory Checker, used in tests of other packages.
type LoginTestChecker struct {
	LoggedSessions map[string]Identity
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]Identity{},
	}
}

func (c *LoginTestChecker) IsLogged(_ context.Context, token string) (Identity, bool, error) {
	identity, ok := c.LoggedSessions[token]
	if !ok {
		return Identity{}, false, nil
	}
	identity.Token = token
	return identity, true, nil
}
