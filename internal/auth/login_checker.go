package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (c *LoginChecker) IsLogged(ctx context.Context, token string) (Identity, bool, error) {
	session, err := readSession(ctx, c.redisClient, token)
	if err != nil {
		return Identity{}, false, err
	}
	if session == nil {
		return Identity{}, false, nil
	}

	if time.Since(session.createdAt) > c.ttl {
		return Identity{}, false, nil
	}

	return Identity{
		UserID: session.userID,
		Token:  token,
		Role:   session.role,
	}, true, nil
}
