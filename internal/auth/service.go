package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/gymlog/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "gymlog-session||"
	tokensSetKey     = "gymlog-sessions"

	fieldUserID    = "user_id"
	fieldRole      = "role"
	fieldCreatedAt = "created_at"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=auth
type usersRepo interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
}

type transitionPublisher interface {
	Publish(t Transition)
}

type Service struct {
	redisClient *redis.Client
	users       usersRepo
	publisher   transitionPublisher
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	users usersRepo,
	publisher transitionPublisher,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		users:          users,
		publisher:      publisher,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Login checks the credentials and opens a new login session.
func (as *Service) Login(ctx context.Context, creds Credentials, createdAt time.Time) (string, *User, error) {
	user, err := as.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrWrongCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(creds.Password, user.PasswordHash) {
		return "", nil, ErrWrongCredentials
	}
	if user.State != StateActive {
		return "", nil, ErrUserDisabled
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", nil, err
	}

	cmdSet := as.redisClient.HSet(ctx, sessionKey(token),
		fieldUserID, user.ID,
		fieldRole, user.Role,
		fieldCreatedAt, createdAt.Unix(),
	)
	if err := cmdSet.Err(); err != nil {
		return "", nil, err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", nil, err
	}

	as.publisher.Publish(Transition{
		Authenticated: true,
		UserID:        user.ID,
		Token:         token,
		Profile:       user.Profile,
	})

	return token, user, nil
}

// Logout closes the login session. Returns false if there was no such session.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	session, err := readSession(ctx, as.redisClient, token)
	if err != nil {
		return false, err
	}
	if session == nil {
		return false, nil
	}

	if err := as.removeSession(ctx, token); err != nil {
		return false, err
	}

	as.publisher.Publish(Transition{
		Authenticated: false,
		UserID:        session.userID,
		Token:         token,
	})

	return true, nil
}

// Profile returns the stored profile of the user.
func (as *Service) Profile(ctx context.Context, userID string) (*Profile, error) {
	user, err := as.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &user.Profile, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	for _, token := range sessionTokens {
		session, err := readSession(ctx, as.redisClient, token)
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if session == nil {
			// dangling token, session hash is gone
			if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
				log.Errorf("=> auth service, clean dangling token %s: %s", token, err)
			}
			continue
		}

		if time.Since(session.createdAt) <= as.ttl {
			continue
		}

		log.Debugf("=>\twill clean the session of user: %s", session.userID)
		if err := as.removeSession(ctx, token); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}

		as.publisher.Publish(Transition{
			Authenticated: false,
			UserID:        session.userID,
			Token:         token,
		})
	}
}

func (as *Service) removeSession(ctx context.Context, token string) error {
	if err := as.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
		return err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return err
	}

	return nil
}

type loginSession struct {
	userID    string
	role      string
	createdAt time.Time
}

// readSession returns nil when there is no session for the token.
func readSession(ctx context.Context, rdb *redis.Client, token string) (*loginSession, error) {
	cmd := rdb.HGetAll(ctx, sessionKey(token))
	if err := cmd.Err(); err != nil {
		return nil, err
	}

	fields := cmd.Val()
	if len(fields) == 0 {
		return nil, nil
	}

	createdAtUnix, err := strconv.ParseInt(fields[fieldCreatedAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse session created at: %w", err)
	}

	return &loginSession{
		userID:    fields[fieldUserID],
		role:      fields[fieldRole],
		createdAt: time.Unix(createdAtUnix, 0),
	}, nil
}
