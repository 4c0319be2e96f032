package auth

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	StateActive   = "active"
	StateDisabled = "disabled"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrUserDisabled     = errors.New("user disabled")
	ErrEmailTaken       = errors.New("email already taken")
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Profile struct {
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	State    string `json:"state"`
}

type User struct {
	ID           string
	PasswordHash string
	CreatedAt    time.Time
	Profile
}
