package auth

import "context"

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID string
	Token  string
	Role   string
}

func (i Identity) IsZero() bool {
	return i.UserID == ""
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type identityCtxKey struct{}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// IdentityFrom returns the identity stored by the auth middleware, or the zero identity.
func IdentityFrom(ctx context.Context) Identity {
	identity, _ := ctx.Value(identityCtxKey{}).(Identity)
	return identity
}
