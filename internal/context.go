package internal

import (
	"context"
	"time"
)

type ctxKey string

const ContextUserKey ctxKey = "user"

// User is the authenticated principal placed into the request context by
// the auth middleware. AccessLevel is the three-step ladder from the
// directory: ADMIN, MANAGER or EMPLOYEE.
type User struct {
	ID          string
	Email       string
	AccessLevel string
}

const (
	AccessLevelAdmin    = "ADMIN"
	AccessLevelManager  = "MANAGER"
	AccessLevelEmployee = "EMPLOYEE"
)

// IsPrivileged reports whether the user may approve requests and manage
// other employees' records.
func (u *User) IsPrivileged() bool {
	return u.AccessLevel == AccessLevelAdmin || u.AccessLevel == AccessLevelManager
}

func (u *User) IsAdmin() bool {
	return u.AccessLevel == AccessLevelAdmin
}

func UserFromContext(ctx context.Context) (*User, bool) {
	if ctx == nil {
		return nil, false
	}
	user, ok := ctx.Value(ContextUserKey).(*User)
	return user, ok
}

func ContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, user)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
