package client

import (
	"context"
	"time"
)

// Identity is the signed-in user as reported by the session service.
type Identity struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

// SessionSource answers "who is signed in right now". Implementations
// return ErrUnauthenticated when there is no live session; any other
// failure is treated the same way by callers.
type SessionSource interface {
	CurrentUser(ctx context.Context) (*Identity, error)
}

// Record is anything the generic views can hold.
type Record interface {
	RecordID() uint
}

type ListOptions struct {
	Date  string // optional YYYY-MM-DD equality filter
	Limit int    // optional, server caps at 30
}

// RecordStore is the remote data service seen from the views: user scoping
// happens on the other side of this interface.
type RecordStore[R any] interface {
	List(ctx context.Context, opts ListOptions) ([]R, error)
	Create(ctx context.Context, payload R) (R, error)
	Update(ctx context.Context, id uint, payload R) (R, error)
	Delete(ctx context.Context, id uint) error
}

// Today is the default draft date.
func Today() string { return time.Now().Format("2006-01-02") }
