package repo

import (
	"context"

	"MakeupBot/model"
)

// UserStore persists one record per user. Every setter is a single-field
// point write; getters report a missing user as absent rather than an error.
type UserStore interface {
	Ensure(ctx context.Context, userID int64) error

	Subscribed(ctx context.Context, userID int64) (bool, error)
	SetSubscribed(ctx context.Context, userID int64, subscribed bool) error
	ListSubscribed(ctx context.Context) ([]model.Subscriber, error)
	AdvanceCursor(ctx context.Context, userID int64, cursor int) error

	LastResult(ctx context.Context, userID int64) (string, bool, error)
	SetLastResult(ctx context.Context, userID int64, text string) error
	LastAnswers(ctx context.Context, userID int64) (model.Answers, bool, error)
	SetLastAnswers(ctx context.Context, userID int64, answers model.Answers) error

	Close() error
}

var (
	_ UserStore = (*GormStore)(nil)
	_ UserStore = (*FirebaseConnector)(nil)
)
