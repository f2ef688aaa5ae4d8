package repo

import (
	"context"
	"fmt"

	"MakeupBot/model"
)

// Options selects and configures a UserStore backend.
type Options struct {
	Driver string // sqlite, postgres or firebase

	SQLitePath  string
	PostgresDSN string

	FirebaseCredentials string
	FirebaseDatabaseURL string
}

// Open returns the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (UserStore, error) {
	switch opts.Driver {
	case "", "sqlite":
		return OpenSQLite(opts.SQLitePath)
	case "postgres":
		return OpenPostgres(opts.PostgresDSN)
	case "firebase":
		return NewFirebaseConnector(ctx, opts.FirebaseCredentials, opts.FirebaseDatabaseURL)
	}
	return nil, fmt.Errorf("%w: %q", model.ErrUnknownStorage, opts.Driver)
}
