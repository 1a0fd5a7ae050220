package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/carbon/internal/carbon/store"
	"github.com/aussiebroadwan/carbon/internal/carbon/store/drivers/mongo"
	"github.com/aussiebroadwan/carbon/internal/carbon/store/drivers/postgres"
	"github.com/aussiebroadwan/carbon/internal/carbon/store/drivers/sqlite"
)

const (
	driverSQLite   = "sqlite"
	driverPostgres = "postgres"
	driverMongo    = "mongo"
)

// driverFor picks a store driver from the DSN scheme. Anything without a
// recognised scheme is a sqlite path.
func driverFor(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return driverPostgres
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return driverMongo
	default:
		return driverSQLite
	}
}

// sqliteDSN turns a plain path or sqlite:// URL into a modernc DSN. file:
// URIs and :memory: pass through untouched.
func sqliteDSN(dsn string) string {
	dsn = strings.TrimPrefix(dsn, "sqlite://")
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return dsn
	}
	return sqlite.FileDSN(dsn)
}

// OpenStore connects to the store named by dsn and applies migrations.
func OpenStore(ctx context.Context, dsn string) (store.Store, error) {
	var (
		st  store.Store
		err error
	)

	switch driverFor(dsn) {
	case driverPostgres:
		st, err = postgres.NewStore(ctx, dsn)
	case driverMongo:
		st, err = mongo.NewStore(ctx, dsn)
	default:
		st, err = sqlite.NewStore(sqliteDSN(dsn))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driverFor(dsn), err)
	}

	if err := st.ApplyMigrations(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	return st, nil
}
