package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"demo/storefront/internal/config"
)

// Open acquires the single connection used for a run and wraps it in the
// repository for cfg.Driver. The returned close func must always be called.
func Open(ctx context.Context, cfg config.Config, log zerolog.Logger) (Repository, func() error, error) {
	tables := Tables{Orders: cfg.OrderTable(), Details: cfg.DetailTable()}
	log = log.With().Str("driver", cfg.Driver).Logger()

	switch cfg.Driver {
	case config.DriverPostgres:
		conn, err := pgx.Connect(ctx, cfg.DataSourceName())
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		closeFn := func() error { return conn.Close(context.Background()) }
		repo, err := NewPg(conn, tables, log)
		if err != nil {
			_ = closeFn()
			return nil, nil, err
		}
		log.Info().Str("database", conn.Config().Database).Msg("connected")
		return repo, closeFn, nil

	case config.DriverMySQL:
		mc, err := mysql.ParseDSN(cfg.DataSourceName())
		if err != nil {
			return nil, nil, fmt.Errorf("db dsn: %w", err)
		}
		connector, err := mysql.NewConnector(mc)
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		db := sql.OpenDB(connector)
		db.SetMaxOpenConns(1)
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		repo, err := NewMySQL(db, tables, log)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info().Str("database", mc.DBName).Msg("connected")
		return repo, db.Close, nil
	}

	return nil, nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
}
