package postgres

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acmedash/invoicer-server/database"
	"github.com/acmedash/invoicer-server/internal/config"
)

type Connection struct {
	*pgxpool.Pool
}

// NewConnection opens the process-wide connection pool and brings the schema
// up to date. The pool is created once at startup and closed at shutdown;
// repositories borrow connections from it per statement.
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	applyTransport(conf, cfg)

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	if err := database.Migrate(ctx, cfg.DSN); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Connection{
		Pool: pool,
	}, nil
}

// applyTransport resolves the dev/prod transport split once, at startup.
// The local development proxy listens on its own port and speaks plain TCP.
func applyTransport(conf *pgxpool.Config, cfg config.Database) {
	switch cfg.Transport {
	case config.TransportProxy:
		conf.ConnConfig.Port = cfg.ProxyPort
		conf.ConnConfig.TLSConfig = nil
	default:
		if !cfg.TLS {
			conf.ConnConfig.TLSConfig = nil
		} else if conf.ConnConfig.TLSConfig == nil {
			conf.ConnConfig.TLSConfig = &tls.Config{ServerName: conf.ConnConfig.Host}
		}
	}
}

func (s *Connection) Close() error {
	if s.Pool != nil {
		s.Pool.Close()
	}
	return nil
}

func (s *Connection) Ping(ctx context.Context) error {
	if s.Pool == nil {
		return fmt.Errorf("connection pool is nil")
	}
	return s.Pool.Ping(ctx)
}
