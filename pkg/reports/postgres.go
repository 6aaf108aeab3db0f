package reports

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrymomot/liekit/pkg/lies"
)

//go:embed migrations/*.sql
var migrations embed.FS

type PostgresConfig struct {
	ConnectionString  string        `env:"PG_CONN_URL,required"`                   // ConnectionString is the connection string to the database.
	MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`      // MaxOpenConns is the maximum number of open connections to the database.
	MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`       // MaxIdleConns is the maximum number of idle connections to the database.
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`  // HealthCheckPeriod is the period between health checks.
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"` // MaxConnIdleTime is the maximum amount of time a connection may be idle to be reused.
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`  // MaxConnLifetime is the maximum amount of time a connection may be reused.

	RetryAttempts int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`

	MigrationsTable string `env:"PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"`
}

// ConnectPostgres opens a pool and pings it, backing off linearly between attempts.
func ConnectPostgres(ctx context.Context, cfg PostgresConfig) (*pgxpool.Pool, error) {
	connConfig, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}
	connConfig.MaxConns = cfg.MaxOpenConns
	connConfig.MinConns = cfg.MaxIdleConns
	connConfig.HealthCheckPeriod = cfg.HealthCheckPeriod
	connConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	connConfig.MaxConnLifetime = cfg.MaxConnLifetime

	for i := range cfg.RetryAttempts {
		pool, err := pgxpool.NewWithConfig(ctx, connConfig)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToOpenDBConnection, ctx.Err())
		case <-time.After(time.Duration(i+1) * cfg.RetryInterval):
		}
	}

	return nil, ErrFailedToOpenDBConnection
}

// migrateLogger is satisfied by *slog.Logger.
type migrateLogger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MigratePostgres applies the embedded verdict schema.
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool, cfg PostgresConfig, log migrateLogger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			log.ErrorContext(ctx, "failed to close migration connection", "error", err)
		}
	}(db)

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{log: log})
	if cfg.MigrationsTable != "" {
		goose.SetTableName(cfg.MigrationsTable)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return nil
}

// gooseLogger routes goose's Printf-style output into the structured logger.
type gooseLogger struct {
	log migrateLogger
}

func (a gooseLogger) Fatalf(format string, v ...any) {
	a.log.ErrorContext(context.Background(), fmt.Sprintf(format, v...))
}

func (a gooseLogger) Printf(format string, v ...any) {
	a.log.InfoContext(context.Background(), fmt.Sprintf(format, v...))
}

// DBPool is the subset of *pgxpool.Pool the store needs.
type DBPool interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	insertVerdictSQL = `INSERT INTO verdicts (id, hash, passed, system, payload, created_at) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (id) DO NOTHING`
	selectByIDSQL    = `SELECT payload FROM verdicts WHERE id = $1`
	selectByHashSQL  = `SELECT payload FROM verdicts WHERE hash = $1 ORDER BY created_at DESC LIMIT 1`
)

// PostgresStore keeps verdicts as JSONB rows.
type PostgresStore struct {
	pool DBPool
}

// NewPostgresStore wraps an open pool.
func NewPostgresStore(pool DBPool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Save(ctx context.Context, v lies.Verdict) error {
	if err := validate(v); err != nil {
		return err
	}
	payload, err := encode(v)
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, insertVerdictSQL, v.ID, v.Hash, v.Passed, v.System, payload, v.CreatedAt); err != nil {
		return fmt.Errorf("insert verdict %s: %w", v.ID, err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (lies.Verdict, error) {
	return s.one(ctx, selectByIDSQL, id)
}

func (s *PostgresStore) LatestByHash(ctx context.Context, hash string) (lies.Verdict, error) {
	return s.one(ctx, selectByHashSQL, hash)
}

func (s *PostgresStore) one(ctx context.Context, query, arg string) (lies.Verdict, error) {
	var payload []byte
	if err := s.pool.QueryRow(ctx, query, arg).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return lies.Verdict{}, ErrNotFound
		}
		return lies.Verdict{}, fmt.Errorf("select verdict: %w", err)
	}
	return decode(payload)
}

// Healthcheck pings the pool.
func (s *PostgresStore) Healthcheck() Healthcheck {
	return func(ctx context.Context) error {
		if err := s.pool.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
