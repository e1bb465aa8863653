// Package store implements contract.RecordStore over Postgres using bun.
// Reads come back as the denormalized, JSON-safe contract shapes; writes run
// in single transactions with one-statement conflict-resolving upserts for
// the completion tables.
package store

import (
	"database/sql"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/jaxfield/assistant/agent/contract"
)

type Config struct {
	DSN          string        `envconfig:"DSN" split_words:"true" required:"true"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" split_words:"true" default:"3s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" split_words:"true" default:"10s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" split_words:"true" default:"10s"`
	MaxOpenConns int           `envconfig:"MAX_OPEN_CONNS" split_words:"true" default:"8"`
}

type Store struct {
	db  *bun.DB
	now func() time.Time
}

var _ contract.RecordStore = (*Store)(nil)

// Open connects to Postgres. The pool must hold one connection per
// concurrent in-flight message.
func Open(cfg Config) *Store {
	conn := pgdriver.NewConnector(
		pgdriver.WithDSN(cfg.DSN),
		pgdriver.WithDialTimeout(cfg.DialTimeout),
		pgdriver.WithReadTimeout(cfg.ReadTimeout),
		pgdriver.WithWriteTimeout(cfg.WriteTimeout),
	)
	sqldb := sql.OpenDB(conn)
	sqldb.SetMaxOpenConns(cfg.MaxOpenConns)

	return &Store{
		db:  bun.NewDB(sqldb, pgdialect.New()),
		now: time.Now,
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}
