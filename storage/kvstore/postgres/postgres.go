// Package pgkv is the Postgres key-value backend, for installs that want
// the key-space on a managed database.
package pgkv

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/trezcool/kitivo/core"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BYTEA NOT NULL
)`

type Store struct {
	db *sqlx.DB
}

var _ core.KVStore = (*Store)(nil)

func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening postgres store")
	}
	if err = ping(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating kv table")
	}
	return &Store{db: db}, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}
	return errors.Wrap(err, "DB ping timeout")
}

func (s *Store) Load(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, core.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading key %q", key)
	}
	return value, nil
}

func (s *Store) Save(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return errors.Wrapf(err, "saving key %q", key)
}

func (s *Store) Keys() ([]string, error) {
	var keys []string
	if err := s.db.Select(&keys, `SELECT key FROM kv ORDER BY key`); err != nil {
		return nil, errors.Wrap(err, "listing keys")
	}
	return keys, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
