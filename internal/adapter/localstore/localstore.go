// Package localstore holds the client-side state containers:
// in-memory stores persisted as single JSON blobs under fixed
// keys in an embedded leveldb database, so cart, wishlist and
// session survive a restart the way the original storage did.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stitchkart/storefront/pkg/retry"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

const (
	cartKey     = "osa:cart"
	wishlistKey = "osa:wishlist"
	sessionKey  = "osa:session"
	userIDKey   = "osa:user-id"
)

type DB struct {
	ldb *leveldb.DB
}

// Open opens the blob database at path, retrying briefly when a
// previous process still holds the file lock.
func Open(ctx context.Context, path string) (DB, error) {
	const op = "localstore.Open"

	retryCfg := retry.RetryConfig{
		MaxAttempts: 5,
		Backoff:     retry.LinearBackoff(100 * time.Millisecond),
		ShouldRetry: func(err error) bool {
			return errors.Is(err, storage.ErrLocked)
		},
	}

	ldb, err := retry.DoWithResult(ctx, retryCfg, func() (*leveldb.DB, error) {
		return leveldb.OpenFile(path, nil)
	})
	if err != nil {
		return DB{}, fmt.Errorf("%s: %w", op, err)
	}
	return DB{ldb}, nil
}

// OpenStorage opens the database over an arbitrary leveldb
// storage, e.g. [storage.NewMemStorage] in tests.
func OpenStorage(st storage.Storage) (DB, error) {
	const op = "localstore.OpenStorage"

	ldb, err := leveldb.Open(st, nil)
	if err != nil {
		return DB{}, fmt.Errorf("%s: %w", op, err)
	}
	return DB{ldb}, nil
}

func (db DB) Close() {
	const op = "DB.Close"
	log := slog.With("op", op)

	if err := db.ldb.Close(); err != nil {
		log.Error("failed to close blob database", "err", err)
		return
	}
	log.Info("blob database is closed")
}

func (db DB) put(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return db.ldb.Put([]byte(key), b, nil)
}

// get decodes the blob under key into v; ok is false when the
// key has never been written.
func (db DB) get(key string, v any) (ok bool, err error) {
	b, err := db.ldb.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, err
	}
	return true, nil
}

func (db DB) delete(key string) error {
	return db.ldb.Delete([]byte(key), nil)
}

// hydrate loads a persisted blob, degrading to the zero value on
// a malformed or missing blob so the app renders an empty state
// instead of failing to start.
func hydrate[T any](db DB, key string) (v T) {
	ok, err := db.get(key, &v)
	if err != nil {
		slog.Warn("failed to hydrate persisted blob, starting empty",
			"key", key, "err", err)
		var zero T
		return zero
	}
	if !ok {
		var zero T
		return zero
	}
	return v
}
