// Package cache stores rendered HTML keyed by a content hash of the source
// document and the options it was rendered with, so the HTTP service can
// skip re-running Convert on unchanged input; watch mode does not use it.
// Grounded on
// jinterlante1206-AleutianLocal's storage/badger package (Config{InMemory,
// Path}, Open returning a *badger.DB wrapper), repurposed from that repo's
// trace storage to a document-rendering cache.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

var (
	ErrOpen   = errors.New("open cache")
	ErrClosed = errors.New("cache is closed")
)

// Cache wraps a badger.DB holding rendered-HTML entries.
type Cache struct {
	db *badger.DB
	tt time.Duration
}

// Config selects where the cache stores its data.
type Config struct {
	// Dir is the badger data directory. Empty means in-memory only.
	Dir string

	// TTL is how long an entry stays valid; zero means no expiry.
	TTL time.Duration
}

// Open creates or opens the cache described by cfg.
func Open(cfg Config) (*Cache, error) {
	opts := badger.DefaultOptions(cfg.Dir)
	if cfg.Dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	return &Cache{db: db, tt: cfg.TTL}, nil
}

// Close releases the underlying badger database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key derives a cache key from the document source and a string describing
// the render options in effect, so two renders of the same text under
// different Options never collide.
func Key(source, optionsFingerprint string) string {
	h := sha256.New()
	h.Write([]byte(optionsFingerprint))
	h.Write([]byte{0})
	h.Write([]byte(source))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached HTML for key, if present and unexpired.
func (c *Cache) Get(key string) (html string, ok bool, err error) {
	err = c.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get([]byte(key))
		if errors.Is(getErr, badger.ErrKeyNotFound) {
			return nil
		}
		if getErr != nil {
			return getErr
		}
		ok = true
		return item.Value(func(val []byte) error {
			html = string(val)
			return nil
		})
	})
	if err != nil {
		return "", false, err
	}
	return html, ok, nil
}

// Set stores html under key, subject to the cache's configured TTL.
func (c *Cache) Set(key, html string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), []byte(html))
		if c.tt > 0 {
			entry = entry.WithTTL(c.tt)
		}
		return txn.SetEntry(entry)
	})
}
