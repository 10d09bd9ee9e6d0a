// ABOUTME: Badger-backed KV implementation
// ABOUTME: Default local storage engine for the content store
package store

import (
	"errors"
	"os"

	"github.com/dgraph-io/badger/v3"
)

// BadgerKV stores entries in a local BadgerDB directory.
type BadgerKV struct {
	db *badger.DB
}

// OpenBadger opens (creating if needed) a badger store rooted at dir.
func OpenBadger(dir string) (*BadgerKV, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dir).
		WithLogger(nil) // Suppress badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerKV{db: db}, nil
}

func (b *BadgerKV) Get(key []byte) ([]byte, error) {
	var result []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		result, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	return result, err
}

func (b *BadgerKV) Set(key, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// Keys returns all keys with the given prefix in byte order.
func (b *BadgerKV) Keys(prefix []byte) ([][]byte, error) {
	var keys [][]byte
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	return keys, err
}

func (b *BadgerKV) Close() error {
	return b.db.Close()
}
