// ABOUTME: Key-value storage abstraction shared by all entity tables
// ABOUTME: Defines the KV interface and a generic JSON-encoded Table
package store

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned by KV.Get when the key does not exist.
	ErrKeyNotFound = errors.New("key not found")

	// ErrDuplicateKey is returned by Table.Insert when the key is taken.
	ErrDuplicateKey = errors.New("duplicate key")
)

// KV is the minimal contract the entity tables need from a storage engine.
// Implementations: Badger (default) and SQLite. The hosting environment
// serializes invocations, so no locking happens at this layer beyond what
// each engine does internally.
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Keys(prefix []byte) ([][]byte, error)
	Close() error
}

// Table is a typed view over a KV, storing JSON-encoded records under a
// per-entity key prefix.
type Table[T any] struct {
	kv     KV
	prefix string
}

func NewTable[T any](kv KV, prefix string) *Table[T] {
	return &Table[T]{kv: kv, prefix: prefix}
}

func (t *Table[T]) key(id string) []byte {
	return []byte(t.prefix + id)
}

// Get returns the record for id, or nil when none exists.
func (t *Table[T]) Get(id string) (*T, error) {
	data, err := t.kv.Get(t.key(id))
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode %s%s: %w", t.prefix, id, err)
	}
	return &v, nil
}

// Contains reports whether a record exists for id.
func (t *Table[T]) Contains(id string) (bool, error) {
	_, err := t.kv.Get(t.key(id))
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert stores a new record, failing with ErrDuplicateKey when id is taken.
func (t *Table[T]) Insert(id string, v *T) error {
	exists, err := t.Contains(id)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s%s", ErrDuplicateKey, t.prefix, id)
	}
	return t.Put(id, v)
}

// Put stores a record unconditionally.
func (t *Table[T]) Put(id string, v *T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s%s: %w", t.prefix, id, err)
	}
	return t.kv.Set(t.key(id), data)
}

// List returns every record under the prefix in key-ascending order.
func (t *Table[T]) List() ([]T, error) {
	keys, err := t.kv.Keys([]byte(t.prefix))
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		data, err := t.kv.Get(k)
		if errors.Is(err, ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", string(k), err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Empty reports whether the table holds no records.
func (t *Table[T]) Empty() (bool, error) {
	keys, err := t.kv.Keys([]byte(t.prefix))
	if err != nil {
		return false, err
	}
	return len(keys) == 0, nil
}
