// Package storage implements the durable, versioned collection store shared
// by every view. Each named collection occupies one slot holding a serialized
// sequence of records; versioned collections keep their schema version in a
// sibling slot. Storage faults never propagate: reads degrade to an empty
// sequence and writes are reported but logged at the store level too.
package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
)

// Backend is the raw slot storage. Read returns nil without an error when
// the slot has never been written.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

// Store wraps a Backend with JSON encoding and fault degradation.
type Store struct {
	backend Backend
	logger  *log.Logger
}

func New(backend Backend, logger *log.Logger) *Store {
	return &Store{backend: backend, logger: logger}
}

// Load reads the persisted sequence for key. An absent or malformed blob
// degrades to an empty sequence; it never fails.
func Load[T any](s *Store, key string) []T {
	raw, err := s.backend.Read(key)
	if err != nil {
		s.logf("storage: read %q: %v", key, err)
		return []T{}
	}
	if len(raw) == 0 {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logf("storage: decode %q: %v", key, err)
		return []T{}
	}
	return records
}

// Replace atomically overwrites the entire stored sequence for key. It is
// the only supported way to persist mutations: append, remove and edit are
// all expressed as a whole-collection replace.
func Replace[T any](s *Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		s.logf("storage: encode %q: %v", key, err)
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := s.backend.Write(key, raw); err != nil {
		s.logf("storage: write %q: %v", key, err)
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// LoadVersioned reads the stored sequence together with its version tag.
// When the stored version differs from currentVersion (including when it is
// absent), the stored data is discarded, seed() supplies the authoritative
// default, and both the data and currentVersion are persisted. Otherwise the
// stored sequence is returned unchanged and seed is never invoked.
func LoadVersioned[T any](s *Store, key string, currentVersion int, seed func() []T) []T {
	if v, ok := s.readVersion(key); ok && v == currentVersion {
		return Load[T](s, key)
	}
	records := seed()
	ReplaceVersioned(s, key, currentVersion, records)
	return records
}

// ReplaceVersioned overwrites both the sequence and its version tag.
func ReplaceVersioned[T any](s *Store, key string, version int, records []T) {
	if err := Replace(s, key, records); err != nil {
		return
	}
	if err := s.backend.Write(versionKey(key), []byte(strconv.Itoa(version))); err != nil {
		s.logf("storage: write %q: %v", versionKey(key), err)
	}
}

func (s *Store) readVersion(key string) (int, bool) {
	raw, err := s.backend.Read(versionKey(key))
	if err != nil {
		s.logf("storage: read %q: %v", versionKey(key), err)
		return 0, false
	}
	if len(raw) == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}

func versionKey(key string) string {
	return key + ".version"
}

func (s *Store) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
