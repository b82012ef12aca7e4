// Package kvstore defines the durable key/value contract the repository layer
// is built on, together with typed JSON helpers over it.
//
// The helpers never return errors: a missing or corrupt value reads as
// empty/absent and a failed write is a logged no-op. This keeps the policy of
// the storage layer ("degrade, don't fail") in one place and observable
// through Storage.Available and the log.
package kvstore

import (
	"encoding/json"

	"github.com/patric-chuzhbe/todokeeper/internal/logger"
)

// Storage is a durable keyed text medium. Implementations must be safe for
// use by a single process; cross-operation atomicity is the write queue's job.
type Storage interface {
	// Read returns the raw value stored under key, or ok=false when absent.
	Read(key string) (data []byte, ok bool)

	// Write stores data under key, replacing any previous value.
	Write(key string, data []byte) error

	// Remove deletes the value stored under key, if any.
	Remove(key string) error

	// Available reports whether the underlying medium is usable. An
	// unavailable store reads absent and writes nothing.
	Available() bool

	Close() error
}

// ReadList decodes the JSON array stored under key. Absent or corrupt data
// yields an empty slice, never an error.
func ReadList[T any](s Storage, key string) []T {
	data, ok := s.Read(key)
	if !ok {
		return []T{}
	}

	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		logger.Log.Warnf("ignoring corrupt list under key %q: %v", key, err)
		return []T{}
	}
	if list == nil {
		return []T{}
	}

	return list
}

// WriteList stores list as a JSON array under key. Failures are logged and
// swallowed.
func WriteList[T any](s Storage, key string, list []T) {
	data, err := json.MarshalIndent(list, "", "\t")
	if err != nil {
		logger.Log.Errorf("cannot marshal list for key %q: %v", key, err)
		return
	}
	if err := s.Write(key, data); err != nil {
		logger.Log.Warnf("cannot persist list under key %q: %v", key, err)
	}
}

// ReadSingle decodes the single JSON value stored under key.
// Absent or corrupt data yields ok=false.
func ReadSingle[T any](s Storage, key string) (T, bool) {
	var value T

	data, ok := s.Read(key)
	if !ok {
		return value, false
	}

	if err := json.Unmarshal(data, &value); err != nil {
		logger.Log.Warnf("ignoring corrupt value under key %q: %v", key, err)
		var zero T
		return zero, false
	}

	return value, true
}

// WriteSingle stores value as a single JSON document under key.
// Failures are logged and swallowed.
func WriteSingle[T any](s Storage, key string, value T) {
	data, err := json.MarshalIndent(value, "", "\t")
	if err != nil {
		logger.Log.Errorf("cannot marshal value for key %q: %v", key, err)
		return
	}
	if err := s.Write(key, data); err != nil {
		logger.Log.Warnf("cannot persist value under key %q: %v", key, err)
	}
}

// Remove deletes the value stored under key. Failures are logged and swallowed.
func Remove(s Storage, key string) {
	if err := s.Remove(key); err != nil {
		logger.Log.Warnf("cannot remove key %q: %v", key, err)
	}
}
