// Package memkv implements kvstore.Storage in process memory. It backs tests
// and execution contexts that run without a persistent medium.
package memkv

import "sync"

// MemKV is a map-backed store. It is always available; its contents live only
// for the lifetime of the process.
type MemKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// New returns an empty in-memory store.
func New() *MemKV {
	return &MemKV{
		values: map[string][]byte{},
	}
}

func (s *MemKV) Read(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.values[key]
	if !ok {
		return nil, false
	}

	copied := make([]byte, len(data))
	copy(copied, data)

	return copied, true
}

func (s *MemKV) Write(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)
	s.values[key] = copied

	return nil
}

func (s *MemKV) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)

	return nil
}

func (s *MemKV) Available() bool {
	return true
}

func (s *MemKV) Close() error {
	return nil
}
