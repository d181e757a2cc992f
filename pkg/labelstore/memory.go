package labelstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-process store. Records vanish when the process
// exits; it backs tests and single-instance serving without persistence.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

func (s *MemoryStore) Put(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = cloneRecord(rec)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, notFound(id)
	}
	return cloneRecord(rec), nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// cloneRecord keeps stored records isolated from caller mutation. Artifact
// bytes are copied; the model is already immutable by contract.
func cloneRecord(rec *Record) *Record {
	out := *rec
	if rec.Artifacts != nil {
		out.Artifacts = make(map[string][]byte, len(rec.Artifacts))
		for k, v := range rec.Artifacts {
			b := make([]byte, len(v))
			copy(b, v)
			out.Artifacts[k] = b
		}
	}
	return &out
}
