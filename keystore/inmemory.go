package keystore

import (
	"fmt"
	"sync"
)

// MemStore is a thread-safe in-memory Store. It is the backend of choice for
// tests and single-process embeddings.
type MemStore struct {
	mu        sync.RWMutex
	maxKeyLen uint32
	validator KeyValidator
	keys      map[Identifier][]byte
}

// NewMemStore creates an in-memory store with its own key length limit.
// validator may be nil.
func NewMemStore(maxKeyLen uint32, validator KeyValidator) *MemStore {
	return &MemStore{
		maxKeyLen: maxKeyLen,
		validator: validator,
		keys:      make(map[Identifier][]byte),
	}
}

func (s *MemStore) StoreKey(id Identifier, key []byte) error {
	if uint32(len(key)) > s.maxKeyLen {
		return ErrKeyTooLong
	}
	if s.validator != nil {
		if err := s.validator.Validate(key); err != nil {
			return fmt.Errorf("invalid verification key: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.keys[id]; ok {
		return ErrIdentifierInUse
	}
	s.keys[id] = append([]byte(nil), key...)
	return nil
}

// GetKey returns a copy of the key registered under id.
func (s *MemStore) GetKey(id Identifier) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.keys[id]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), key...), nil
}
