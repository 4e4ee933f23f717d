package keystore

import (
	"fmt"
	"sync"

	dbm "github.com/cometbft/cometbft-db"
)

// verification keys live under their own prefix so the database can be
// shared with other runtime state.
var keyPrefix = []byte("vk/")

// DBStore persists verification keys in a cometbft-db backend. The mutex
// makes the has-then-set pair atomic with respect to other writers going
// through this store.
type DBStore struct {
	mu        sync.Mutex
	db        dbm.DB
	maxKeyLen uint32
	validator KeyValidator
}

// NewDBStore wraps db with the Store contract. validator may be nil.
func NewDBStore(db dbm.DB, maxKeyLen uint32, validator KeyValidator) *DBStore {
	return &DBStore{
		db:        db,
		maxKeyLen: maxKeyLen,
		validator: validator,
	}
}

func storageKey(id Identifier) []byte {
	return append(append([]byte(nil), keyPrefix...), id[:]...)
}

func (s *DBStore) StoreKey(id Identifier, key []byte) error {
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

	dbKey := storageKey(id)
	exists, err := s.db.Has(dbKey)
	if err != nil {
		return fmt.Errorf("check identifier: %w", err)
	}
	if exists {
		return ErrIdentifierInUse
	}
	if err := s.db.Set(dbKey, key); err != nil {
		return fmt.Errorf("persist key: %w", err)
	}
	return nil
}

// GetKey returns the key registered under id.
func (s *DBStore) GetKey(id Identifier) ([]byte, error) {
	value, err := s.db.Get(storageKey(id))
	if err != nil {
		return nil, fmt.Errorf("load key: %w", err)
	}
	if value == nil {
		return nil, ErrNotFound
	}
	return value, nil
}
