package keystore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(s string) Identifier {
	var id Identifier
	copy(id[:], s)
	return id
}

func TestMemStoreRoundTrip(t *testing.T) {
	store := NewMemStore(64, nil)

	key := []byte{1, 2, 3, 4}
	require.NoError(t, store.StoreKey(ident("vk-00001"), key))

	got, err := store.GetKey(ident("vk-00001"))
	require.NoError(t, err)
	assert.Equal(t, key, got)

	// The stored copy must not alias the caller's slice.
	key[0] = 99
	got, err = store.GetKey(ident("vk-00001"))
	require.NoError(t, err)
	assert.Equal(t, byte(1), got[0])
}

func TestMemStoreIdentifierInUse(t *testing.T) {
	store := NewMemStore(64, nil)

	require.NoError(t, store.StoreKey(ident("vk-00001"), []byte{1}))
	err := store.StoreKey(ident("vk-00001"), []byte{2})
	require.ErrorIs(t, err, ErrIdentifierInUse)

	// The original registration is untouched.
	got, err := store.GetKey(ident("vk-00001"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, got)
}

func TestMemStoreKeyTooLong(t *testing.T) {
	store := NewMemStore(4, nil)

	require.NoError(t, store.StoreKey(ident("vk-00001"), make([]byte, 4)))
	err := store.StoreKey(ident("vk-00002"), make([]byte, 5))
	require.ErrorIs(t, err, ErrKeyTooLong)
}

func TestMemStoreNotFound(t *testing.T) {
	store := NewMemStore(4, nil)
	_, err := store.GetKey(ident("missing"))
	require.ErrorIs(t, err, ErrNotFound)
}

type rejectAll struct{}

func (rejectAll) Validate([]byte) error { return errors.New("not a verifying key") }

func TestMemStoreValidator(t *testing.T) {
	store := NewMemStore(64, rejectAll{})

	err := store.StoreKey(ident("vk-00001"), []byte{1, 2, 3})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyTooLong)
	assert.NotErrorIs(t, err, ErrIdentifierInUse)

	// Nothing was stored for the rejected key.
	_, err = store.GetKey(ident("vk-00001"))
	require.ErrorIs(t, err, ErrNotFound)
}
