// Package keystore persists verification keys registered through the host
// extension. Implementations own the atomicity of the check-identifier-then-
// insert step; callers see only the Store contract and its sentinel errors.
package keystore

import "errors"

// IdentifierLength is the fixed width of a verification key identifier on
// the wire. Changing it is a breaking protocol change.
const IdentifierLength = 8

// Identifier is the caller-chosen name under which a key is registered.
type Identifier [IdentifierLength]byte

var (
	// ErrKeyTooLong reports a key exceeding the store's own length limit.
	ErrKeyTooLong = errors.New("verification key exceeds store limit")

	// ErrIdentifierInUse reports a registration under an identifier that
	// already names a stored key.
	ErrIdentifierInUse = errors.New("identifier already registered")

	// ErrNotFound reports a lookup for an identifier with no stored key.
	ErrNotFound = errors.New("no key registered under identifier")
)

// Store is the contract the extension depends on.
type Store interface {
	// StoreKey registers key under id. It fails with ErrKeyTooLong or
	// ErrIdentifierInUse for policy rejections and with any other error
	// for domain failures.
	StoreKey(id Identifier, key []byte) error
}

// KeyValidator optionally checks submitted key material before it is stored.
// A validation failure is a domain error, not a policy rejection.
type KeyValidator interface {
	Validate(key []byte) error
}
