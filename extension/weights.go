package extension

import "github.com/zkchain/extvm/types"

// ByteCount counts input bytes for weight estimation.
type ByteCount = uint32

// WeightInfo estimates the gas charge for extension operations.
type WeightInfo interface {
	// StoreKey returns the charge for storing a key of the given length.
	// Implementations must be monotone: a longer key never costs less.
	StoreKey(keyLength ByteCount) types.Gas
}

// DefaultWeights charges a flat base plus a per-byte cost.
type DefaultWeights struct {
	StoreKeyBase    types.Gas
	StoreKeyPerByte types.Gas
}

func (w DefaultWeights) StoreKey(keyLength ByteCount) types.Gas {
	return w.StoreKeyBase + w.StoreKeyPerByte*types.Gas(keyLength)
}

var defaultWeights = DefaultWeights{
	StoreKeyBase:    10_000,
	StoreKeyPerByte: 100,
}
