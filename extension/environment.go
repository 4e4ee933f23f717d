package extension

import "github.com/zkchain/extvm/types"

// Environment is the per-call view of the transport handed to a handler.
//
// The transport keeps no read pointer and supports exactly one full read of
// the input buffer, so the declared length is exposed separately. Handlers
// must inspect InLen, charge gas, and only then call Read.
type Environment interface {
	// InLen returns the declared length of the input buffer in bytes.
	InLen() uint32

	// Read consumes the input buffer, returning exactly InLen bytes.
	// It may be called at most once per call.
	Read() ([]byte, error)

	// ChargeGas charges the call's gas meter. Charges are never refunded,
	// even if the call later hard-fails.
	ChargeGas(amount types.Gas) error
}
