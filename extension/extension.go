// Package extension implements the host-call bridge that lets sandboxed
// contract code register cryptographic verification keys with the enclosing
// chain runtime. Every call is metered and answers with a stable numeric
// result code; protocol violations abort the call instead.
package extension

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zkchain/extvm/keystore"
	"github.com/zkchain/extvm/types"
)

// StoreKeyFuncID selects the store-key operation in the host call table.
// It is the only function identifier this extension recognizes.
const StoreKeyFuncID uint32 = 41

// Extension routes host calls from sandboxed contract code to native
// handlers. It holds no per-call state; every invocation runs to completion
// before control returns to the guest.
type Extension struct {
	store     keystore.Store
	weights   WeightInfo
	maxKeyLen uint32
}

// New creates an extension backed by the given key store. maxKeyLen bounds
// the variable-length portion of the input before any decoding happens; the
// store may enforce its own, independently configured limit on top of it.
// A nil weights falls back to DefaultWeights.
func New(store keystore.Store, maxKeyLen uint32, weights WeightInfo) *Extension {
	if weights == nil {
		weights = defaultWeights
	}
	return &Extension{
		store:     store,
		weights:   weights,
		maxKeyLen: maxKeyLen,
	}
}

// Call dispatches a host call by function identifier. A returned ResultCode
// is a converging result the guest branches on; a returned error is a hard
// failure that aborts the call and, in the embedding runtime, the enclosing
// transaction. Gas already charged is not refunded on hard failure.
func (e *Extension) Call(funcID uint32, env Environment) (types.ResultCode, error) {
	switch funcID {
	case StoreKeyFuncID:
		return e.storeKey(env)
	default:
		Logger().Error("called an unregistered func_id", zap.Uint32("func_id", funcID))
		return 0, types.UnknownFuncError{FuncID: funcID}
	}
}

// storeKeyArgs is the argument pair decoded from the raw input buffer. The
// fixed-width identifier comes first; the key occupies the remainder of the
// buffer with no delimiter.
type storeKeyArgs struct {
	identifier keystore.Identifier
	key        []byte
}

func decodeStoreKeyArgs(raw []byte) (storeKeyArgs, error) {
	if len(raw) < keystore.IdentifierLength {
		return storeKeyArgs{}, types.DecodeError{
			Msg: fmt.Sprintf("input of %d bytes is shorter than the %d-byte identifier",
				len(raw), keystore.IdentifierLength),
		}
	}
	var args storeKeyArgs
	copy(args.identifier[:], raw[:keystore.IdentifierLength])
	args.key = raw[keystore.IdentifierLength:]
	return args, nil
}

func (e *Extension) storeKey(env Environment) (types.ResultCode, error) {
	// Check whether it makes sense to read and decode the input at all.
	// Inputs shorter than the identifier yield a key length of zero here;
	// they fail later, in decoding.
	keyLength := saturatingSub(env.InLen(), keystore.IdentifierLength)
	if keyLength > e.maxKeyLen {
		return types.CodeKeyTooLong, nil
	}

	// Charge now. The host has already paid for receiving and holding the
	// buffer, so a decode that fails below still costs gas.
	if err := env.ChargeGas(e.weights.StoreKey(keyLength)); err != nil {
		return 0, err
	}

	// The transport supports a single full read; the length was
	// bounds-checked above, so reading InLen bytes is safe.
	raw, err := env.Read()
	if err != nil {
		return 0, err
	}

	args, err := decodeStoreKeyArgs(raw)
	if err != nil {
		return 0, err
	}

	switch err := e.store.StoreKey(args.identifier, args.key); {
	case err == nil:
		return types.CodeOK, nil
	case errors.Is(err, keystore.ErrKeyTooLong):
		return types.CodeKeyTooLong, nil
	case errors.Is(err, keystore.ErrIdentifierInUse):
		return types.CodeIdentifierInUse, nil
	default:
		return types.CodeUnknown, nil
	}
}

func saturatingSub(total, width uint32) uint32 {
	if total < width {
		return 0
	}
	return total - width
}
