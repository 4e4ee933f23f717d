package extension

import (
	"testing"

	"github.com/zkchain/extvm/keystore"
	"github.com/zkchain/extvm/types"
)

// FuzzCall feeds arbitrary function identifiers and input buffers through the
// dispatcher. Whatever the guest sends, the call must either converge on one
// of the four result codes or fail with an ordinary error; it must never
// panic or return an out-of-range code.
func FuzzCall(f *testing.F) {
	f.Add(StoreKeyFuncID, []byte{})
	f.Add(StoreKeyFuncID, storeKeyInput("vk-00001", 4))
	f.Add(StoreKeyFuncID, storeKeyInput("vk-00001", 64))
	f.Add(StoreKeyFuncID, []byte{1, 2, 3})
	f.Add(uint32(0), []byte("garbage"))
	f.Add(uint32(1<<31), storeKeyInput("vk-00001", 1))

	f.Fuzz(func(t *testing.T, funcID uint32, input []byte) {
		store := keystore.NewMemStore(32, nil)
		ext := New(store, 32, nil)
		env := newMockEnv(input, 1_000_000)

		code, err := ext.Call(funcID, env)
		if err != nil {
			return
		}
		if funcID != StoreKeyFuncID {
			t.Fatalf("unknown func_id %d converged with code %s", funcID, code)
		}
		switch code {
		case types.CodeOK, types.CodeKeyTooLong, types.CodeIdentifierInUse, types.CodeUnknown:
		default:
			t.Fatalf("result code %d outside the stable protocol", uint32(code))
		}
	})
}
