package vmhost

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"

	"github.com/zkchain/extvm/extension"
	"github.com/zkchain/extvm/internal/gas"
	"github.com/zkchain/extvm/keystore"
)

// fakeMemory is a flat guest memory for environment tests.
type fakeMemory struct {
	data []byte
}

func (m fakeMemory) Read(offset, byteCount uint32) ([]byte, bool) {
	end := uint64(offset) + uint64(byteCount)
	if end > uint64(len(m.data)) {
		return nil, false
	}
	return m.data[offset:end], true
}

func TestGuestEnvSingleRead(t *testing.T) {
	mem := fakeMemory{data: []byte("abcdefgh")}
	env := newGuestEnv(mem, 2, 4, gas.NewLimitMeter(1000))

	assert.Equal(t, uint32(4), env.InLen())

	data, err := env.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte("cdef"), data)

	// The transport does not support re-reading.
	_, err = env.Read()
	require.Error(t, err)
}

func TestGuestEnvReadCopies(t *testing.T) {
	mem := fakeMemory{data: []byte("abcd")}
	env := newGuestEnv(mem, 0, 4, gas.NewLimitMeter(1000))

	data, err := env.Read()
	require.NoError(t, err)
	mem.data[0] = 'z'
	assert.Equal(t, byte('a'), data[0])
}

func TestGuestEnvOutOfBounds(t *testing.T) {
	mem := fakeMemory{data: make([]byte, 8)}
	env := newGuestEnv(mem, 6, 4, gas.NewLimitMeter(1000))

	_, err := env.Read()
	require.Error(t, err)

	// The failed read still consumed the single read.
	_, err = env.Read()
	require.Error(t, err)
}

func TestGuestEnvChargeGas(t *testing.T) {
	meter := gas.NewLimitMeter(100)
	env := newGuestEnv(fakeMemory{}, 0, 0, meter)

	require.NoError(t, env.ChargeGas(30))
	assert.Equal(t, uint64(30), meter.GasConsumed())

	err := env.ChargeGas(71)
	require.Error(t, err)
}

func TestRegisterExportsCall(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	ext := extension.New(keystore.NewMemStore(64, nil), 64, nil)
	mod, err := Register(ctx, r, ext, gas.NewLimitMeter(1_000_000))
	require.NoError(t, err)

	def, ok := mod.ExportedFunctionDefinitions()[CallExport]
	require.True(t, ok, "host module must export %s", CallExport)
	assert.Len(t, def.ParamTypes(), 3)
	assert.Len(t, def.ResultTypes(), 1)
}
