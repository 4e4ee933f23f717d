// Package vmhost binds the extension to a wazero runtime as a host module,
// so guest contracts can reach it through a single imported function.
package vmhost

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/zkchain/extvm/extension"
	"github.com/zkchain/extvm/internal/gas"
	"github.com/zkchain/extvm/types"
)

const (
	// ModuleName is the import namespace guests link against.
	ModuleName = "env"
	// CallExport is the exported host call entry point:
	// ext_call(func_id, in_ptr, in_len) -> result_code.
	CallExport = "ext_call"
)

// guestMemory is the slice of api.Memory a call environment needs.
type guestMemory interface {
	Read(offset, byteCount uint32) ([]byte, bool)
}

// guestEnv adapts one invocation's input region and gas meter to
// extension.Environment. The guest transport keeps no read pointer, so Read
// consumes the region: a second read is a protocol violation.
type guestEnv struct {
	mem      guestMemory
	inPtr    uint32
	inLen    uint32
	meter    gas.Meter
	consumed bool
}

func newGuestEnv(mem guestMemory, inPtr, inLen uint32, meter gas.Meter) *guestEnv {
	return &guestEnv{
		mem:   mem,
		inPtr: inPtr,
		inLen: inLen,
		meter: meter,
	}
}

func (g *guestEnv) InLen() uint32 {
	return g.inLen
}

func (g *guestEnv) Read() ([]byte, error) {
	if g.consumed {
		return nil, fmt.Errorf("input buffer already consumed")
	}
	g.consumed = true

	data, ok := g.mem.Read(g.inPtr, g.inLen)
	if !ok {
		return nil, fmt.Errorf("input region [%d, %d) out of guest memory bounds", g.inPtr, uint64(g.inPtr)+uint64(g.inLen))
	}
	// The slice aliases guest memory; copy it out before the guest can
	// touch it again.
	return append([]byte(nil), data...), nil
}

func (g *guestEnv) ChargeGas(amount types.Gas) error {
	return g.meter.Consume(amount)
}

// Register instantiates the host module exposing ext to guest contracts.
// All calls dispatched through the returned module charge meter; one meter
// spans one transaction. Hard failures trap the guest instead of returning
// a result code, leaving the revert to the embedding runtime.
func Register(ctx context.Context, r wazero.Runtime, ext *extension.Extension, meter gas.Meter) (api.Module, error) {
	builder := r.NewHostModuleBuilder(ModuleName)

	builder.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, funcID, inPtr, inLen uint32) uint32 {
			env := newGuestEnv(m.Memory(), inPtr, inLen, meter)
			code, err := ext.Call(funcID, env)
			if err != nil {
				panic(fmt.Sprintf("host call failed: %v", err))
			}
			return uint32(code)
		}).
		WithParameterNames("func_id", "in_ptr", "in_len").
		WithResultNames("result_code").
		Export(CallExport)

	return builder.Instantiate(ctx)
}
