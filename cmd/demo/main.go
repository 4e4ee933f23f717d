package main

import (
	"fmt"
	"os"

	dbm "github.com/cometbft/cometbft-db"
	"go.uber.org/zap"

	"github.com/zkchain/extvm/config"
	"github.com/zkchain/extvm/extension"
	"github.com/zkchain/extvm/internal/gas"
	"github.com/zkchain/extvm/keystore"
	"github.com/zkchain/extvm/types"
)

// localEnv drives the extension without a wasm guest: the input buffer is
// held in process and handed over with the same single-read contract.
type localEnv struct {
	input    []byte
	meter    gas.Meter
	consumed bool
}

func (e *localEnv) InLen() uint32 {
	return uint32(len(e.input))
}

func (e *localEnv) Read() ([]byte, error) {
	if e.consumed {
		return nil, fmt.Errorf("input buffer already consumed")
	}
	e.consumed = true
	return e.input, nil
}

func (e *localEnv) ChargeGas(amount types.Gas) error {
	return e.meter.Consume(amount)
}

// This is just a demo to show the store-key call path end to end.
func main() {
	cfg := config.Default()
	if len(os.Args) > 1 {
		var err error
		cfg, err = config.Load(os.Args[1])
		if err != nil {
			panic(err)
		}
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	extension.SetLogger(logger)

	var store keystore.Store
	switch cfg.Keystore.Backend {
	case config.BackendDB:
		store = keystore.NewDBStore(dbm.NewMemDB(), cfg.Keystore.MaxKeyLength, nil)
	default:
		store = keystore.NewMemStore(cfg.Keystore.MaxKeyLength, nil)
	}

	ext := extension.New(store, cfg.MaxVerificationKeyLength, extension.DefaultWeights{
		StoreKeyBase:    cfg.Gas.StoreKeyBase,
		StoreKeyPerByte: cfg.Gas.StoreKeyPerByte,
	})
	meter := gas.NewLimitMeter(cfg.GasLimit)

	input := append([]byte("demo-key"), []byte{0xde, 0xad, 0xbe, 0xef}...)

	code, err := ext.Call(extension.StoreKeyFuncID, &localEnv{input: input, meter: meter})
	if err != nil {
		panic(err)
	}
	fmt.Printf("first store: %s\n", code)

	code, err = ext.Call(extension.StoreKeyFuncID, &localEnv{input: input, meter: meter})
	if err != nil {
		panic(err)
	}
	fmt.Printf("second store: %s\n", code)

	fmt.Printf("gas used: %d\n", meter.GasConsumed())
}
