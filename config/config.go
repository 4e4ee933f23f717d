// Package config loads the process-wide configuration consumed by the
// extension and its collaborators.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Backend names accepted in the keystore section.
const (
	BackendMemory = "memory"
	BackendDB     = "db"
)

// GasConfig parameterizes the store-key weight function.
type GasConfig struct {
	StoreKeyBase    uint64
	StoreKeyPerByte uint64
}

// KeystoreConfig configures the storage collaborator. MaxKeyLength is the
// store's own limit, deliberately independent of the extension's bound.
type KeystoreConfig struct {
	Backend      string
	MaxKeyLength uint32
}

// Config is the full process configuration.
type Config struct {
	// MaxVerificationKeyLength bounds the variable-length input portion
	// before it is decoded.
	MaxVerificationKeyLength uint32
	GasLimit                 uint64
	Gas                      GasConfig
	Keystore                 KeystoreConfig
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		MaxVerificationKeyLength: 10_000,
		GasLimit:                 100_000_000,
		Gas: GasConfig{
			StoreKeyBase:    10_000,
			StoreKeyPerByte: 100,
		},
		Keystore: KeystoreConfig{
			Backend:      BackendMemory,
			MaxKeyLength: 10_000,
		},
	}
}

type fileConfig struct {
	MaxVerificationKeyLength uint32 `toml:"max_verification_key_length"`
	GasLimit                 uint64 `toml:"gas_limit"`
	Gas                      struct {
		StoreKeyBase    uint64 `toml:"store_key_base"`
		StoreKeyPerByte uint64 `toml:"store_key_per_byte"`
	} `toml:"gas"`
	Keystore struct {
		Backend      string `toml:"backend"`
		MaxKeyLength uint32 `toml:"max_key_length"`
	} `toml:"keystore"`
}

// Load reads a TOML file over the defaults. Fields absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load extension config: %w", err)
	}

	if meta.IsDefined("max_verification_key_length") {
		cfg.MaxVerificationKeyLength = raw.MaxVerificationKeyLength
	}
	if meta.IsDefined("gas_limit") {
		cfg.GasLimit = raw.GasLimit
	}
	if meta.IsDefined("gas", "store_key_base") {
		cfg.Gas.StoreKeyBase = raw.Gas.StoreKeyBase
	}
	if meta.IsDefined("gas", "store_key_per_byte") {
		cfg.Gas.StoreKeyPerByte = raw.Gas.StoreKeyPerByte
	}
	if meta.IsDefined("keystore", "backend") {
		switch raw.Keystore.Backend {
		case BackendMemory, BackendDB:
			cfg.Keystore.Backend = raw.Keystore.Backend
		default:
			return Config{}, fmt.Errorf("unknown keystore backend %q", raw.Keystore.Backend)
		}
	}
	if meta.IsDefined("keystore", "max_key_length") {
		cfg.Keystore.MaxKeyLength = raw.Keystore.MaxKeyLength
	}

	return cfg, nil
}
