package keystore

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
)

// Groth16Validator rejects key material that does not deserialize as a
// groth16 verifying key for the configured curve. Stores configured with it
// refuse to register arbitrary blobs.
type Groth16Validator struct {
	Curve ecc.ID
}

func (v Groth16Validator) Validate(key []byte) error {
	vk := groth16.NewVerifyingKey(v.Curve)
	if _, err := vk.ReadFrom(bytes.NewReader(key)); err != nil {
		return fmt.Errorf("parse verifying key: %w", err)
	}
	return nil
}
