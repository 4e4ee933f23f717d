package types

// Gas represents the amount of computational resources consumed during execution.
type Gas = uint64

// GasMeter is the read-only view of a call's gas accounting, exposed to
// embedders that want to inspect consumption after a call returns.
type GasMeter interface {
	GasConsumed() Gas
}

// GasReport summarizes gas usage for a single host call.
type GasReport struct {
	Limit     Gas
	Remaining Gas
	Used      Gas
}
