// Package gas implements the per-call gas meter used by host call
// environments.
package gas

import "github.com/zkchain/extvm/types"

// Meter tracks gas consumption during a host call.
type Meter interface {
	// Consume charges the specified amount of gas.
	Consume(amount types.Gas) error
	// Remaining returns the amount of gas left.
	Remaining() types.Gas
	// GasConsumed returns the amount charged so far.
	GasConsumed() types.Gas
}

// LimitMeter is the default implementation of Meter.
type LimitMeter struct {
	limit    types.Gas
	consumed types.Gas
}

// NewLimitMeter creates a meter with the specified limit.
func NewLimitMeter(limit types.Gas) *LimitMeter {
	return &LimitMeter{limit: limit}
}

func (m *LimitMeter) Consume(amount types.Gas) error {
	if amount > m.limit-m.consumed {
		return types.OutOfGasError{
			Wanted:    amount,
			Available: m.Remaining(),
		}
	}
	m.consumed += amount
	return nil
}

func (m *LimitMeter) Remaining() types.Gas {
	return m.limit - m.consumed
}

func (m *LimitMeter) GasConsumed() types.Gas {
	return m.consumed
}

// Report returns a snapshot of the meter's state.
func (m *LimitMeter) Report() types.GasReport {
	return types.GasReport{
		Limit:     m.limit,
		Remaining: m.Remaining(),
		Used:      m.consumed,
	}
}
