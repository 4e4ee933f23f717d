package types

import "fmt"

// OutOfGasError is returned when a charge would exceed the call's gas limit.
type OutOfGasError struct {
	Wanted    uint64
	Available uint64
}

func (e OutOfGasError) Error() string {
	return fmt.Sprintf("insufficient gas: required %d, but only %d available", e.Wanted, e.Available)
}

// UnknownFuncError is the hard failure for a function identifier that no
// handler is registered for.
type UnknownFuncError struct {
	FuncID uint32
}

func (e UnknownFuncError) Error() string {
	return fmt.Sprintf("unimplemented func_id %d", e.FuncID)
}

// DecodeError is the hard failure for input bytes that pass the length checks
// but cannot be decoded into the operation's arguments. It signals a caller
// protocol violation, not a valid-but-rejected request.
type DecodeError struct {
	Msg string
}

func (e DecodeError) Error() string {
	return "failed to decode arguments: " + e.Msg
}
