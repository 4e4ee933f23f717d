// Package types provides core types shared by the extension packages.
package types

import "fmt"

// ResultCode is the converging status value returned to the calling contract.
// A call that produces a ResultCode completed normally; the caller branches on
// the value. Hard failures (protocol violations) travel as Go errors instead
// and never surface as a ResultCode.
type ResultCode uint32

// Return codes for the store-key host call.
const (
	CodeOK              ResultCode = 10_000
	CodeKeyTooLong      ResultCode = 10_001
	CodeIdentifierInUse ResultCode = 10_002
	CodeUnknown         ResultCode = 10_003
)

func (c ResultCode) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeKeyTooLong:
		return "key_too_long"
	case CodeIdentifierInUse:
		return "identifier_in_use"
	case CodeUnknown:
		return "unknown_error"
	default:
		return fmt.Sprintf("result_code(%d)", uint32(c))
	}
}
