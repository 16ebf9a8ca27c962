package normalize

import (
	"fmt"

	"balancerScope/internal/fixedpoint"
)

// FieldParseError reports a malformed decimal-string field on a pool snapshot.
type FieldParseError struct {
	Pool  string
	Field string
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("pool %s: field %s: %v", e.Pool, e.Field, e.Err)
}

func (e *FieldParseError) Unwrap() error { return e.Err }

// InvalidTokenDecimalsError reports a token decimal count outside the
// supported range.
type InvalidTokenDecimalsError struct {
	Decimals int
}

func (e *InvalidTokenDecimalsError) Error() string {
	return fmt.Sprintf("token decimals %d outside [0, %d]", e.Decimals, fixedpoint.Decimals)
}

// ArrayLengthMismatchError reports desynchronized parallel per-token arrays.
// It indicates an internal bug rather than bad input data.
type ArrayLengthMismatchError struct {
	Want int
	Got  int
}

func (e *ArrayLengthMismatchError) Error() string {
	return fmt.Sprintf("parallel array length mismatch: want %d, got %d", e.Want, e.Got)
}
