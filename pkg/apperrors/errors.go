package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedEngine = errors.New("unsupported database engine")
	ErrInvalidScanMode   = errors.New("invalid scan mode")
	ErrScanCancelled     = errors.New("scan cancelled")
)

// ConnectionError reports a failure to reach or authenticate to a database
// engine. It is the only error class that aborts a scan entirely.
type ConnectionError struct {
	Engine string
	Cause  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to %s: %v", e.Engine, e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// NewConnectionError wraps an engine-specific failure in the uniform
// connection error type.
func NewConnectionError(engine string, cause error) *ConnectionError {
	return &ConnectionError{Engine: engine, Cause: cause}
}

// IntrospectionError records a failure to introspect one table or
// collection. Introspection of the remaining tables continues.
type IntrospectionError struct {
	Engine string
	Table  string
	Cause  error
}

func (e *IntrospectionError) Error() string {
	return fmt.Sprintf("introspect %s table %q: %v", e.Engine, e.Table, e.Cause)
}

func (e *IntrospectionError) Unwrap() error {
	return e.Cause
}
