package smi

import "errors"

// ErrInvalidValue is returned when a value does not fit the syntax of the
// object it is bound to, or is bound to a node that is not an OBJECT-TYPE.
var ErrInvalidValue = errors.New("invalid value")

// ErrInvalidName is returned by ObjectIdentityFromName for input that is
// neither a name nor an OID.
var ErrInvalidName = errors.New("invalid name")

// ResolveError reports a failure to resolve a named binding.
type ResolveError struct {
	Name string
	Err  error
}

func (e *ResolveError) Error() string {
	return "resolve " + e.Name + ": " + e.Err.Error()
}

func (e *ResolveError) Unwrap() error { return e.Err }
