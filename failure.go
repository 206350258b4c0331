// Package svcfault implements a uniform error-classification and
// propagation contract for HTTP services. Arbitrary faults from
// dependent operations are classified into a closed set of kinds, each
// with a stable code, default message, and HTTP status, and rendered as
// a two-field JSON envelope at the response boundary.
package svcfault

import (
	"errors"
	"fmt"
)

// Failure is a classified failure: exactly one Kind plus the optional
// underlying cause. It is created where a dependent operation fails,
// travels up the call stack as an ordinary error, and is consumed by the
// boundary when the response is written; it is not retained beyond that.
type Failure struct {
	Kind  Kind
	Cause error
}

func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	if f.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", f.Kind.Code(), f.Kind.Message(), f.Cause)
	}
	return fmt.Sprintf("%s: %s", f.Kind.Code(), f.Kind.Message())
}

func (f *Failure) Unwrap() error { return f.Cause }

// New creates a Failure of the given kind with no underlying cause.
func New(kind Kind) *Failure {
	return &Failure{Kind: kind}
}

// Wrap creates a Failure that records the underlying cause.
func Wrap(kind Kind, cause error) *Failure {
	return &Failure{Kind: kind, Cause: cause}
}

// Is reports whether err is (or wraps) a Failure of the given kind.
func Is(err error, kind Kind) bool {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind == kind
	}
	return false
}
