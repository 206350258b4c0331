package svcfault

import (
	"context"
	"errors"
	"net"
	"os"
	"syscall"
)

// Network wraps a connectivity fault that is not a timeout.
func Network(cause error) *Failure {
	return Wrap(KindNetwork, cause)
}

// Timeout wraps a fault caused by a deadline expiring or the request
// being abandoned.
func Timeout(cause error) *Failure {
	return Wrap(KindTimeout, cause)
}

// Unavailable wraps a fault raised when the service refuses to take the
// request on, e.g. because a worker pool is saturated.
func Unavailable(cause error) *Failure {
	return Wrap(KindUnavailable, cause)
}

// Internal wraps a fault that matches no more specific kind.
func Internal(cause error) *Failure {
	return Wrap(KindInternal, cause)
}

// InvalidInput marks caller input rejected before any downstream call.
// There is no underlying cause: the fault originates at the boundary.
func InvalidInput() *Failure {
	return New(KindInvalidInput)
}

// Classify maps an arbitrary fault to exactly one Failure. It is total:
// a fault of any shape produces a Failure, with KindInternal as the
// fallback, and the same input always yields the same kind.
//
// Rules, in order:
//   - an existing *Failure passes through unchanged,
//   - timeout-shaped faults (deadline expiry, cancellation, net timeouts)
//     map to KindTimeout,
//   - other connectivity faults map to KindNetwork,
//   - everything else maps to KindInternal.
//
// Classify(nil) returns nil.
func Classify(err error) *Failure {
	if err == nil {
		return nil
	}

	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	if isTimeout(err) {
		return Timeout(err)
	}
	if isConnectivity(err) {
		return Network(err)
	}
	return Internal(err)
}

// isTimeout recognizes deadline expiry and cancellation. Cancellation is
// folded into the timeout shape so the boundary answers with the timeout
// envelope instead of hanging or leaking a raw context error.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// connRefusals are the errno shapes produced by failed or torn-down
// connections on the platforms we run on.
var connRefusals = []error{
	syscall.ECONNREFUSED,
	syscall.ECONNRESET,
	syscall.ECONNABORTED,
	syscall.EPIPE,
	syscall.EHOSTUNREACH,
	syscall.ENETUNREACH,
}

func isConnectivity(err error) bool {
	var op *net.OpError
	if errors.As(err, &op) {
		return true
	}
	var dns *net.DNSError
	if errors.As(err, &dns) {
		return true
	}
	if errors.Is(err, net.ErrClosed) {
		return true
	}
	for _, refusal := range connRefusals {
		if errors.Is(err, refusal) {
			return true
		}
	}
	return false
}
