package svcfault

import "net/http"

// Kind is a closed category of failure. Every failure that reaches the
// response boundary carries exactly one Kind, and each Kind carries a
// stable machine-readable code, a default display message, and the HTTP
// status used when it is rendered.
type Kind uint8

const (
	// KindInternal is the fallback for faults that match no other kind.
	KindInternal Kind = iota
	// KindNetwork covers connectivity faults that are not timeouts.
	KindNetwork
	// KindTimeout covers deadline expiry, cancellation, and
	// timeout-shaped network faults.
	KindTimeout
	// KindUnavailable means the service cannot take the request on,
	// e.g. a saturated worker pool.
	KindUnavailable
	// KindInvalidInput marks caller input rejected before any
	// downstream call was attempted.
	KindInvalidInput
)

// kindInfo pins the wire-visible attributes of a Kind. Codes are part of
// the client contract: they are never reassigned across versions without
// a compatibility note.
type kindInfo struct {
	code    string
	message string
	status  int
}

var kindTable = map[Kind]kindInfo{
	// Network faults intentionally map to 400, not a 502-class status.
	KindNetwork:      {code: "ERR001", message: "Network error occurred", status: http.StatusBadRequest},
	KindTimeout:      {code: "ERR002", message: "Request timed out", status: http.StatusGatewayTimeout},
	KindUnavailable:  {code: "ERR003", message: "Service unavailable", status: http.StatusServiceUnavailable},
	KindInternal:     {code: "ERR004", message: "Internal server error", status: http.StatusInternalServerError},
	KindInvalidInput: {code: "ERR005", message: "Invalid input provided", status: http.StatusBadRequest},
}

// Kinds lists every Kind, in code order.
func Kinds() []Kind {
	return []Kind{KindNetwork, KindTimeout, KindUnavailable, KindInternal, KindInvalidInput}
}

// Code returns the stable identifier sent on the wire, e.g. "ERR002".
func (k Kind) Code() string { return k.info().code }

// Message returns the default human-readable message for the kind.
func (k Kind) Message() string { return k.info().message }

// Status returns the HTTP status written when the kind reaches the
// response boundary.
func (k Kind) Status() int { return k.info().status }

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindUnavailable:
		return "unavailable"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "internal"
	}
}

func (k Kind) info() kindInfo {
	if info, ok := kindTable[k]; ok {
		return info
	}
	// Unknown Kind values degrade to the internal shape rather than panic.
	return kindTable[KindInternal]
}

// KindForCode resolves a stable code back to its Kind, for decoding
// envelopes produced by peers. The second result is false when the code
// is not part of the registry.
func KindForCode(code string) (Kind, bool) {
	for k, info := range kindTable {
		if info.code == code {
			return k, true
		}
	}
	return KindInternal, false
}
