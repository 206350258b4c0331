package svcfault

import (
	"encoding/json"
	"net/http"
)

// HeaderRequestID is the header used to propagate request correlation IDs.
const HeaderRequestID = "X-Request-Id"

// Body is the wire envelope for a classified failure. Field names are
// part of the client contract.
type Body struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// Response renders the failure as a transport status plus envelope body,
// taken from the fixed per-kind table. A nil receiver renders as the
// internal shape.
func (f *Failure) Response() (int, Body) {
	kind := KindInternal
	if f != nil {
		kind = f.Kind
	}
	return kind.Status(), Body{
		ErrorCode:    kind.Code(),
		ErrorMessage: kind.Message(),
	}
}

// Write classifies err, emits one diagnostic log record, and writes the
// JSON failure envelope with the kind's status. If err is nil it writes
// 204 No Content. A request ID present on the request (header or
// context) is echoed on the response.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	f := Classify(err)
	if f == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	status, body := f.Response()
	id := RequestIDFromRequest(r)
	record(f, status, id)

	if id != "" {
		w.Header().Set(HeaderRequestID, id)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// OK writes a successful payload with the given status. The payload is
// passed through as-is, with no envelope wrapping. A nil payload writes
// only the status.
func OK(w http.ResponseWriter, status int, payload any) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Respond is the single boundary entry point for a (payload, err) pair:
// the failure envelope when err is non-nil, otherwise the payload with
// 200 OK.
func Respond(w http.ResponseWriter, r *http.Request, payload any, err error) {
	if err != nil {
		Write(w, r, err)
		return
	}
	OK(w, http.StatusOK, payload)
}
