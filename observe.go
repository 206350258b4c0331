package svcfault

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logger receives one record per failure written at the boundary.
// Defaults to the global zerolog logger.
var logger = log.Logger

// observer, when set, is invoked once per written failure. Used to feed
// metrics (see integrations/prom).
var observer func(Kind)

// SetLogger replaces the logger used for failure diagnostics. Call it
// during startup, before the service begins handling requests.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// SetObserver installs a hook invoked once per written failure with the
// failure's kind. Call it during startup; the hook must be safe for
// concurrent use.
func SetObserver(fn func(Kind)) {
	observer = fn
}

// record emits the single diagnostic log line for a written failure:
// the stable code plus the underlying cause description. Severity
// follows the status class, error for 5xx and warn for everything else.
func record(f *Failure, status int, requestID string) {
	ev := logger.Warn()
	if status >= http.StatusInternalServerError {
		ev = logger.Error()
	}
	ev = ev.
		Str("error_code", f.Kind.Code()).
		Str("kind", f.Kind.String()).
		Int("status", status)
	if requestID != "" {
		ev = ev.Str("request_id", requestID)
	}
	if f.Cause != nil {
		ev = ev.Err(f.Cause)
	}
	ev.Msg(f.Kind.Message())

	if observer != nil {
		observer(f.Kind)
	}
}
