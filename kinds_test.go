package svcfault

import (
	"net/http"
	"testing"
)

func TestKindTable(t *testing.T) {
	tests := []struct {
		kind    Kind
		code    string
		message string
		status  int
	}{
		{KindNetwork, "ERR001", "Network error occurred", http.StatusBadRequest},
		{KindTimeout, "ERR002", "Request timed out", http.StatusGatewayTimeout},
		{KindUnavailable, "ERR003", "Service unavailable", http.StatusServiceUnavailable},
		{KindInternal, "ERR004", "Internal server error", http.StatusInternalServerError},
		{KindInvalidInput, "ERR005", "Invalid input provided", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := tt.kind.Code(); got != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, got)
			}
			if got := tt.kind.Message(); got != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, got)
			}
			if got := tt.kind.Status(); got != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, got)
			}
		})
	}
}

func TestKindCodesInjective(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range Kinds() {
		code := k.Code()
		if other, dup := seen[code]; dup {
			t.Errorf("code %s assigned to both %s and %s", code, other, k)
		}
		seen[code] = k
	}
	if len(seen) != len(Kinds()) {
		t.Errorf("expected %d distinct codes, got %d", len(Kinds()), len(seen))
	}
}

func TestKindForCode(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := KindForCode(k.Code())
		if !ok {
			t.Errorf("KindForCode(%s) not found", k.Code())
		}
		if got != k {
			t.Errorf("KindForCode(%s) = %s, want %s", k.Code(), got, k)
		}
	}
}

func TestKindForCodeUnknown(t *testing.T) {
	if _, ok := KindForCode("ERR999"); ok {
		t.Error("unknown code should not resolve")
	}
}

func TestUnknownKindDegradesToInternal(t *testing.T) {
	bogus := Kind(200)
	if bogus.Code() != KindInternal.Code() {
		t.Errorf("expected internal code for unknown kind, got %s", bogus.Code())
	}
	if bogus.Status() != http.StatusInternalServerError {
		t.Errorf("expected status 500 for unknown kind, got %d", bogus.Status())
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNetwork, "network"},
		{KindTimeout, "timeout"},
		{KindUnavailable, "unavailable"},
		{KindInternal, "internal"},
		{KindInvalidInput, "invalid_input"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
