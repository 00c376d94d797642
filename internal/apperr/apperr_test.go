package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("lead missing"), KindNotFound},
		{"validation", Validation("bad count"), KindValidation},
		{"configuration", Configuration("unknown category"), KindConfiguration},
		{"storage", Storage("write failed", errors.New("disk full")), KindStorage},
		{"wrapped in fmt", fmt.Errorf("outer: %w", NotFound("inner")), KindNotFound},
		{"plain error", errors.New("plain"), KindUnknown},
		{"nil", nil, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	e := Validation("count must be positive")
	if got := e.Error(); got != "count must be positive" {
		t.Errorf("Error() = %q", got)
	}

	e = e.WithOp("router.generate")
	if got := e.Error(); got != "router.generate: count must be positive" {
		t.Errorf("Error() with op = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	underlying := errors.New("disk full")
	e := Storage("write failed", underlying)
	if !errors.Is(e, underlying) {
		t.Error("expected errors.Is to find the underlying error")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(NotFound("x")) {
		t.Error("IsNotFound(NotFound) = false")
	}
	if IsNotFound(Validation("x")) {
		t.Error("IsNotFound(Validation) = true")
	}
}
