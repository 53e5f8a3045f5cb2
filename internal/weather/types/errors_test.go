package types

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestFetchError_IsMatchesKind(t *testing.T) {
	err := &FetchError{Kind: KindNotFound, Detail: "city not found"}

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("errors.Is(%v, ErrNotFound) = false, want true", err)
	}
	if errors.Is(err, ErrUnreachable) {
		t.Errorf("errors.Is(%v, ErrUnreachable) = true, want false", err)
	}

	wrapped := fmt.Errorf("lookup: %w", err)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Errorf("wrapped error lost its kind: %v", wrapped)
	}
}

func TestFetchError_Unwrap(t *testing.T) {
	err := &FetchError{Kind: KindUnreachable, Err: context.DeadlineExceeded}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("errors.Is(%v, context.DeadlineExceeded) = false, want true", err)
	}
}

func TestFetchError_Error(t *testing.T) {
	tests := []struct {
		err  *FetchError
		want string
	}{
		{&FetchError{Kind: KindNotFound}, "weather: not found"},
		{&FetchError{Kind: KindUnexpected, Detail: "Invalid API key"}, "weather: unexpected: Invalid API key"},
		{&FetchError{Kind: KindUnreachable, Err: errors.New("dial tcp: refused")}, "weather: unreachable: dial tcp: refused"},
		{&FetchError{Kind: KindMalformedResponse, Detail: "missing main.humidity"}, "weather: malformed response: missing main.humidity"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(fmt.Errorf("x: %w", ErrMalformedResponse)); got != KindMalformedResponse {
		t.Errorf("KindOf() = %v, want %v", got, KindMalformedResponse)
	}
	if got := KindOf(errors.New("boom")); got != KindUnexpected {
		t.Errorf("KindOf(plain error) = %v, want %v", got, KindUnexpected)
	}
}
