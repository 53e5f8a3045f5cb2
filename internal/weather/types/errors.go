package types

import "errors"

// Kind classifies why a lookup failed.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindUnreachable
	KindMalformedResponse
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindUnreachable:
		return "unreachable"
	case KindMalformedResponse:
		return "malformed response"
	default:
		return "unexpected"
	}
}

// Sentinels for errors.Is. Any *FetchError matches the sentinel of its Kind.
var (
	ErrNotFound          = &FetchError{Kind: KindNotFound}
	ErrUnreachable       = &FetchError{Kind: KindUnreachable}
	ErrUnexpected        = &FetchError{Kind: KindUnexpected}
	ErrMalformedResponse = &FetchError{Kind: KindMalformedResponse}
)

// FetchError is returned by every failed lookup.
// Detail carries the provider's message for KindUnexpected when there is one.
type FetchError struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *FetchError) Error() string {
	msg := "weather: " + e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a FetchError of the same Kind.
func (e *FetchError) Is(target error) bool {
	t, ok := target.(*FetchError)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of err, or KindUnexpected when err is not a FetchError.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnexpected
}
