package llm

import (
	"errors"
	"fmt"
)

// Kind classifies a completion service failure.
type Kind int

const (
	RateLimited Kind = iota
	Timeout
	Unauthorized
	InvalidResponse
)

func (k Kind) String() string {
	switch k {
	case RateLimited:
		return "rate_limited"
	case Timeout:
		return "timeout"
	case Unauthorized:
		return "unauthorized"
	default:
		return "invalid_response"
	}
}

// ServiceError is any non-success outcome of a completion call.
// RateLimited and Timeout are transient and retried by the gateway;
// Unauthorized and InvalidResponse propagate immediately and abort
// the run.
type ServiceError struct {
	Kind     Kind
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// IsTransient reports whether err is a ServiceError kind worth retrying.
func IsTransient(err error) bool {
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		return false
	}
	return svcErr.Kind == RateLimited || svcErr.Kind == Timeout
}

// IsFatal reports whether err must abort the whole run: a broken
// credential or a persistently invalid service should never produce
// a report.
func IsFatal(err error) bool {
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		return false
	}
	return svcErr.Kind == Unauthorized || svcErr.Kind == InvalidResponse
}
