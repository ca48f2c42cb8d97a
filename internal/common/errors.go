// Package common defines shared constants and sentinel errors used across
// client and server layers of SalesMatch. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Taxonomy errors surfaced to the user.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("company not found")
	ErrUnknown            = errors.New("an unknown error occurred")

	// Validation errors.
	ErrInvalidStatus = errors.New("invalid status")

	// Service-level errors.
	ErrInternal    = errors.New("internal error")
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Client-side reconciliation errors.
	ErrUpdateInFlight = errors.New("update already in progress")
	ErrSessionEnded   = errors.New("session ended before update completed")
)

// Kind is the coarse error class shown to the user.
type Kind string

const (
	KindInvalidCredentials Kind = "InvalidCredentials"
	KindUnauthorized       Kind = "Unauthorized"
	KindNotFound           Kind = "NotFound"
	KindUnknown            Kind = "Unknown"
)

// Classify reduces err to one of the four user-facing kinds.
// A nil error has no kind and yields "".
func Classify(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return KindInvalidCredentials
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenExpired):
		return KindUnauthorized
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindUnknown
	}
}
