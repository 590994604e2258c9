// Package apperrors defines the error taxonomy the core surfaces to its
// caller. Each kind is a sentinel, wrapped with context via fmt.Errorf's
// %w so callers can errors.Is against it after any number of wrap layers.
package apperrors

import "errors"

var (
	// InputInvalid is a malformed decimal pair or out-of-bounds lat/lon
	// caught in the geocoder's fast path, before any upstream call.
	InputInvalid = errors.New("input invalid")

	// ResolutionError is returned when the geocoder found nothing, or an
	// upstream geocoder call timed out or failed transport-level — both
	// are treated identically, as "could not resolve".
	ResolutionError = errors.New("could not resolve location")

	// UpstreamError wraps a non-2xx response, timeout, or malformed
	// response from the routing provider. Upstream details are not
	// leaked past this sentinel.
	UpstreamError = errors.New("upstream routing error")

	// InfeasibleRoute means the refuel DAG has no Start->Finish path:
	// some consecutive gap exceeds the vehicle's range with no station
	// in between.
	InfeasibleRoute = errors.New("no feasible refuel path")

	// InternalError covers any other unexpected condition.
	InternalError = errors.New("internal error")
)

// StatusKind reports the error kind a handler should map to an HTTP
// status, falling back to InternalError when err matches none of the
// known sentinels.
func StatusKind(err error) error {
	switch {
	case errors.Is(err, InputInvalid):
		return InputInvalid
	case errors.Is(err, ResolutionError):
		return ResolutionError
	case errors.Is(err, UpstreamError):
		return UpstreamError
	case errors.Is(err, InfeasibleRoute):
		return InfeasibleRoute
	default:
		return InternalError
	}
}
