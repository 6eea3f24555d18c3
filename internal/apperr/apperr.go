// Package apperr defines the error taxonomy shared by the repositories,
// the session layer, and the action router. Callers classify failures with
// errors.Is against these sentinels; wrapped detail stays available for logs.
package apperr

import "errors"

var (
	// ErrAuthRequired means no session (or an expired one) accompanied the
	// request. The HTTP layer turns this into a login redirect, not an error page.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthDenied means a valid session exists but its role does not match
	// the route. Same redirect policy as ErrAuthRequired.
	ErrAuthDenied = errors.New("authorization denied")

	// ErrAuthFailed means submitted credentials did not match any account.
	ErrAuthFailed = errors.New("invalid credentials")

	// ErrConstraint means an insert violated a unique key or referenced a
	// missing row. The request itself is intact; only the mutation failed.
	ErrConstraint = errors.New("constraint violation")

	// ErrStorage means the underlying store failed or is unreachable.
	ErrStorage = errors.New("storage unavailable")

	// ErrMalformedInput means a form field failed parsing (non-numeric id,
	// missing required value) and was rejected before any repository call.
	ErrMalformedInput = errors.New("malformed input")

	// ErrRequestFailed means a handler aborted mid-fetch; the view context
	// is never rendered with partial bindings.
	ErrRequestFailed = errors.New("request failed")
)
