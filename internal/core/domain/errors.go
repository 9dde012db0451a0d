package domain

import "go.trai.ch/zerr"

var (
	// ErrNotFound is returned when the directory reports no entity with the
	// requested display name.
	ErrNotFound = zerr.New("no entity with that name, check spelling and access permissions")

	// ErrLookupFailed is returned when the directory call itself fails
	// (network, auth or server error). The underlying cause is attached.
	ErrLookupFailed = zerr.New("directory lookup failed")

	// ErrMissingContext is returned when no name source is available for an
	// invocation: no explicit name, no carried identifier and no configured
	// default.
	ErrMissingContext = zerr.New("no space given: pass a name, pipe a resolved id, or set default_space in the config")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidCacheTTL is returned when the configured cache TTL cannot be
	// parsed as a duration.
	ErrInvalidCacheTTL = zerr.New("invalid cache_ttl, expected a duration such as '5m'")

	// ErrAPIRequestFailed is returned when a workspace API request cannot be
	// built or sent.
	ErrAPIRequestFailed = zerr.New("workspace API request failed")

	// ErrAPIStatus is returned when the workspace API answers with a
	// non-success status code.
	ErrAPIStatus = zerr.New("unexpected workspace API status")

	// ErrAPIDecodeFailed is returned when a workspace API response body
	// cannot be decoded.
	ErrAPIDecodeFailed = zerr.New("failed to decode workspace API response")
)
