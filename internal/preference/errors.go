package preference

import "errors"

// Domain errors
var (
	// ErrUserIDRequired - user id is empty
	ErrUserIDRequired = errors.New("preference: user_id is required")

	// ErrStoreUnavailable - the preference store could not be read or written
	ErrStoreUnavailable = errors.New("preference: store unavailable")

	// ErrExtractorUnavailable - the completion call of update detection failed
	ErrExtractorUnavailable = errors.New("preference: update extractor unavailable")

	// ErrMalformedUpdate - update detection reply is not a JSON object
	ErrMalformedUpdate = errors.New("preference: malformed update")

	// ErrUnknownField - key is not a recognized preference field
	ErrUnknownField = errors.New("preference: unknown field")

	// ErrInvalidValue - value has the wrong type for the field
	ErrInvalidValue = errors.New("preference: invalid value")
)
