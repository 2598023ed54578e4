package tuuid

import "errors"

var (
	// ErrMalformedInput indicates that a string is not a canonical
	// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx UUID
	ErrMalformedInput = errors.New("tuuid: malformed UUID string")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("tuuid: invalid UUID length (expected 16 bytes)")
)
