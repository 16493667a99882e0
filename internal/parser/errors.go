package parser

import "errors"

// Errors returned while turning environment variables into configuration
// values. Callers should match them with [errors.Is].
var (
	// ErrUnknownTag is returned when a ${NAME} tag references an environment
	// variable that is unset or empty.
	ErrUnknownTag = errors.New("this tag is unknown")

	// ErrTagResolution is returned when tag resolution does not converge:
	// a tag chain refers back to itself or keeps expanding past
	// [MaxTagResolutions] passes.
	ErrTagResolution = errors.New("tag resolution does not terminate")

	// ErrBadNumber is returned when an ncm_number: payload is not a number.
	ErrBadNumber = errors.New("bad type, this value must be a number")
)
