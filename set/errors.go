package set

import "errors"

var (
	// ErrInvalidArgument is returned when a required argument, such as an
	// enumeration bound, is missing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedDomain is returned when enumeration is requested over a
	// set whose elements are not integers.
	ErrUnsupportedDomain = errors.New("unsupported domain")

	// ErrTypeMismatch is returned when an element's type does not match the
	// domain of the set it is tested against.
	ErrTypeMismatch = errors.New("type mismatch")
)
