package bloomgo

import (
	"errors"
)

var (
	// ErrInvalidConstructorArguments is returned when New or From is called
	// with arguments that cannot produce a usable filter: non-positive sizing
	// parameters, an empty restore buffer, or an explicit empty hash function
	// list.
	//
	// Returned errors wrap this sentinel; test with errors.Is.
	ErrInvalidConstructorArguments = errors.New("invalid constructor arguments")
)
