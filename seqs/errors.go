package seqs

import "errors"

var (
	// ErrIllegalArgument reports an argument a function cannot work with,
	// such as the maximum of an empty sequence.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrAlreadyBuilt reports use of a Builder after Build was called.
	ErrAlreadyBuilt = errors.New("sequence builder already built")
)
