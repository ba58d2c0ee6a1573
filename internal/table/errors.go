package table

import "errors"

var (
	// ErrTableFull is returned when an open-addressing insert exhausts its probe bound
	ErrTableFull = errors.New("table is full")
	// ErrInvalidSize is returned for a non-positive table size
	ErrInvalidSize = errors.New("invalid table size")
	// ErrUnknownStrategy is returned for a strategy outside the known set
	ErrUnknownStrategy = errors.New("unknown collision strategy")
)
