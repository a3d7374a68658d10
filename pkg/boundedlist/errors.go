package boundedlist

import "errors"

var (
	ErrInvalidCapacity  = errors.New("boundedlist: seed exceeds capacity or capacity is negative")
	ErrIndexOutOfRange  = errors.New("boundedlist: index out of range")
	ErrReadOnlySnapshot = errors.New("boundedlist: snapshot is read-only")
)
