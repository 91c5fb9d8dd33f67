package desc

import "errors"

var (
	ErrBadKind  = errors.New("bad kind")
	ErrBadShape = errors.New("bad description shape")
)
