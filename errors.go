package chainmap

import (
	"github.com/xaionaro-go/chainmap/errors"
)

var (
	ErrNotFound        = errors.NotFound
	ErrNoSpaceLeft     = errors.NoSpaceLeft
	ErrNotImplemented  = errors.NotImplemented
	ErrForbiddenToGrow = errors.ForbiddenToGrow
)
