package bridge

import "errors"

// Sentinel errors carried by the panics raised on programming errors and
// touch protocol violations. Recover and test with errors.Is.
var (
	ErrDoubleRegistration = errors.New("handler already registered")
	ErrReentrantLayout    = errors.New("layout requested during layout")
	ErrReentrantDraw      = errors.New("draw requested during layout or draw")
	ErrUnknownTouch       = errors.New("touch id has no recorded target")
	ErrDuplicateTouch     = errors.New("touch id already tracked")
	ErrDetachBookkeeping  = errors.New("detached element has no active touch")
	ErrInvalidChild       = errors.New("invalid child")
)
