package game

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalAction = errors.New("illegal action")
	// ErrInsufficientResources is the illegal action of paying a price the hand cannot cover.
	ErrInsufficientResources = fmt.Errorf("%w: insufficient resources", ErrIllegalAction)
	ErrExhaustedDevStack     = fmt.Errorf("%w: development stack is empty", ErrIllegalAction)
	ErrNoPieces              = fmt.Errorf("%w: no pieces left", ErrIllegalAction)
	ErrCardNotReady          = fmt.Errorf("%w: no playable card", ErrIllegalAction)
	ErrBankEmpty             = fmt.Errorf("%w: bank cannot cover", ErrIllegalAction)
	ErrUnknownAction         = errors.New("unknown action")
)

func illegal(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalAction, fmt.Sprintf(format, args...))
}
