package game

import "fmt"

// IllegalMoveError reports why a move violates the rules. It is recoverable:
// a caller applying an externally constructed move should reject it and try
// another, never abort.
type IllegalMoveError struct {
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: %s", e.Reason)
}

func illegalMove(reason string) error {
	return &IllegalMoveError{Reason: reason}
}
