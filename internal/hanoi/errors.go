package hanoi

import (
	"errors"
	"fmt"
)

// Domain errors for puzzle operations.
var (
	// ErrEmptyPeg indicates a move whose source peg holds no disks.
	ErrEmptyPeg = errors.New("hanoi: source peg is empty")

	// ErrIllegalMove indicates a disk placed on top of a smaller one.
	ErrIllegalMove = errors.New("hanoi: larger disk placed on smaller disk")

	// ErrInvalidPeg indicates a peg index outside 0..2 or From == To.
	ErrInvalidPeg = errors.New("hanoi: invalid peg index")

	// ErrUnsolved indicates a replay that did not end with the full stack on the target peg.
	ErrUnsolved = errors.New("hanoi: puzzle not solved")

	// ErrMoveCount indicates a sequence whose length is not 2^n - 1.
	ErrMoveCount = errors.New("hanoi: move count is not optimal")
)

// MoveError wraps an error with the position of the failing move.
type MoveError struct {
	Step    int
	Move    Move
	Wrapped error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Move, e.Wrapped)
}

func (e *MoveError) Unwrap() error {
	return e.Wrapped
}
