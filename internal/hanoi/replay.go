package hanoi

import "fmt"

// Replay applies moves from the canonical n-disk start and returns the
// resulting towers. The first failing move is reported as a *MoveError.
func Replay(n int, moves []Move) (Towers, error) {
	t := NewTowers(n)
	for i, m := range moves {
		if err := t.Apply(m); err != nil {
			return t, &MoveError{Step: i + 1, Move: m, Wrapped: err}
		}
	}
	return t, nil
}

// Verify checks that moves is an optimal, legal solution for n disks.
func Verify(n int, moves []Move) error {
	if want := MoveCount(n); len(moves) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrMoveCount, len(moves), want)
	}
	final, err := Replay(n, moves)
	if err != nil {
		return err
	}
	if !final.Solved(n) {
		return ErrUnsolved
	}
	return nil
}

// DiskAt returns, for each move, the rank of the disk it carries.
func DiskAt(n int, moves []Move) ([]int, error) {
	t := NewTowers(n)
	disks := make([]int, len(moves))
	for i, m := range moves {
		if m.Valid() {
			disks[i] = t[m.From].Top()
		}
		if err := t.Apply(m); err != nil {
			return nil, &MoveError{Step: i + 1, Move: m, Wrapped: err}
		}
	}
	return disks, nil
}
