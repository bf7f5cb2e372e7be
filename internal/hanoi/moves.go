package hanoi

import (
	"fmt"
	"math"
	"strconv"
)

const (
	SourcePeg    = 0
	AuxiliaryPeg = 1
	TargetPeg    = 2
	NumPegs      = 3
)

// MaxGenerateDisks is the largest disk count Generate will materialize.
// 2^24-1 moves is already a quarter gigabyte of Move values.
const MaxGenerateDisks = 24

// Move relocates the top disk of peg From onto peg To.
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (m Move) String() string {
	return fmt.Sprintf("%d -> %d", m.From, m.To)
}

// Valid reports whether both pegs exist and differ.
func (m Move) Valid() bool {
	return m.From >= 0 && m.From < NumPegs &&
		m.To >= 0 && m.To < NumPegs &&
		m.From != m.To
}

// MoveCount returns the optimal number of moves for n disks. Counts that do
// not fit in an int saturate at math.MaxInt.
func MoveCount(n int) int {
	if n <= 0 {
		return 0
	}
	if n >= strconv.IntSize-1 {
		return math.MaxInt
	}
	return 1<<n - 1
}

// Generate returns the optimal move sequence taking n disks from peg 0 to
// peg 2. It returns nil for n <= 0 and for n > MaxGenerateDisks.
func Generate(n int) []Move {
	if n <= 0 || n > MaxGenerateDisks {
		return nil
	}
	moves := make([]Move, 0, MoveCount(n))
	Solve(n, SourcePeg, AuxiliaryPeg, TargetPeg, func(m Move) {
		moves = append(moves, m)
	})
	return moves
}

// Solve streams the moves taking n disks from source to target, using
// auxiliary as the spare peg.
func Solve(n, source, auxiliary, target int, emit func(Move)) {
	if n <= 0 {
		return
	}
	if n == 1 {
		emit(Move{From: source, To: target})
		return
	}
	Solve(n-1, source, target, auxiliary, emit)
	emit(Move{From: source, To: target})
	Solve(n-1, auxiliary, source, target, emit)
}
