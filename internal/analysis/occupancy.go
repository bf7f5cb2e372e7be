package analysis

import (
	"github.com/san-kum/hanoisim/internal/hanoi"
)

// Occupancy holds the number of disks on each peg after every step; index 0
// is the starting position.
type Occupancy [hanoi.NumPegs][]float64

// PegOccupancy replays moves from the canonical n-disk start and records
// how many disks each peg holds after every step.
func PegOccupancy(n int, moves []hanoi.Move) (Occupancy, error) {
	var occ Occupancy
	for p := range occ {
		occ[p] = make([]float64, 0, len(moves)+1)
	}

	t := hanoi.NewTowers(n)
	record := func() {
		for p := range occ {
			occ[p] = append(occ[p], float64(len(t[p])))
		}
	}

	record()
	for i, m := range moves {
		if err := t.Apply(m); err != nil {
			return occ, &hanoi.MoveError{Step: i + 1, Move: m, Wrapped: err}
		}
		record()
	}
	return occ, nil
}

// DiskActivity counts how often each disk moves. Index 0 is disk 1.
func DiskActivity(n int, moves []hanoi.Move) ([]int, error) {
	disks, err := hanoi.DiskAt(n, moves)
	if err != nil {
		return nil, err
	}
	counts := make([]int, n)
	for _, d := range disks {
		if d >= 1 && d <= n {
			counts[d-1]++
		}
	}
	return counts, nil
}

// MoveGrowth returns the optimal move count for 1..maxDisks disks.
func MoveGrowth(maxDisks int) []float64 {
	if maxDisks < 1 {
		return nil
	}
	out := make([]float64, maxDisks)
	for n := 1; n <= maxDisks; n++ {
		out[n-1] = float64(hanoi.MoveCount(n))
	}
	return out
}
