// Package hanoi provides the Towers of Hanoi puzzle model and its optimal
// solver.
//
// The package is deliberately small and free of side effects:
//
//   - [Generate]: the optimal move sequence for an n-disk puzzle
//   - [Towers]: three pegs holding disk ranks, bottom to top
//   - [Replay] and [Verify]: apply a sequence from the canonical start
//
// # Example
//
//	moves := hanoi.Generate(3)     // 7 moves
//	final, _ := hanoi.Replay(3, moves)
//	fmt.Println(final[2])          // [3 2 1]
//
// Disk ranks run from 1 (smallest) to n (largest). Pegs are indexed 0, 1, 2;
// every solution moves the stack from peg 0 to peg 2.
package hanoi
