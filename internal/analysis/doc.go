// Package analysis summarizes generated solutions for the CLI.
//
//   - [PegOccupancy]: disks per peg after every step
//   - [DiskActivity]: how often each disk moves
//   - [PlotOccupancy] and [PlotGrowth]: asciigraph charts
//
// # Example
//
//	occ, _ := analysis.PegOccupancy(4, hanoi.Generate(4))
//	fmt.Println(analysis.PlotOccupancy(occ, 60, 8))
package analysis
