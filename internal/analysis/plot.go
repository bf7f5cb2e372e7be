package analysis

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// PlotOccupancy renders the three peg series on one chart.
func PlotOccupancy(occ Occupancy, width, height int) string {
	if len(occ[0]) == 0 {
		return ""
	}
	data := [][]float64{occ[0], occ[1], occ[2]}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Yellow, asciigraph.Green),
		asciigraph.Caption("disks per peg (red=0 yellow=1 green=2)"),
	)
}

// PlotGrowth renders the optimal move count against disk count.
func PlotGrowth(maxDisks, height int) string {
	data := MoveGrowth(maxDisks)
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("moves for 1..%d disks", maxDisks)),
	)
}
