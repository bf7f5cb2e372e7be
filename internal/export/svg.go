package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/hanoisim/internal/hanoi"
)

var svgDiskColors = []string{"#ff5f5f", "#ffaf00", "#ffd700", "#5fff00", "#00d7d7", "#5f87ff", "#af87ff"}

// TowersToSVG draws the pegs and disks of t. levels sets the drawn peg
// height in disks; scale is the height of one disk in pixels.
func TowersToSVG(t hanoi.Towers, levels int, scale float64) string {
	if levels < 1 {
		levels = max(t.Disks(), 1)
	}
	if scale <= 0 {
		scale = 16
	}

	colW := float64(2*levels+3) * scale
	width := colW * hanoi.NumPegs
	height := float64(levels+2) * scale
	baseY := height - scale/2

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<rect x="0" y="%.1f" width="%.1f" height="%.1f" fill="#444466"/>
`, baseY, width, scale/4))

	for p, peg := range t {
		cx := colW*float64(p) + colW/2
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#666688"/>
`, cx-scale/8, scale/2, scale/4, baseY-scale/2))

		for i, rank := range peg {
			w := float64(2*rank+1) * scale
			y := baseY - float64(i+1)*scale
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s"><title>%d</title></rect>
`, cx-w/2, y, w, scale*0.9, scale/4, svgDiskColors[(rank-1)%len(svgDiskColors)], rank))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG draws a step chart of values, one point per step.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	stepX := float64(width) / float64(len(values)-1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	prevY := 0.0
	for i, v := range values {
		x := float64(i) * stepX
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f L%.1f,%.1f", x, prevY, x, y))
		}
		prevY = y
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
