package tui

import (
	"strings"

	"github.com/san-kum/hanoisim/internal/hanoi"
)

// pegWidth is the column width needed to draw pegs holding up to levels disks.
func pegWidth(levels int) int {
	return 2*levels + 3
}

// drawTowers renders the three pegs bottom-aligned, levels rows tall. disk
// paints a disk of the given rank and drawn width; nil paints plain ASCII.
func drawTowers(t hanoi.Towers, levels int, disk func(rank int, s string) string) string {
	if levels < 1 {
		levels = 1
	}
	colW := pegWidth(levels)
	if disk == nil {
		disk = func(_ int, s string) string { return s }
	}

	var b strings.Builder
	for row := levels; row >= 0; row-- {
		for p, peg := range t {
			if p > 0 {
				b.WriteString(" ")
			}
			if row < len(peg) {
				rank := peg[row]
				w := 2*rank + 1
				pad := (colW - w) / 2
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(disk(rank, diskBar(rank)))
				b.WriteString(strings.Repeat(" ", colW-w-pad))
			} else {
				pad := colW / 2
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString("│")
				b.WriteString(strings.Repeat(" ", colW-pad-1))
			}
		}
		b.WriteString("\n")
	}

	for p := range t {
		if p > 0 {
			b.WriteString(" ")
		}
		b.WriteString(strings.Repeat("━", colW))
	}
	b.WriteString("\n")
	for p := range t {
		if p > 0 {
			b.WriteString(" ")
		}
		label := string(rune('0' + p))
		pad := colW / 2
		b.WriteString(strings.Repeat(" ", pad) + label + strings.Repeat(" ", colW-pad-1))
	}
	b.WriteString("\n")
	return b.String()
}

// diskBar draws a disk 2*rank+1 cells wide with its rank in the middle.
func diskBar(rank int) string {
	side := strings.Repeat("█", rank)
	label := string(rune('0' + rank%10))
	return side + label + side
}

func pegString(p hanoi.Peg) string {
	if len(p) == 0 {
		return "[]"
	}
	parts := make([]string, len(p))
	for i, d := range p {
		parts[i] = string(rune('0' + d%10))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
