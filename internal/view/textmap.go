package view

import (
	"strings"

	"github.com/yourorg/qoz-dashboard/catalog"
)

const (
	textMapMinCols = 20
	textMapMaxCols = 100

	glyphReference = '@'
	glyphEligible  = 'Q'
	glyphOther     = 'o'
	glyphOverlap   = '*'
)

// TextMap draws the schematic map as plain text for a terminal of the given
// width. Properties sit at their percentage coordinates; the reference point
// is the centre.
func TextMap(props []catalog.Property, width int) string {
	cols := min(max(width-2, textMapMinCols), textMapMaxCols)
	rows := max(cols/2, 10)

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	rc, rr := cell(50, cols), cell(50, rows)
	grid[rr][rc] = glyphReference

	for _, p := range props {
		c, r := cell(p.Coordinates.X, cols), cell(p.Coordinates.Y, rows)
		g := glyphOther
		if p.QOZEligible {
			g = glyphEligible
		}
		switch grid[r][c] {
		case ' ':
			grid[r][c] = g
		case glyphReference:
		default:
			grid[r][c] = glyphOverlap
		}
	}

	var b strings.Builder
	border := "+" + strings.Repeat("-", cols) + "+\n"
	b.WriteString(border)
	for _, line := range grid {
		b.WriteByte('|')
		b.WriteString(string(line))
		b.WriteString("|\n")
	}
	b.WriteString(border)
	b.WriteString(string(glyphReference) + " " + catalog.ReferencePoint + "   " +
		string(glyphEligible) + " QOZ eligible   " +
		string(glyphOther) + " not eligible   " +
		string(glyphOverlap) + " several\n")
	return b.String()
}

// cell maps a 0-100 percentage onto [0, n).
func cell(pct float64, n int) int {
	i := int(pct / 100 * float64(n-1))
	return min(max(i, 0), n-1)
}
