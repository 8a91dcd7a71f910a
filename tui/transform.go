package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"animlists/anim"
)

// How many animation pixels one terminal cell stands for
const (
	cellWidthPx  = 8.0
	cellHeightPx = 16.0
)

// scaledWidth is the card width for a scale factor, never below 1
func scaledWidth(width int, scale float64) int {
	w := int(math.Round(float64(width) * scale))
	if w < 1 {
		w = 1
	}
	if w > width {
		w = width
	}
	return w
}

// applyTransform places rendered card lines into a width x height block,
// applying the geometric parts of t. Opacity and scale are baked into the
// lines by the caller; a narrower card is centred.
func applyTransform(lines []string, t anim.Transform, width, height int) []string {
	lines = rotateX(lines, t.RotationX)

	cardWidth := 0
	for _, l := range lines {
		if w := ansi.StringWidth(l); w > cardWidth {
			cardWidth = w
		}
	}
	dx := (width-cardWidth)/2 + int(math.Round(t.TranslateX/cellWidthPx))
	dy := int(math.Round(t.TranslateY / cellHeightPx))

	blank := strings.Repeat(" ", width)
	out := make([]string, height)
	for row := range out {
		src := row - dy
		if src < 0 || src >= len(lines) {
			out[row] = blank
			continue
		}
		out[row] = shift(lines[src], dx, width)
	}
	return out
}

// shift moves a line dx cells right (or left when negative) and fits it
// to exactly width cells
func shift(line string, dx, width int) string {
	switch {
	case dx > 0:
		if dx >= width {
			return strings.Repeat(" ", width)
		}
		line = strings.Repeat(" ", dx) + line
	case dx < 0:
		line = ansi.TruncateLeft(line, -dx, "")
	}
	if ansi.StringWidth(line) > width {
		line = ansi.Truncate(line, width, "")
	}
	return pad(line, width)
}

// rotateX flips the card around its horizontal axis. Rows are squeezed by
// |cos θ| and mirrored once the back faces the viewer. The row count is
// kept, with the squeezed card centred.
func rotateX(lines []string, degrees float64) []string {
	n := len(lines)
	if n == 0 {
		return lines
	}
	c := math.Cos(degrees * math.Pi / 180)
	rows := int(math.Round(math.Abs(c) * float64(n)))
	if rows == n && c > 0 {
		return lines
	}

	squeezed := make([]string, 0, n)
	if rows == 0 {
		width := 0
		for _, l := range lines {
			if w := ansi.StringWidth(l); w > width {
				width = w
			}
		}
		squeezed = append(squeezed, strings.Repeat("─", width))
	} else {
		for i := 0; i < rows; i++ {
			squeezed = append(squeezed, lines[i*n/rows])
		}
	}
	if c < 0 {
		for i, j := 0, len(squeezed)-1; i < j; i, j = i+1, j-1 {
			squeezed[i], squeezed[j] = squeezed[j], squeezed[i]
		}
	}

	top := (n - len(squeezed)) / 2
	out := make([]string, n)
	for i := range out {
		j := i - top
		if j >= 0 && j < len(squeezed) {
			out[i] = squeezed[j]
		}
	}
	return out
}
