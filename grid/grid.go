package grid

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/pkg/errors"
)

// ErrInvalidColumns is returned when Layout is asked for fewer than one column
var ErrInvalidColumns = errors.New("grid: columns must be at least 1")

// Child is one element handed to a layout pass
type Child interface {
	// Measure returns the child's height when forced to the given width
	Measure(width int) int
}

// Constraints bounds the container produced by a layout pass
type Constraints struct {
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Placement is where a single child ended up
type Placement struct {
	Index  int
	Column int
	X      int
	Y      int
	Width  int
	Height int
}

// Result is the outcome of one layout pass
type Result struct {
	Width      int
	Height     int
	ItemWidth  int
	Columns    int
	Placements []Placement
}

// Layout arranges children into vertical columns. Child i always lands in
// column i % columns; the per-column totals only size the container.
func Layout(children []Child, columns int, c Constraints) (Result, error) {
	if columns < 1 {
		return Result{}, errors.Wrapf(ErrInvalidColumns, "got %d", columns)
	}

	itemWidth := c.MaxWidth / columns
	columnY := make([]int, columns)
	placements := make([]Placement, len(children))

	for i, child := range children {
		column := i % columns
		h := child.Measure(itemWidth)
		placements[i] = Placement{
			Index:  i,
			Column: column,
			X:      column * itemWidth,
			Y:      columnY[column],
			Width:  itemWidth,
			Height: h,
		}
		columnY[column] += h
	}

	height := c.MinHeight
	if len(children) > 0 {
		height = 0
		for _, y := range columnY {
			if y > height {
				height = y
			}
		}
	}
	if height > c.MaxHeight {
		height = c.MaxHeight
	}

	return Result{
		Width:      c.MaxWidth,
		Height:     height,
		ItemWidth:  itemWidth,
		Columns:    columns,
		Placements: placements,
	}, nil
}

// Hit returns the index of the child whose rectangle contains (x, y),
// or -1 if the point falls outside every child.
func (r Result) Hit(x, y int) int {
	if y < 0 || y >= r.Height {
		return -1
	}
	for _, p := range r.Placements {
		if x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height {
			return p.Index
		}
	}
	return -1
}

// Compose paints rendered blocks onto a Width x Height canvas at their
// placements. blocks[i] belongs to Placements[i]; lines past the container
// height are clipped.
func (r Result) Compose(blocks []string) string {
	if r.Height <= 0 {
		return ""
	}
	canvas := make([][]string, r.Height)
	for row := range canvas {
		canvas[row] = make([]string, r.Columns)
	}

	for i, p := range r.Placements {
		if i >= len(blocks) {
			break
		}
		for j, line := range strings.Split(blocks[i], "\n") {
			row := p.Y + j
			if row >= r.Height || j >= p.Height {
				break
			}
			canvas[row][p.Column] = fit(line, p.Width)
		}
	}

	blank := strings.Repeat(" ", r.ItemWidth)
	lines := make([]string, r.Height)
	for row, cells := range canvas {
		var b strings.Builder
		for _, cell := range cells {
			if cell == "" {
				cell = blank
			}
			b.WriteString(cell)
		}
		// leftover cells from the integer division
		if pad := r.Width - r.Columns*r.ItemWidth; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

// fit pads or clips a styled line to exactly width cells
func fit(line string, width int) string {
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}
	return line + strings.Repeat(" ", width-w)
}
