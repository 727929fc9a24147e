// Package grid places character records on a dense 2D canvas.
//
// The canvas is sized from the largest coordinates present, so a record at
// (maxX, maxY) always lands on the top-right cell. Source y grows upward while
// rows are printed top to bottom, so row r holds y = maxY - r.
//
// When every x is negative the rows have no cells; when every y is negative
// there are no rows. Canvases over [MaxCells] cells are refused.
package grid

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/koopamoopa/Decoding-Unicode/pkg/triple"
)

// MaxCells caps the number of cells a grid may allocate. Rows without
// cells count as one cell each.
const MaxCells = 1 << 22

var (
	// ErrEmpty is returned when there are no records to size a grid from.
	ErrEmpty = errors.New("grid: no records")

	// ErrTooLarge is returned when the coordinates span more than MaxCells.
	ErrTooLarge = errors.New("grid: too large")
)

// Grid is a dense canvas of display cells. (0, 0) is the top-left cell.
type Grid struct {
	cells [][]string
	maxX  int
	maxY  int
}

// Bounds returns the largest x and y found in records.
func Bounds(records []triple.Record) (maxX, maxY int, err error) {
	if len(records) == 0 {
		return 0, 0, ErrEmpty
	}
	maxX, maxY = records[0].X, records[0].Y
	for _, r := range records[1:] {
		maxX = max(maxX, r.X)
		maxY = max(maxY, r.Y)
	}
	return maxX, maxY, nil
}

// New allocates a grid large enough for records and places every record on
// it. Later records overwrite earlier ones at the same position. Records
// outside the grid are dropped.
func New(records []triple.Record) (*Grid, error) {
	maxX, maxY, err := Bounds(records)
	if err != nil {
		return nil, err
	}
	height, width, err := size(maxX, maxY)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		cells: make([][]string, height),
		maxX:  maxX,
		maxY:  maxY,
	}
	for row := range g.cells {
		g.cells[row] = make([]string, width)
		for col := range g.cells[row] {
			g.cells[row][col] = triple.Blank
		}
	}
	for _, r := range records {
		g.Place(r)
	}
	return g, nil
}

// size returns the row and column counts for the given maxima. The maxima
// are checked before adding one so that math.MaxInt cannot wrap.
func size(maxX, maxY int) (height, width int, err error) {
	if maxX >= MaxCells || maxY >= MaxCells {
		return 0, 0, fmt.Errorf("%w: max x %d, max y %d", ErrTooLarge, maxX, maxY)
	}
	height, width = max(maxY+1, 0), max(maxX+1, 0)
	if int64(height)*int64(max(width, 1)) > MaxCells {
		return 0, 0, fmt.Errorf("%w: %d×%d cells", ErrTooLarge, height, width)
	}
	return height, width, nil
}

// Place writes r.Glyph at (r.X, r.Y) and reports whether the record fit.
func (g *Grid) Place(r triple.Record) bool {
	if r.X < 0 || r.X > g.maxX || r.Y < 0 || r.Y > g.maxY {
		return false
	}
	glyph := r.Glyph
	if glyph == "" {
		glyph = triple.Blank
	}
	g.cells[g.maxY-r.Y][r.X] = glyph
	return true
}

// Width returns the number of columns.
func (g *Grid) Width() int { return max(g.maxX+1, 0) }

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.cells) }

// At returns the cell at the given display row and column.
func (g *Grid) At(row, col int) string { return g.cells[row][col] }

// Rows returns the grid as printable lines, top row first, with trailing
// whitespace removed. Leading and interior blanks are kept.
func (g *Grid) Rows() []string {
	rows := make([]string, len(g.cells))
	for i, cells := range g.cells {
		rows[i] = strings.TrimRightFunc(strings.Join(cells, ""), unicode.IsSpace)
	}
	return rows
}

// String returns the rows joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Render builds a grid from records and returns its rows.
// It returns nil when records is empty or the grid would exceed [MaxCells].
func Render(records []triple.Record) []string {
	g, err := New(records)
	if err != nil {
		return nil
	}
	return g.Rows()
}
