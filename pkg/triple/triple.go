package triple

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/koopamoopa/Decoding-Unicode/pkg/markup"
)

// Header is the column header that precedes the coordinate data.
// Matching is case-insensitive and applies to whole trimmed lines.
var Header = [3]string{"x-coordinate", "character", "y-coordinate"}

// Blank is the glyph substituted for an empty character cell.
const Blank = " "

// Record is a single character placed at (X, Y).
// Y grows upward; Glyph is never empty.
type Record struct {
	X     int
	Glyph string
	Y     int
}

// String returns the record as "(x, glyph, y)".
func (r Record) String() string {
	return fmt.Sprintf("(%d, %q, %d)", r.X, r.Glyph, r.Y)
}

// HeaderIndex returns the index of the first data line following the first
// occurrence of [Header] in lines. If no header is present it returns
// (0, false) and the whole stream is treated as data.
func HeaderIndex(lines []string) (int, bool) {
	for i := 0; i+2 < len(lines); i++ {
		if isHeader(lines[i : i+3]) {
			return i + 3, true
		}
	}
	return 0, false
}

func isHeader(window []string) bool {
	for i, want := range Header {
		if !strings.EqualFold(strings.TrimSpace(window[i]), want) {
			return false
		}
	}
	return true
}

// Extract returns the records found in lines, in encounter order.
// Parsing starts after the header, or at the first line if there is none.
func Extract(lines []string) []Record {
	start, _ := HeaderIndex(lines)
	return ExtractFrom(lines, start)
}

// ExtractFrom returns the records found in lines starting at index start.
//
// Each step reads x, glyph and y from three consecutive lines. When either
// coordinate fails to parse the window slides forward by a single line.
// Scanning stops once fewer than three lines remain.
func ExtractFrom(lines []string, start int) []Record {
	var records []Record
	for i := max(start, 0); i+2 < len(lines); {
		r, ok := parseWindow(lines[i], lines[i+1], lines[i+2])
		if !ok {
			i++
			continue
		}
		records = append(records, r)
		i += 3
	}
	return records
}

// Parse normalizes raw document text with [markup.Lines] and extracts the
// records it contains.
func Parse(text string) []Record {
	return Extract(markup.Lines(text))
}

func parseWindow(xs, glyph, ys string) (Record, bool) {
	x, ok := parseCoord(xs)
	if !ok {
		return Record{}, false
	}
	y, ok := parseCoord(ys)
	if !ok {
		return Record{}, false
	}
	if glyph == "" {
		glyph = Blank
	}
	return Record{X: x, Glyph: glyph, Y: y}, true
}

// parseCoord parses a signed base-10 integer. Negative values are valid
// here; the grid drops them at placement. Fractions, separators and values
// that overflow int are rejected.
func parseCoord(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
