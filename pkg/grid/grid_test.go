package grid

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/koopamoopa/Decoding-Unicode/pkg/triple"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		name    string
		records []triple.Record
		maxX    int
		maxY    int
	}{
		{"single", []triple.Record{{X: 0, Glyph: "A", Y: 0}}, 0, 0},
		{"separate maxima", []triple.Record{{X: 5, Glyph: "A", Y: 1}, {X: 2, Glyph: "B", Y: 9}}, 5, 9},
		{"origin last", []triple.Record{{X: 3, Glyph: "A", Y: 4}, {X: 0, Glyph: "B", Y: 0}}, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maxX, maxY, err := Bounds(tt.records)
			if err != nil {
				t.Fatalf("Bounds() error: %v", err)
			}
			if maxX != tt.maxX || maxY != tt.maxY {
				t.Errorf("Bounds() = (%d, %d), want (%d, %d)", maxX, maxY, tt.maxX, tt.maxY)
			}
		})
	}
}

func TestBoundsEmpty(t *testing.T) {
	if _, _, err := Bounds(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("Bounds(nil) error = %v, want ErrEmpty", err)
	}
}

func TestNewSizing(t *testing.T) {
	g, err := New([]triple.Record{{X: 0, Glyph: "A", Y: 0}, {X: 2, Glyph: "B", Y: 1}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if g.Height() != 2 || g.Width() != 3 {
		t.Errorf("size = %dx%d, want 2x3", g.Height(), g.Width())
	}
}

func TestNewEmpty(t *testing.T) {
	g, err := New(nil)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("New(nil) error = %v, want ErrEmpty", err)
	}
	if g != nil {
		t.Error("New(nil) should not return a grid")
	}
}

func TestAxisInversion(t *testing.T) {
	g, err := New([]triple.Record{{X: 0, Glyph: "A", Y: 0}, {X: 0, Glyph: "B", Y: 1}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got := g.At(1, 0); got != "A" {
		t.Errorf("At(1, 0) = %q, want %q", got, "A")
	}
	if got := g.At(0, 0); got != "B" {
		t.Errorf("At(0, 0) = %q, want %q", got, "B")
	}
}

func TestDefaultFill(t *testing.T) {
	g, err := New([]triple.Record{{X: 2, Glyph: "A", Y: 2}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if row == 0 && col == 2 {
				continue
			}
			if got := g.At(row, col); got != " " {
				t.Errorf("At(%d, %d) = %q, want blank", row, col, got)
			}
		}
	}
}

func TestLastWriteWins(t *testing.T) {
	g, err := New([]triple.Record{{X: 1, Glyph: "A", Y: 1}, {X: 1, Glyph: "B", Y: 1}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got := g.At(0, 1); got != "B" {
		t.Errorf("At(0, 1) = %q, want %q", got, "B")
	}
}

func TestPlaceOutOfBounds(t *testing.T) {
	g, err := New([]triple.Record{{X: 1, Glyph: "A", Y: 1}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	for _, r := range []triple.Record{
		{X: -1, Glyph: "Z", Y: 0},
		{X: 0, Glyph: "Z", Y: -1},
		{X: 2, Glyph: "Z", Y: 0},
		{X: 0, Glyph: "Z", Y: 2},
	} {
		if g.Place(r) {
			t.Errorf("Place(%v) = true, want false", r)
		}
	}
	if got := g.Rows(); !reflect.DeepEqual(got, []string{" A", ""}) {
		t.Errorf("Rows() = %q after out-of-bounds placement", got)
	}
}

func TestNegativeRecordsDropped(t *testing.T) {
	rows := Render([]triple.Record{{X: -4, Glyph: "Z", Y: 0}, {X: 1, Glyph: "A", Y: 0}})
	if want := []string{" A"}; !reflect.DeepEqual(rows, want) {
		t.Errorf("Render() = %q, want %q", rows, want)
	}
}

func TestRowsTrim(t *testing.T) {
	tests := []struct {
		name    string
		records []triple.Record
		want    []string
	}{
		{
			name:    "trailing blanks trimmed",
			records: []triple.Record{{X: 0, Glyph: "A", Y: 0}, {X: 3, Glyph: "B", Y: 1}},
			want:    []string{"   B", "A"},
		},
		{
			name:    "interior blank preserved",
			records: []triple.Record{{X: 0, Glyph: "A", Y: 0}, {X: 2, Glyph: "C", Y: 0}},
			want:    []string{"A C"},
		},
		{
			name:    "blank row becomes empty",
			records: []triple.Record{{X: 0, Glyph: "A", Y: 2}, {X: 0, Glyph: "B", Y: 0}},
			want:    []string{"A", "", "B"},
		},
		{
			name:    "space glyph trimmed at row end",
			records: []triple.Record{{X: 0, Glyph: "A", Y: 0}, {X: 1, Glyph: " ", Y: 0}},
			want:    []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.records); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderEndToEnd(t *testing.T) {
	lines := []string{"x-coordinate", "character", "y-coordinate", "0", "A", "0", "1", "B", "1"}
	records := triple.Extract(lines)

	wantRecords := []triple.Record{{X: 0, Glyph: "A", Y: 0}, {X: 1, Glyph: "B", Y: 1}}
	if !reflect.DeepEqual(records, wantRecords) {
		t.Fatalf("Extract() = %v, want %v", records, wantRecords)
	}

	g, err := New(records)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if g.Height() != 2 || g.Width() != 2 {
		t.Errorf("size = %dx%d, want 2x2", g.Height(), g.Width())
	}
	if got, want := g.Rows(), []string{" B", "A"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() = %q, want %q", got, want)
	}
	if got, want := g.String(), " B\nA"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNegativeMaxima(t *testing.T) {
	tests := []struct {
		name    string
		records []triple.Record
		height  int
		width   int
		want    []string
	}{
		{
			name:    "all x negative leaves empty rows",
			records: []triple.Record{{X: -1, Glyph: "A", Y: 1}, {X: -3, Glyph: "B", Y: 0}},
			height:  2,
			width:   0,
			want:    []string{"", ""},
		},
		{
			name:    "all y negative leaves no rows",
			records: []triple.Record{{X: 2, Glyph: "A", Y: -1}},
			height:  0,
			width:   3,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.records)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if g.Height() != tt.height || g.Width() != tt.width {
				t.Errorf("size = %dx%d, want %dx%d", g.Height(), g.Width(), tt.height, tt.width)
			}
			if got := g.Rows(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Rows() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewTooLarge(t *testing.T) {
	tests := []struct {
		name    string
		records []triple.Record
	}{
		{"max int x", []triple.Record{{X: math.MaxInt, Glyph: "A", Y: 0}}},
		{"max int y", []triple.Record{{X: 0, Glyph: "A", Y: math.MaxInt}}},
		{"wide", []triple.Record{{X: MaxCells, Glyph: "A", Y: 0}}},
		{"area", []triple.Record{{X: 4096, Glyph: "A", Y: 1024}}},
		{"tall empty rows", []triple.Record{{X: -1, Glyph: "A", Y: MaxCells}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.records)
			if !errors.Is(err, ErrTooLarge) {
				t.Errorf("New() error = %v, want ErrTooLarge", err)
			}
			if g != nil {
				t.Error("New() should not return a grid")
			}
			if rows := Render(tt.records); rows != nil {
				t.Errorf("Render() = %d rows, want nil", len(rows))
			}
		})
	}
}

func TestNewAtLimit(t *testing.T) {
	g, err := New([]triple.Record{{X: 4095, Glyph: "A", Y: 1023}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if g.Height()*g.Width() != MaxCells {
		t.Errorf("cells = %d, want %d", g.Height()*g.Width(), MaxCells)
	}
}

func TestRenderEmpty(t *testing.T) {
	if rows := Render(nil); rows != nil {
		t.Errorf("Render(nil) = %q, want nil", rows)
	}
}
