package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is a single screen position: a rune plus its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a fixed-size grid of cells that challenges draw into. The host
// turns it into styled terminal output; challenges never see the terminal.
// Cells are stored row-major in one slice.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a blank screen. Negative sizes are treated as zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the dimensions, keeping the overlapping top-left content.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height && s.cells != nil {
		return
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blank
	}
	for y := 0; y < min(s.height, height); y++ {
		copy(cells[y*width:y*width+min(s.width, width)], s.cells[y*s.width:])
	}

	s.width, s.height, s.cells = width, height, cells
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Set places an uncolored rune. Out-of-bounds writes are ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a colored rune. Out-of-bounds writes are ignored.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), or a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// DrawText writes text from (x, y) to the right, clipped at the edges.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes colored text from (x, y) to the right.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextColored((s.width-utf8.RuneCountInString(text))/2, y, text, ColorDefault)
}

// DrawHLine repeats r for length cells starting at (x, y).
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r)
	}
}

// DrawBox outlines r with box-drawing runes and blanks its interior.
func (s *Screen) DrawBox(r Rect, c Color) {
	right, bottom := r.Right()-1, r.Bottom()-1
	for y := r.Y; y <= bottom; y++ {
		for x := r.X; x <= right; x++ {
			var ch rune
			switch {
			case y == r.Y && x == r.X:
				ch = '┌'
			case y == r.Y && x == right:
				ch = '┐'
			case y == bottom && x == r.X:
				ch = '└'
			case y == bottom && x == right:
				ch = '┘'
			case y == r.Y || y == bottom:
				ch = '─'
			case x == r.X || x == right:
				ch = '│'
			default:
				s.Set(x, y, ' ')
				continue
			}
			s.SetColored(x, y, ch, c)
		}
	}
}

// DrawMessage draws a centered box with a colored headline and a plain
// second line, used for win, loss and resize notices.
func (s *Screen) DrawMessage(headline, detail string, c Color) {
	hw, dw := utf8.RuneCountInString(headline), utf8.RuneCountInString(detail)
	w := max(hw, dw) + 4
	const h = 5
	x := (s.width - w) / 2
	y := (s.height - h) / 2

	s.DrawBox(NewRect(x, y, w, h), c)
	s.DrawTextColored(x+(w-hw)/2, y+1, headline, c)
	s.DrawText(x+(w-dw)/2, y+3, detail)
}

// DrawBar draws a bracketed progress bar of the given inner width at
// (x, y), filled in proportion to value/total.
func (s *Screen) DrawBar(x, y, width, value, total int, c Color) {
	filled := 0
	if total > 0 {
		filled = Clamp(width*value/total, 0, width)
	}
	s.Set(x, y, '[')
	for i := 0; i < width; i++ {
		r := '░'
		if i < filled {
			r = '█'
		}
		s.SetColored(x+1+i, y, r, c)
	}
	s.Set(x+width+1, y, ']')
}

// Row returns row y as plain text, or spaces outside the screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the whole screen as plain text, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
