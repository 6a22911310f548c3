package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/parallax/common"
)

// cellScreen is the part of tcell.Screen the sink writes to.
type cellScreen interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// termSink scales viewport pixels down to terminal cells and paints filled
// rectangles as background-colored blanks.
type termSink struct {
	screen   cellScreen
	viewport common.Size
}

func newTermSink(screen cellScreen, viewport common.Size) *termSink {
	return &termSink{screen: screen, viewport: viewport}
}

func (s *termSink) Clear(c color.Color) {
	cols, rows := s.screen.Size()
	style := tcell.StyleDefault.Background(tcell.FromImageColor(c))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *termSink) FillRect(r common.Rect, c color.Color) {
	x0, y0, x1, y1, ok := s.cells(r)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Background(tcell.FromImageColor(c))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// cells returns the half-open cell range covered by r, clipped to the screen.
// Any rectangle with a positive area covers at least one cell.
func (s *termSink) cells(r common.Rect) (x0, y0, x1, y1 int, ok bool) {
	if r.Width <= 0 || r.Height <= 0 {
		return 0, 0, 0, 0, false
	}
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0, 0, 0, false
	}
	cw := float64(s.viewport.Width) / float64(cols)
	ch := float64(s.viewport.Height) / float64(rows)

	x0 = int(math.Floor(float64(r.X) / cw))
	y0 = int(math.Floor(float64(r.Y) / ch))
	x1 = int(math.Ceil(float64(r.X+r.Width) / cw))
	y1 = int(math.Ceil(float64(r.Y+r.Height) / ch))

	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, cols), min(y1, rows)
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}
