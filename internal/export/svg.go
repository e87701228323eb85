package export

import (
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/eduvision/internal/viz"
)

const background = "#0a0a0a"

var ErrEmptyCanvas = errors.New("export: nothing to draw")

// Braille dot bits, row-major within a cell.
var pixelMap = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// errWriter remembers the first write error so the svgo calls, which do not
// report errors, can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// CanvasToSVG writes every lit Braille dot of canvas as a circle, scale
// pixels apart, in the theme's model colour.
func CanvasToSVG(w io.Writer, canvas *viz.Canvas, theme viz.Theme, scale int) error {
	if canvas == nil || canvas.Lit() == 0 {
		return ErrEmptyCanvas
	}
	if scale < 2 {
		scale = 2
	}

	ew := &errWriter{w: w}
	doc := svg.New(ew)
	width := canvas.DotsX() * scale
	height := canvas.DotsY() * scale

	doc.Start(width, height)
	doc.Rect(0, 0, width, height, "fill:"+background)
	doc.Gstyle(fmt.Sprintf("fill:%s", theme.Model))
	r := max(scale*2/5, 1)
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			pattern := canvas.Grid[row][col] - 0x2800
			if pattern <= 0 {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					cx := (col*2+dx)*scale + scale/2
					cy := (row*4+dy)*scale + scale/2
					doc.Circle(cx, cy, r)
				}
			}
		}
	}
	doc.Gend()
	doc.End()
	return ew.err
}
