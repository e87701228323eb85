package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// dimensionMargin pads the overlay box so it does not sit on the wireframe.
const dimensionMargin = 0.1

// DimensionBox returns the bounding box of m, padded slightly, as its own
// mesh.
func DimensionBox(m *Mesh) *Mesh {
	lo, hi := m.Bounds()
	pad := Vec3{dimensionMargin, dimensionMargin, dimensionMargin}
	box := &Mesh{}
	box.Box(lo.Sub(pad), hi.Add(pad))
	return box
}

// DrawModel clears c and draws m through cam, with the bounding box when
// showDimensions is set.
func DrawModel(c *Canvas, m *Mesh, cam *Camera, showDimensions bool) {
	c.Clear()
	Render3D(c, m, cam)
	if showDimensions {
		Render3D(c, DimensionBox(m), cam)
	}
}

// Paint renders the canvas rows in the given style, followed by an optional
// caption line centred under the drawing.
func Paint(c *Canvas, style lipgloss.Style, caption string) string {
	var b strings.Builder
	for i, line := range c.Lines() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(style.Render(line))
	}
	if caption != "" {
		b.WriteByte('\n')
		b.WriteString(lipgloss.PlaceHorizontal(c.Width, lipgloss.Center, Subtle.Render(caption)))
	}
	return b.String()
}
