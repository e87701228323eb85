package viz

import (
	"math"
	"sort"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Camera orbits the origin. Yaw spins the model about the vertical axis,
// Pitch tilts it toward the viewer.
type Camera struct {
	Yaw, Pitch float64
	Zoom       float64
	// Distance is how far the eye sits from the origin along +Z.
	Distance float64
}

func NewCamera() *Camera {
	return &Camera{Pitch: 0.35, Zoom: 1.0, Distance: 6}
}

// Spin advances the yaw, keeping it in [0, 2π).
func (c *Camera) Spin(delta float64) {
	c.Yaw = math.Mod(c.Yaw+delta, 2*math.Pi)
	if c.Yaw < 0 {
		c.Yaw += 2 * math.Pi
	}
}

func (c *Camera) rotate(p Vec3) Vec3 {
	cy, sy := math.Cos(c.Yaw), math.Sin(c.Yaw)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cp, sp := math.Cos(c.Pitch), math.Sin(c.Pitch)
	p.Y, p.Z = p.Y*cp-p.Z*sp, p.Y*sp+p.Z*cp
	return p
}

// Project maps a model-space point onto a dot grid of sw x sh. It returns
// the dot position, the view depth and whether the point is in front of the
// eye.
func (c *Camera) Project(p Vec3, sw, sh int) (x, y int, depth float64, ok bool) {
	r := c.rotate(p).Scale(c.Zoom)
	d := c.Distance - r.Z
	if d <= 0.1 {
		return 0, 0, 0, false
	}
	persp := c.Distance / d
	unit := float64(min(sw, sh)) / 3.2
	x = sw/2 + int(math.Round(r.X*persp*unit))
	y = sh/2 - int(math.Round(r.Y*persp*unit))
	return x, y, r.Z, true
}

type Edge struct {
	A, B Vec3
}

// Mesh is a wireframe in model space. Points are drawn as single dots.
type Mesh struct {
	Edges  []Edge
	Points []Vec3
}

func (m *Mesh) Line(a, b Vec3) { m.Edges = append(m.Edges, Edge{a, b}) }
func (m *Mesh) Dot(p Vec3)     { m.Points = append(m.Points, p) }

// Merge appends other's edges and points, shifted by offset.
func (m *Mesh) Merge(other *Mesh, offset Vec3) {
	for _, e := range other.Edges {
		m.Line(e.A.Add(offset), e.B.Add(offset))
	}
	for _, p := range other.Points {
		m.Dot(p.Add(offset))
	}
}

// Bounds returns the axis-aligned box enclosing the mesh.
func (m *Mesh) Bounds() (lo, hi Vec3) {
	first := true
	grow := func(p Vec3) {
		if first {
			lo, hi, first = p, p, false
			return
		}
		lo = Vec3{math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z)}
		hi = Vec3{math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z)}
	}
	for _, e := range m.Edges {
		grow(e.A)
		grow(e.B)
	}
	for _, p := range m.Points {
		grow(p)
	}
	return lo, hi
}

// Box adds the twelve edges of the axis-aligned box [lo, hi].
func (m *Mesh) Box(lo, hi Vec3) {
	v := [8]Vec3{
		{lo.X, lo.Y, lo.Z}, {hi.X, lo.Y, lo.Z}, {hi.X, hi.Y, lo.Z}, {lo.X, hi.Y, lo.Z},
		{lo.X, lo.Y, hi.Z}, {hi.X, lo.Y, hi.Z}, {hi.X, hi.Y, hi.Z}, {lo.X, hi.Y, hi.Z},
	}
	for _, e := range [12][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}} {
		m.Line(v[e[0]], v[e[1]])
	}
}

type projected struct {
	x1, y1, x2, y2 int
	depth          float64
}

// Render3D draws mesh onto c as seen through cam, far edges first.
func Render3D(c *Canvas, mesh *Mesh, cam *Camera) {
	if c == nil || mesh == nil || cam == nil {
		return
	}
	sw, sh := c.DotsX(), c.DotsY()
	out := make([]projected, 0, len(mesh.Edges)+len(mesh.Points))
	for _, e := range mesh.Edges {
		x1, y1, d1, ok1 := cam.Project(e.A, sw, sh)
		x2, y2, d2, ok2 := cam.Project(e.B, sw, sh)
		if ok1 && ok2 {
			out = append(out, projected{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	for _, p := range mesh.Points {
		if x, y, d, ok := cam.Project(p, sw, sh); ok {
			out = append(out, projected{x, y, x, y, d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].depth < out[j].depth })
	for _, e := range out {
		c.DrawLine(e.x1, e.y1, e.x2, e.y2)
	}
}
