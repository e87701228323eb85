package viz

import (
	"math"
	"math/rand"
)

// neuralLinks is how many decorative connection points are scattered over
// the brain.
const neuralLinks = 8

type sceneBuilder func(rng *rand.Rand) *Mesh

var scenes = map[string]sceneBuilder{
	"engine":       engineScene,
	"pump":         pumpScene,
	"cylinder":     cylinderScene,
	"transmission": transmissionScene,
	"valve":        valveScene,
	"brain":        brainScene,
	"cerebellum":   cerebellumScene,
	"neuron":       neuronScene,
}

// Scene builds the decorative wireframe for a model id. Random placement
// only ever draws from rng, so equal seeds give equal meshes. Unknown ids
// get a plain cube and ok=false.
func Scene(id string, rng *rand.Rand) (mesh *Mesh, ok bool) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	build, ok := scenes[id]
	if !ok {
		m := &Mesh{}
		m.Box(Vec3{-0.8, -0.8, -0.8}, Vec3{0.8, 0.8, 0.8})
		return m, false
	}
	return build(rng), true
}

// ring adds a circle of radius r around center in the XY plane.
func ring(m *Mesh, center Vec3, r float64, segs int) {
	for i := 0; i < segs; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segs)
		a1 := 2 * math.Pi * float64(i+1) / float64(segs)
		m.Line(
			center.Add(Vec3{r * math.Cos(a0), r * math.Sin(a0), 0}),
			center.Add(Vec3{r * math.Cos(a1), r * math.Sin(a1), 0}),
		)
	}
}

// gear adds a toothed profile plus a hub ring, extruded to the given
// thickness along Z.
func gear(m *Mesh, center Vec3, r float64, teeth int, thickness float64) {
	outer, inner := r, r*0.82
	n := teeth * 4
	profile := make([]Vec3, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		rad := inner
		if i%4 == 1 || i%4 == 2 {
			rad = outer
		}
		profile[i] = Vec3{rad * math.Cos(a), rad * math.Sin(a), 0}
	}
	front := Vec3{0, 0, thickness / 2}
	back := Vec3{0, 0, -thickness / 2}
	for i := range profile {
		p, q := profile[i], profile[(i+1)%n]
		m.Line(center.Add(p).Add(front), center.Add(q).Add(front))
		m.Line(center.Add(p).Add(back), center.Add(q).Add(back))
		if i%4 == 1 {
			m.Line(center.Add(p).Add(front), center.Add(p).Add(back))
		}
	}
	ring(m, center.Add(front), r*0.3, 12)
}

// tube adds a cylinder of radius r along Y from y0 to y1.
func tube(m *Mesh, center Vec3, r, y0, y1 float64, segs int) {
	for i := 0; i < segs; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segs)
		a1 := 2 * math.Pi * float64(i+1) / float64(segs)
		p0 := Vec3{r * math.Cos(a0), 0, r * math.Sin(a0)}
		p1 := Vec3{r * math.Cos(a1), 0, r * math.Sin(a1)}
		lo, hi := Vec3{0, y0, 0}, Vec3{0, y1, 0}
		m.Line(center.Add(p0).Add(lo), center.Add(p1).Add(lo))
		m.Line(center.Add(p0).Add(hi), center.Add(p1).Add(hi))
		if i%2 == 0 {
			m.Line(center.Add(p0).Add(lo), center.Add(p0).Add(hi))
		}
	}
}

// ellipsoid adds latitude and longitude rings.
func ellipsoid(m *Mesh, center Vec3, rx, ry, rz float64, lat, lon int) {
	const segs = 20
	point := func(theta, phi float64) Vec3 {
		return center.Add(Vec3{
			rx * math.Sin(theta) * math.Cos(phi),
			ry * math.Cos(theta),
			rz * math.Sin(theta) * math.Sin(phi),
		})
	}
	for i := 1; i < lat; i++ {
		theta := math.Pi * float64(i) / float64(lat)
		for j := 0; j < segs; j++ {
			m.Line(point(theta, 2*math.Pi*float64(j)/segs), point(theta, 2*math.Pi*float64(j+1)/segs))
		}
	}
	for j := 0; j < lon; j++ {
		phi := 2 * math.Pi * float64(j) / float64(lon)
		for i := 0; i < segs; i++ {
			m.Line(point(math.Pi*float64(i)/segs, phi), point(math.Pi*float64(i+1)/segs, phi))
		}
	}
}

func engineScene(*rand.Rand) *Mesh {
	m := &Mesh{}
	gear(m, Vec3{}, 0.8, 12, 0.25)
	gear(m, Vec3{0.95, 0.75, 0}, 0.4, 8, 0.2)
	gear(m, Vec3{-0.95, -0.7, 0}, 0.5, 9, 0.2)
	return m
}

func pumpScene(*rand.Rand) *Mesh {
	m := &Mesh{}
	// Volute casing grows outward like a spiral.
	const segs = 32
	prev := Vec3{0.7, 0, 0.3}
	for i := 1; i <= segs; i++ {
		a := 2 * math.Pi * float64(i) / segs
		r := 0.7 + 0.35*float64(i)/segs
		p := Vec3{r * math.Cos(a), r * math.Sin(a), 0.3}
		m.Line(prev, p)
		m.Line(prev.Sub(Vec3{0, 0, 0.6}), p.Sub(Vec3{0, 0, 0.6}))
		prev = p
	}
	// Impeller vanes.
	for i := 0; i < 6; i++ {
		a := 2 * math.Pi * float64(i) / 6
		m.Line(Vec3{0.15 * math.Cos(a), 0.15 * math.Sin(a), 0}, Vec3{0.6 * math.Cos(a+0.5), 0.6 * math.Sin(a+0.5), 0})
	}
	ring(m, Vec3{}, 0.15, 10)
	// Discharge nozzle.
	m.Line(Vec3{1.05, 0, 0.3}, Vec3{1.05, 0.9, 0.3})
	m.Line(Vec3{0.75, 0, 0.3}, Vec3{0.75, 0.9, 0.3})
	return m
}

func cylinderScene(*rand.Rand) *Mesh {
	m := &Mesh{}
	tube(m, Vec3{}, 0.45, -1.2, 0.6, 16)
	// Piston head inside the bore and the rod leaving the gland.
	tube(m, Vec3{}, 0.42, 0.1, 0.25, 16)
	tube(m, Vec3{}, 0.18, 0.25, 1.4, 8)
	return m
}

func transmissionScene(*rand.Rand) *Mesh {
	m := &Mesh{}
	radii := []float64{0.55, 0.45, 0.35, 0.28}
	z := -0.75
	for i, r := range radii {
		gear(m, Vec3{0, 0.35, z}, r, 8+2*i, 0.12)
		gear(m, Vec3{0, -0.75 + r, z}, 0.9-r, 14-2*i, 0.12)
		z += 0.5
	}
	m.Line(Vec3{0, 0.35, -1.1}, Vec3{0, 0.35, 1.1})
	return m
}

func valveScene(*rand.Rand) *Mesh {
	m := &Mesh{}
	// Pipe run through the body.
	for _, r := range []float64{0.35} {
		for i := 0; i < 12; i++ {
			a0 := 2 * math.Pi * float64(i) / 12
			a1 := 2 * math.Pi * float64(i+1) / 12
			for _, x := range []float64{-1.1, 1.1} {
				m.Line(Vec3{x, r * math.Cos(a0), r * math.Sin(a0)}, Vec3{x, r * math.Cos(a1), r * math.Sin(a1)})
			}
			if i%3 == 0 {
				m.Line(Vec3{-1.1, r * math.Cos(a0), r * math.Sin(a0)}, Vec3{1.1, r * math.Cos(a0), r * math.Sin(a0)})
			}
		}
	}
	m.Box(Vec3{-0.4, -0.5, -0.4}, Vec3{0.4, 0.5, 0.4})
	// Bonnet, stem and handwheel.
	m.Box(Vec3{-0.2, 0.5, -0.2}, Vec3{0.2, 0.9, 0.2})
	m.Line(Vec3{0, 0.9, 0}, Vec3{0, 1.35, 0})
	for i := 0; i < 16; i++ {
		a0 := 2 * math.Pi * float64(i) / 16
		a1 := 2 * math.Pi * float64(i+1) / 16
		m.Line(Vec3{0.45 * math.Cos(a0), 1.35, 0.45 * math.Sin(a0)}, Vec3{0.45 * math.Cos(a1), 1.35, 0.45 * math.Sin(a1)})
	}
	return m
}

func brainScene(rng *rand.Rand) *Mesh {
	m := &Mesh{}
	ellipsoid(m, Vec3{}, 1.1, 0.8, 0.9, 5, 8)
	// Longitudinal fissure.
	m.Line(Vec3{0, 0.8, -0.9}, Vec3{0, 0.8, 0.9})
	for i := 0; i < neuralLinks; i++ {
		u := 0.1 + rng.Float64()*0.8
		v := 0.1 + rng.Float64()*0.8
		theta, phi := math.Pi*u, 2*math.Pi*v
		p := Vec3{1.1 * math.Sin(theta) * math.Cos(phi), 0.8 * math.Cos(theta), 0.9 * math.Sin(theta) * math.Sin(phi)}
		m.Dot(p)
		m.Line(p, p.Scale(1.2))
	}
	return m
}

func cerebellumScene(*rand.Rand) *Mesh {
	m := &Mesh{}
	ellipsoid(m, Vec3{-0.55, 0, 0}, 0.6, 0.45, 0.5, 6, 6)
	ellipsoid(m, Vec3{0.55, 0, 0}, 0.6, 0.45, 0.5, 6, 6)
	// Vermis joining the hemispheres.
	tube(m, Vec3{}, 0.15, -0.35, 0.35, 8)
	return m
}

func neuronScene(rng *rand.Rand) *Mesh {
	m := &Mesh{}
	ellipsoid(m, Vec3{}, 0.3, 0.3, 0.3, 4, 6)
	// Axon.
	m.Line(Vec3{0, -0.3, 0}, Vec3{0, -1.4, 0})
	for _, y := range []float64{-1.4} {
		for i := 0; i < 4; i++ {
			a := 2 * math.Pi * float64(i) / 4
			m.Line(Vec3{0, y, 0}, Vec3{0.3 * math.Cos(a), y - 0.2, 0.3 * math.Sin(a)})
		}
	}
	// Dendrites branch out from the upper soma.
	for i := 0; i < 5; i++ {
		a := 2*math.Pi*float64(i)/5 + rng.Float64()*0.4
		base := Vec3{0.25 * math.Cos(a), 0.2, 0.25 * math.Sin(a)}
		tip := Vec3{0.9 * math.Cos(a), 0.7 + rng.Float64()*0.5, 0.9 * math.Sin(a)}
		m.Line(base, tip)
		mid := base.Add(tip).Scale(0.5)
		m.Line(mid, mid.Add(Vec3{0.2 * math.Cos(a+1), 0.3, 0.2 * math.Sin(a+1)}))
	}
	return m
}
