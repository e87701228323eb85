package export

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/eduvision/internal/catalog"
	"github.com/san-kum/eduvision/internal/viz"
)

// RenderOptions controls how a model is drawn before export.
type RenderOptions struct {
	Width, Height int
	Scale         int
	Zoom          float64
	Dimensions    bool
	Seed          int64
	Theme         viz.Theme
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Width <= 0 {
		o.Width = 60
	}
	if o.Height <= 0 {
		o.Height = 20
	}
	if o.Scale <= 0 {
		o.Scale = 6
	}
	if o.Zoom == 0 {
		o.Zoom = 1
	}
	if o.Theme.Name == "" {
		o.Theme = viz.GetTheme("")
	}
	return o
}

// Render draws the scene for id and writes it as SVG. It returns the number
// of lit dots.
func Render(w io.Writer, id string, opts RenderOptions) (int, error) {
	opts = opts.withDefaults()
	mesh, ok := viz.Scene(id, rand.New(rand.NewSource(opts.Seed)))
	if !ok {
		return 0, fmt.Errorf("%w: %s", catalog.ErrUnknownModel, id)
	}
	cam := viz.NewCamera()
	cam.Zoom = opts.Zoom
	canvas := viz.NewCanvas(opts.Width, opts.Height)
	viz.DrawModel(canvas, mesh, cam, opts.Dimensions)
	if err := CanvasToSVG(w, canvas, opts.Theme, opts.Scale); err != nil {
		return 0, err
	}
	return canvas.Lit(), nil
}

// RenderFile renders id into path.
func RenderFile(path, id string, opts RenderOptions) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	lit, err := Render(f, id, opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return lit, err
}

// Batch renders every entry into dir as <id>.svg, at most one goroutine per
// CPU. Paths are returned in entry order. The first failure cancels the rest.
func Batch(ctx context.Context, dir string, entries []catalog.Entry, opts RenderOptions) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	paths := make([]string, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, e.ID+".svg")
			if _, err := RenderFile(path, e.ID, opts); err != nil {
				return fmt.Errorf("%s: %w", e.ID, err)
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
