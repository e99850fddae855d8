package main

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/plotter"
)

func doApply(s settings, name string, points, layers []string, xArg, yArg, fArg string) error {
	t, err := plotter.ParseTransformation(name)
	if err != nil {
		return err
	}

	op, err := buildOp(t, xArg, yArg, fArg)
	if err != nil {
		return err
	}

	d := plotter.NewDrawing(s.canvas)
	d.SetColor(s.color)

	// positional points go into the first layer, each --layer adds another
	parsed, err := parseLayers(append([]string{strings.Join(points, " ")}, layers...), s.color)
	if err != nil {
		return err
	}
	for i, l := range parsed {
		if i > 0 {
			d.AddLayer()
		}
		for _, p := range l {
			d.Add(p)
		}
	}

	err = d.Transform(op)
	if err != nil {
		return err
	}

	for i, l := range d.Layers {
		if i > 0 {
			fmt.Println()
		}
		for _, p := range l.Points {
			fmt.Println(formatPoint(p))
		}
	}

	return nil
}

// buildOp collects the factors for the given transformation.
// --factor is an alias for --x with single factor transformations.
func buildOp(t plotter.Transformation, xArg, yArg, fArg string) (plotter.Op, error) {
	op := plotter.Op{Transformation: t}

	if fArg != "" {
		if !t.HasOneFactor() {
			return op, fmt.Errorf("%v does not take a single factor, use --x and --y", t)
		}
		if xArg != "" {
			return op, fmt.Errorf("use either --factor or --x")
		}
		xArg = fArg
	}

	x, err := plotter.ParseFactor(xArg)
	if err != nil {
		return op, plotter.Wrap(err, "invalid x factor")
	}
	y, err := plotter.ParseFactor(yArg)
	if err != nil {
		return op, plotter.Wrap(err, "invalid y factor")
	}

	op.X = x
	op.Y = y
	return op, nil
}

// parseLayers parses each layer spec concurrently.
// The first error aborts.
func parseLayers(specs []string, c plotter.Color) ([][]plotter.Point, error) {
	result := make([][]plotter.Point, len(specs))

	var group errgroup.Group
	for i, spec := range specs {
		i, spec := i, spec
		group.Go(func() error {
			points, err := parseLayer(spec, c)
			if err != nil {
				return plotter.Wrap(err, "layer %d", i+1)
			}
			result[i] = points
			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}
	return result, nil
}

// parseLayer reads a whitespace separated list of "x,y" pairs.
func parseLayer(spec string, c plotter.Color) ([]plotter.Point, error) {
	fields := strings.Fields(spec)
	points := make([]plotter.Point, 0, len(fields))
	for _, f := range fields {
		parts := strings.Split(f, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid point %q, expected x,y", f)
		}

		p, err := plotter.ParsePoint(parts[0], parts[1], c)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func formatPoint(p plotter.Point) string {
	return fmt.Sprintf("%v %v %v", p.X(), p.Y(), p.Color().Hex())
}
