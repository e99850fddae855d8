package plotter

import (
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/akeil/plotter/internal/logging"
)

// Drawing holds the points plotted during a session.
//
// A drawing is the state of one interactive caller. It is not safe for
// concurrent use; the transformation functions it calls are.
type Drawing struct {
	// ID identifies the drawing in log output.
	ID string
	// Canvas is the size of the drawing area, used for the mirrors.
	Canvas Canvas
	// Color is the color for newly added points.
	Color Color
	// Layers hold the points, the last layer receives new points.
	Layers []Layer
}

// Layer is an ordered sequence of points.
type Layer struct {
	Points []Point
}

// NewDrawing creates an empty drawing for the given canvas.
func NewDrawing(c Canvas) *Drawing {
	// A single empty layer is the minimum requirement for a usable drawing
	return &Drawing{
		ID:     uuid.New().String(),
		Canvas: c,
		Color:  Black,
		Layers: []Layer{
			Layer{},
		},
	}
}

// NumLayers returns the number of layers in the drawing.
func (d *Drawing) NumLayers() int {
	return len(d.Layers)
}

// NumPoints returns the number of points across all layers.
func (d *Drawing) NumPoints() int {
	n := 0
	for _, l := range d.Layers {
		n += len(l.Points)
	}
	return n
}

// AddLayer starts a new, empty layer.
func (d *Drawing) AddLayer() {
	d.Layers = append(d.Layers, Layer{})
}

// SetColor sets the color for points added from now on.
func (d *Drawing) SetColor(c Color) {
	d.Color = c
}

// Add appends a point to the topmost layer.
func (d *Drawing) Add(p Point) {
	if len(d.Layers) == 0 {
		d.AddLayer()
	}
	top := &d.Layers[len(d.Layers)-1]
	top.Points = append(top.Points, p)
}

// AddAt appends a point with the current color, e.g. a pointer sample.
func (d *Drawing) AddAt(x, y float32) {
	d.Add(NewPoint(x, y, d.Color))
}

// AddText parses the given coordinates and appends a point with the current
// color. Nothing is added if the text is not valid.
func (d *Drawing) AddText(x, y string) error {
	p, err := ParsePoint(x, y, d.Color)
	if err != nil {
		return err
	}
	d.Add(p)
	return nil
}

// Points returns all points, layer by layer.
func (d *Drawing) Points() []Point {
	all := make([]Point, 0, d.NumPoints())
	for _, l := range d.Layers {
		all = append(all, l.Points...)
	}
	return all
}

// Clear removes all points and layers.
func (d *Drawing) Clear() {
	logging.Info("Clear drawing %v (%d points)", d.ID, d.NumPoints())
	d.Layers = []Layer{
		Layer{},
	}
}

// Transform validates the given operation and replaces the points of every
// layer with their transformed counterparts.
//
// Absent factors are taken as zero. If the operation has no canvas, the
// canvas of the drawing is used. If validation fails, the drawing is not
// changed.
func (d *Drawing) Transform(op Op) error {
	if op.Canvas == (Canvas{}) {
		op.Canvas = d.Canvas
	}

	err := op.Validate()
	if err != nil {
		return err
	}
	op = op.Resolve()

	logging.Info("Transform drawing %v: %v on %d layers", d.ID, op, len(d.Layers))

	// Layers are independent; each goroutine reads one layer
	// and writes one slot of the result.
	result := make([][]Point, len(d.Layers))
	var group errgroup.Group
	for i, l := range d.Layers {
		i, points := i, l.Points
		group.Go(func() error {
			result[i] = op.Apply(points)
			return nil
		})
	}
	err = group.Wait()
	if err != nil {
		return err
	}

	for i := range d.Layers {
		d.Layers[i].Points = result[i]
	}
	return nil
}
