package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/plotter"
)

type settings struct {
	canvas   plotter.Canvas
	color    plotter.Color
	logLevel string
}

func main() {
	app := kingpin.New("plotter", "Apply geometric transformations to 2D points")
	app.HelpFlag.Short('h')

	var (
		canvasArg = app.Flag("canvas", "Canvas size as WIDTHxHEIGHT, used by the mirrors").Envar("PLOTTER_CANVAS").Default("800x600").String()
		colorArg  = app.Flag("color", "Color for the points, a name or #RRGGBB / #AARRGGBB").Envar("PLOTTER_COLOR").Default("black").String()
		logLevel  = app.Flag("log-level", "Log level (debug, info, warning, error, none)").Envar("PLOTTER_LOG_LEVEL").Default("warning").String()
	)

	app.Command("transformations", "List the available transformations").Alias("ls").Default()

	apply := app.Command("apply", "Transform points and print the result")
	var (
		name   = apply.Arg("transformation", "Name of the transformation, e.g. scale or mirror-x").Required().String()
		points = apply.Arg("points", "Points as x,y").Strings()
		layers = apply.Flag("layer", "Additional layer, a whitespace separated list of x,y points").Short('l').Strings()
		xArg   = apply.Flag("x", "X factor").Short('x').String()
		yArg   = apply.Flag("y", "Y factor").Short('y').String()
		fArg   = apply.Flag("factor", "Factor for transformations with a single factor").Short('f').String()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	s, err := loadSettings(*canvasArg, *colorArg, *logLevel)
	if err == nil {
		switch command {
		case "transformations":
			err = doList()
		case "apply":
			err = doApply(s, *name, *points, *layers, *xArg, *yArg, *fArg)
		default:
			err = fmt.Errorf("unknown command: %q", command)
		}
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func loadSettings(canvas, color, logLevel string) (settings, error) {
	var s settings

	c, err := parseCanvas(canvas)
	if err != nil {
		return s, err
	}
	s.canvas = c

	col, err := plotter.ParseColor(color)
	if err != nil {
		return s, err
	}
	s.color = col

	s.logLevel = logLevel
	plotter.SetLogLevel(logLevel)

	return s, nil
}

// parseCanvas reads a canvas size like "800x600".
func parseCanvas(s string) (plotter.Canvas, error) {
	var c plotter.Canvas
	var rest string
	n, _ := fmt.Sscanf(strings.ToLower(s), "%dx%d%s", &c.Width, &c.Height, &rest)
	if n != 2 || c.Width <= 0 || c.Height <= 0 {
		return plotter.Canvas{}, fmt.Errorf("invalid canvas size %q, expected WIDTHxHEIGHT", s)
	}
	return c, nil
}
