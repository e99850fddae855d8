package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/akeil/plotter"
)

var factorLabels = map[plotter.Arity]string{
	plotter.NoFactors:  "canvas size",
	plotter.OneFactor:  "factor",
	plotter.TwoFactors: "x factor, y factor",
}

func doList() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Transformation\tParameters")
	fmt.Fprintln(w, "--------------\t----------")
	for _, t := range plotter.Transformations() {
		fmt.Fprintf(w, "%v\t%v\n", t, factorLabels[t.Arity()])
	}
	return w.Flush()
}
