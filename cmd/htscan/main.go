// Command htscan samples H_t(x) on a uniform grid of real x and prints
// the values together with the quadrature error estimates. Sign changes
// of Re H_t are reported as brackets; the tool only scans, it does not
// refine roots.
//
// Usage:
//
//	htscan [flags]
//
// Examples:
//
//	htscan -t 0 -from 28 -to 28.5 -steps 50
//	htscan -t -0.5 -from 0 -to 40 -steps 200 -nmax 200
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/ferstp/dbn-upper-bound/dbn/series"
	"github.com/ferstp/dbn-upper-bound/dbn/transform"
)

func main() {
	tParam := flag.Float64("t", 0, "time parameter t of the transform")
	from := flag.Float64("from", 28, "start of the x grid")
	to := flag.Float64("to", 28.5, "end of the x grid")
	steps := flag.Int("steps", 50, "number of grid intervals")
	nmax := flag.Int("nmax", series.DefaultTruncation, "kernel series truncation length")
	upper := flag.Float64("upper", 10, "integration cutoff")
	quiet := flag.Bool("q", false, "print sign-change brackets only")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: htscan [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Samples H_t(x) on a uniform grid and reports sign changes of Re H_t.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  htscan -t 0 -from 28 -to 28.5 -steps 50\n")
		fmt.Fprintf(os.Stderr, "  htscan -t -0.5 -from 0 -to 40 -steps 200 -nmax 200\n")
	}
	flag.Parse()

	if *steps < 1 {
		fmt.Fprintf(os.Stderr, "error: steps must be positive\n")
		os.Exit(2)
	}
	if !(*from < *to) {
		fmt.Fprintf(os.Stderr, "error: need from < to\n")
		os.Exit(2)
	}

	opts := []transform.Option{
		transform.WithTruncation(*nmax),
		transform.WithUpperLimit(*upper),
	}

	grid := floats.Span(make([]float64, *steps+1), *from, *to)

	var tw *tabwriter.Writer
	if !*quiet {
		tw = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "x\tRe H_t\terror est\t")
	}

	prev := math.NaN()
	brackets := 0
	for i, x := range grid {
		res, err := transform.Ht64(*tParam, complex(x, 0), opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: H_%g(%g): %v\n", *tParam, x, err)
			os.Exit(1)
		}

		v := real(res.Value)
		if tw != nil {
			fmt.Fprintf(tw, "%.6f\t%+.12e\t%.2e\t\n", x, v, res.ErrEst)
		}

		if i > 0 && !math.IsNaN(prev) && math.Signbit(v) != math.Signbit(prev) {
			if tw != nil {
				tw.Flush()
			}
			fmt.Printf("sign change of Re H_%g in [%.6f, %.6f]\n", *tParam, grid[i-1], x)
			brackets++
		}
		prev = v
	}

	if tw != nil {
		tw.Flush()
	}
	if brackets == 0 {
		fmt.Printf("no sign change of Re H_%g in [%g, %g]\n", *tParam, *from, *to)
	}
}
