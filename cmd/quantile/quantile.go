// quantile evaluates distribution functions for a parametric
// distribution: the CDF (and PMF, for discrete families) at a point,
// or the p'th quantile.
//
// Usage:
//
//	quantile -dist f -ndf 5 -mdf 10 -p 0.95
//	quantile -dist hyperg -N 50 -K 5 -n 10 -x 4
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/probmath/go-probmath/dist"
)

var (
	family = flag.String("dist", "f", "distribution family: f or hyperg")

	ndf = flag.Float64("ndf", 1, "numerator degrees of freedom (f)")
	mdf = flag.Float64("mdf", 1, "denominator degrees of freedom (f)")

	popSize    = flag.Int("N", 1, "population size (hyperg)")
	successes  = flag.Int("K", 0, "successes in the population (hyperg)")
	sampleSize = flag.Int("n", 0, "sample size (hyperg)")

	x = flag.Float64("x", math.NaN(), "point at which to evaluate the CDF (and PMF)")
	p = flag.Float64("p", math.NaN(), "cumulative probability at which to evaluate the quantile")
)

func main() {
	flag.Parse()
	if math.IsNaN(*x) && math.IsNaN(*p) {
		fmt.Fprintln(os.Stderr, "must give at least one of -x and -p")
		flag.Usage()
		os.Exit(2)
	}

	var d dist.Dist
	var pmf func(float64) float64
	var err error
	switch *family {
	case "f":
		d, err = dist.NewFDist(*ndf, *mdf)
	case "hyperg":
		var h *dist.HypergeometricDist
		h, err = dist.NewHypergeometricDist(*popSize, *successes, *sampleSize)
		d, pmf = h, h.PMF
	default:
		fmt.Fprintf(os.Stderr, "unknown distribution family %q\n", *family)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !math.IsNaN(*x) {
		cdf, err := d.CDF(*x)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("CDF(%g) = %g\n", *x, cdf)
		if pmf != nil {
			fmt.Printf("PMF(%g) = %g\n", *x, pmf(*x))
		}
	}
	if !math.IsNaN(*p) {
		q, err := d.InvCDF(*p)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("InvCDF(%g) = %g\n", *p, q)
	}
}
