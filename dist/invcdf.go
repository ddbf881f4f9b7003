// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probmath/go-probmath/mathx"
)

// A BracketedDist is a distribution whose inverse CDF can be computed
// generically by root bracketing on its CDF.
type BracketedDist interface {
	DistCommon
	Bracketer
}

const (
	// invCDFTol is the bracket-width convergence tolerance,
	// applied relative to the magnitude of the quantile.
	invCDFTol = 1e-9

	// invCDFMaxIters bounds both the bracket-growth and the
	// bisection phases, so a pathological or non-monotone CDF
	// fails instead of looping forever.
	invCDFMaxIters = 200
)

// InvCDF returns the smallest domain value x such that d.CDF(x) >= p,
// within a fixed tolerance.
//
// p must be in (0, 1); other values fail with *OutOfRangeError. The
// CDF is never evaluated outside [d.DomainLowerBound(p),
// d.DomainUpperBound(p)]. If the search exhausts its iteration budget,
// InvCDF fails with *mathx.ConvergenceError. Errors from the CDF
// itself propagate unchanged.
func InvCDF(d BracketedDist, p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		// Also rejects NaN.
		return nan, &OutOfRangeError{p}
	}

	lo, hi := d.DomainLowerBound(p), d.DomainUpperBound(p)
	flo, err := d.CDF(lo)
	if err != nil {
		return nan, err
	}
	if flo >= p {
		// The lower bound already satisfies p. This handles
		// point masses and the left edge of discrete domains.
		return lo, nil
	}
	fhi, err := d.CDF(hi)
	if err != nil {
		return nan, err
	}
	if fhi < p {
		// The bracket cannot contain the quantile; the upper
		// bound is the closest satisfiable answer. Equality
		// proceeds into bisection, which may find a smaller
		// satisfying x.
		return hi, nil
	}

	// Establish a finite bracket [blo, bhi] with
	// CDF(blo) < p <= CDF(bhi), starting from the distribution's
	// guess. The guess may be degenerate; fall back to a point
	// just inside the domain.
	x := d.InitialDomain(p)
	if math.IsNaN(x) || x <= lo || x >= hi {
		x = math.Min(lo+1, lo+(hi-lo)/2)
	}
	fx, err := d.CDF(x)
	if err != nil {
		return nan, err
	}
	blo, bhi := lo, hi
	if fx >= p {
		bhi = x
	} else {
		// Grow the upper end toward hi until the bracket
		// crosses p. The step accelerates (its growth factor
		// itself doubles each pass), so the whole float64 range
		// is spanned in under 50 passes even from a tiny
		// starting point; only a CDF that never reaches p can
		// exhaust the budget.
		blo = x
		step := math.Max(x-lo, 1)
		fac := 2.0
		for i := 0; ; i++ {
			if i >= invCDFMaxIters {
				return nan, &mathx.ConvergenceError{Op: "inverse CDF bracketing", Iters: invCDFMaxIters}
			}
			x = math.Min(x+step, hi)
			step *= fac
			fac *= 2
			fx, err = d.CDF(x)
			if err != nil {
				return nan, err
			}
			if fx >= p {
				bhi = x
				break
			}
			if x == hi {
				// CDF(hi) > p held above, so the CDF is
				// not monotone.
				return nan, &mathx.ConvergenceError{Op: "inverse CDF bracketing", Iters: i}
			}
			blo = x
		}
	}

	// Bisect. The invariant CDF(blo) < p <= CDF(bhi) means bhi
	// converges on the smallest x satisfying p.
	for i := 0; i < invCDFMaxIters; i++ {
		if bhi-blo <= invCDFTol*(1+math.Abs(bhi)) {
			return bhi, nil
		}
		mid := blo + (bhi-blo)/2
		if mid <= blo || mid >= bhi {
			// The bracket cannot be narrowed further in
			// float64.
			return bhi, nil
		}
		fmid, err := d.CDF(mid)
		if err != nil {
			return nan, err
		}
		if fmid >= p {
			bhi = mid
		} else {
			blo = mid
		}
	}
	return nan, &mathx.ConvergenceError{Op: "inverse CDF bisection", Iters: invCDFMaxIters}
}
