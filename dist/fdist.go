// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probmath/go-probmath/mathx"
)

// An FDist is an F-distribution (Fisher–Snedecor distribution): the
// distribution of the ratio of two scaled chi-squared variates with
// the given degrees of freedom. Its variate is supported on [0, +inf).
type FDist struct {
	n, m float64
}

// NewFDist returns an F-distribution with the given numerator and
// denominator degrees of freedom. It fails with *InvalidParamError if
// either is not strictly positive.
func NewFDist(numeratorDF, denominatorDF float64) (*FDist, error) {
	d := new(FDist)
	if err := d.SetNumeratorDF(numeratorDF); err != nil {
		return nil, err
	}
	if err := d.SetDenominatorDF(denominatorDF); err != nil {
		return nil, err
	}
	return d, nil
}

// NumeratorDF returns the numerator degrees of freedom.
func (d *FDist) NumeratorDF() float64 { return d.n }

// DenominatorDF returns the denominator degrees of freedom.
func (d *FDist) DenominatorDF() float64 { return d.m }

// SetNumeratorDF sets the numerator degrees of freedom. It fails with
// *InvalidParamError if df <= 0, leaving the current value in place.
func (d *FDist) SetNumeratorDF(df float64) error {
	if df <= 0 {
		return &InvalidParamError{"numerator degrees of freedom", df, "must be positive"}
	}
	d.n = df
	return nil
}

// SetDenominatorDF sets the denominator degrees of freedom. It fails
// with *InvalidParamError if df <= 0, leaving the current value in
// place.
func (d *FDist) SetDenominatorDF(df float64) error {
	if df <= 0 {
		return &InvalidParamError{"denominator degrees of freedom", df, "must be positive"}
	}
	d.m = df
	return nil
}

// CDF returns the cumulative probability Pr[X <= x].
//
// For x <= 0 this is exactly 0. Otherwise the substitution
// t = n·x/(m + n·x) maps x onto the support of the regularized
// incomplete beta function, giving Iₜ(n/2, m/2) (MathWorld,
// "F-Distribution", eq. 4). Convergence failures from the beta
// evaluation propagate unchanged.
func (d *FDist) CDF(x float64) (float64, error) {
	if x <= 0 {
		return 0, nil
	}
	// Evaluate the substitution as 1/(1 + m/(n·x)): the direct
	// form overflows n·x to +Inf near the top of the float64
	// range, turning t into NaN. This form saturates to exactly 1
	// instead, which the solver relies on when it probes the upper
	// end of the bracket.
	t := 1 / (1 + d.m/(d.n*x))
	return mathx.BetaInc(t, d.n/2, d.m/2)
}

// InvCDF returns the smallest x such that CDF(x) >= p, for p in
// (0, 1), by root bracketing on the CDF.
func (d *FDist) InvCDF(p float64) (float64, error) {
	return InvCDF(d, p)
}

// DomainLowerBound returns the lower end of the quantile bracket. The
// variate is supported on [0, +inf), so this is always 0.
func (d *FDist) DomainLowerBound(p float64) float64 { return 0 }

// DomainUpperBound returns the upper end of the quantile bracket: the
// largest representable value, since the support is unbounded above.
func (d *FDist) DomainUpperBound(p float64) float64 { return math.MaxFloat64 }

// InitialDomain returns the distribution's mean m/(m-2) as the
// bracketing starting point. For m <= 2 the mean is undefined and the
// guess is degenerate; the solver falls back to the bracket.
func (d *FDist) InitialDomain(p float64) float64 {
	return d.m / (d.m - 2)
}

// Mean returns the mean of the distribution. It is only defined for
// DenominatorDF > 2; otherwise Mean returns NaN.
func (d *FDist) Mean() float64 {
	if d.m <= 2 {
		return nan
	}
	return d.m / (d.m - 2)
}

// Variance returns the variance of the distribution. It is only
// defined for DenominatorDF > 4; otherwise Variance returns NaN.
func (d *FDist) Variance() float64 {
	if d.m <= 4 {
		return nan
	}
	return 2 * d.m * d.m * (d.n + d.m - 2) /
		(d.n * (d.m - 2) * (d.m - 2) * (d.m - 4))
}
