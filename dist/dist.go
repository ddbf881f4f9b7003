// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// A DistCommon is a statistical distribution. DistCommon is a base
// interface provided by both continuous and discrete distributions.
type DistCommon interface {
	// CDF returns the cumulative probability Pr[X <= x].
	//
	// For continuous distributions, the CDF is the integral of
	// the PDF from -inf to x.
	//
	// For discrete distributions, the CDF is the sum of the PMF
	// at all defined points from -inf to x, inclusive. Note that
	// the CDF of a discrete distribution is defined for the whole
	// real line (unlike the PMF) but has discontinuities where
	// the PMF is non-zero.
	//
	// The CDF is a monotonically increasing function with a range
	// of [0, 1]. Arguments outside the mathematical domain never
	// fail; they evaluate to the boundary value 0 or 1. CDF
	// returns a non-nil error only when an underlying
	// special-function evaluation fails to converge, in which case
	// the returned probability is meaningless.
	CDF(x float64) (float64, error)
}

// A Dist is a continuous statistical distribution.
type Dist interface {
	DistCommon

	// InvCDF returns the smallest x such that CDF(x) >= p (also
	// known as the quantile function). The value of p must be in
	// (0, 1): the boundary values correspond to domain edges or
	// infinities and fail with *OutOfRangeError.
	InvCDF(p float64) (float64, error)
}

// A DiscreteDist is a discrete statistical distribution.
//
// Most discrete distributions are defined only at integral values of
// the random variable. However, some are defined at other intervals,
// so this interface takes a float64 value for the random variable.
// The probability mass function rounds down to the nearest defined
// point. Note that float64 values can exactly represent integer
// values between ±2**53, so this generally shouldn't be an issue for
// integer-valued distributions.
type DiscreteDist interface {
	DistCommon

	// PMF returns the value of the probability mass function
	// Pr[X = x'], where x' is x rounded down to the nearest
	// defined point on the distribution.
	PMF(x float64) float64

	// Step returns s, where the distribution is defined for sℕ.
	Step() float64
}

// A Bracketer supplies the domain hints the bracketing inverse-CDF
// solver needs: an interval known to contain the p'th quantile and a
// heuristic starting point inside it.
type Bracketer interface {
	// DomainLowerBound returns a domain value lo such that
	// CDF(lo) < p, or the exact lower edge of the domain if the
	// quantile can sit on it.
	DomainLowerBound(p float64) float64

	// DomainUpperBound returns a domain value hi such that
	// CDF(hi) >= p, or the exact upper edge of the domain.
	DomainUpperBound(p float64) float64

	// InitialDomain returns a heuristic starting point used to
	// accelerate convergence. It may be degenerate (NaN, infinite,
	// or outside the bracket); the solver must still converge via
	// the bracket alone.
	InitialDomain(p float64) float64
}
