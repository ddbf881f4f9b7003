// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probmath/go-probmath/mathx"
)

// A HypergeometricDist is a hypergeometric distribution: the number of
// successes in a fixed number of draws, without replacement, from a
// population containing a known number of successes.
type HypergeometricDist struct {
	population int // N
	successes  int // K
	sample     int // n, the number of draws
}

// NewHypergeometricDist returns a hypergeometric distribution over
// sampleSize draws from a population of populationSize containing
// numberOfSuccesses successes. It fails with *InvalidParamError if
// populationSize <= 0, numberOfSuccesses < 0, or sampleSize < 0.
//
// Cross-parameter consistency is intentionally not checked:
// numberOfSuccesses or sampleSize larger than populationSize is
// accepted (matching each setter validating only its own parameter)
// and yields a degenerate domain with no mass.
func NewHypergeometricDist(populationSize, numberOfSuccesses, sampleSize int) (*HypergeometricDist, error) {
	d := new(HypergeometricDist)
	if err := d.SetPopulationSize(populationSize); err != nil {
		return nil, err
	}
	if err := d.SetNumberOfSuccesses(numberOfSuccesses); err != nil {
		return nil, err
	}
	if err := d.SetSampleSize(sampleSize); err != nil {
		return nil, err
	}
	return d, nil
}

// PopulationSize returns the population size.
func (d *HypergeometricDist) PopulationSize() int { return d.population }

// NumberOfSuccesses returns the number of successes in the population.
func (d *HypergeometricDist) NumberOfSuccesses() int { return d.successes }

// SampleSize returns the number of draws.
func (d *HypergeometricDist) SampleSize() int { return d.sample }

// SetPopulationSize sets the population size. It fails with
// *InvalidParamError if size <= 0, leaving the current value in place.
// Consistency with the other parameters is not checked.
func (d *HypergeometricDist) SetPopulationSize(size int) error {
	if size <= 0 {
		return &InvalidParamError{"population size", float64(size), "must be positive"}
	}
	d.population = size
	return nil
}

// SetNumberOfSuccesses sets the number of successes in the population.
// It fails with *InvalidParamError if num < 0, leaving the current
// value in place. Consistency with the other parameters is not
// checked.
func (d *HypergeometricDist) SetNumberOfSuccesses(num int) error {
	if num < 0 {
		return &InvalidParamError{"number of successes", float64(num), "must be non-negative"}
	}
	d.successes = num
	return nil
}

// SetSampleSize sets the number of draws. It fails with
// *InvalidParamError if size < 0, leaving the current value in place.
// Consistency with the other parameters is not checked.
func (d *HypergeometricDist) SetSampleSize(size int) error {
	if size < 0 {
		return &InvalidParamError{"sample size", float64(size), "must be non-negative"}
	}
	d.sample = size
	return nil
}

// bounds returns the inclusive integer domain of the variate,
// [max(0, K-(N-n)), min(n, K)], recomputed from the current
// parameters. Outside this interval the mass is exactly 0.
func (d *HypergeometricDist) bounds() (int, int) {
	return max(0, d.successes-(d.population-d.sample)), min(d.sample, d.successes)
}

// PMF is the probability of getting exactly int(k) successes in
// SampleSize draws without replacement from a population of
// PopulationSize that contains exactly NumberOfSuccesses successes.
//
// The mass is computed entirely in log space and exponentiated once,
// so the binomial coefficients never overflow for large populations.
func (d *HypergeometricDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	l, h := d.bounds()
	if ki < l || ki > h {
		return 0
	}
	return d.pmf(ki)
}

func (d *HypergeometricDist) pmf(k int) float64 {
	return math.Exp(mathx.Lchoose(d.successes, k) +
		mathx.Lchoose(d.population-d.successes, d.sample-k) -
		mathx.Lchoose(d.population, d.sample))
}

// CDF is the probability of getting int(k) or fewer successes. Below
// the domain it is exactly 0 and at or above the domain's upper bound
// it is exactly 1; in between it is the direct sum of the PMF from the
// lower bound up to k (this family has no closed-form CDF). The error
// is always nil; it is present to satisfy DistCommon.
func (d *HypergeometricDist) CDF(k float64) (float64, error) {
	ki := int(math.Floor(k))
	l, h := d.bounds()
	if ki < l {
		return 0, nil
	} else if ki >= h {
		return 1, nil
	}
	p := 0.0
	for i := l; i <= ki; i++ {
		p += d.pmf(i)
	}
	return p, nil
}

// InvCDF returns the smallest integer k (as a float64) such that
// CDF(k) >= p, for p in (0, 1). The domain is finite and fully known,
// so this accumulates the mass directly instead of bracketing.
func (d *HypergeometricDist) InvCDF(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		// Also rejects NaN.
		return nan, &OutOfRangeError{p}
	}
	l, h := d.bounds()
	sum := 0.0
	for k := l; k < h; k++ {
		sum += d.pmf(k)
		if sum >= p {
			return float64(k), nil
		}
	}
	return float64(h), nil
}

// DomainLowerBound returns the exact lower bound of the domain. The
// domain is fully known without searching, so the bound is independent
// of p.
func (d *HypergeometricDist) DomainLowerBound(p float64) float64 {
	l, _ := d.bounds()
	return float64(l)
}

// DomainUpperBound returns the exact upper bound of the domain,
// independent of p.
func (d *HypergeometricDist) DomainUpperBound(p float64) float64 {
	_, h := d.bounds()
	return float64(h)
}

// InitialDomain returns the distribution's mean.
func (d *HypergeometricDist) InitialDomain(p float64) float64 {
	return d.Mean()
}

func (d *HypergeometricDist) Step() float64 { return 1 }

// Mean returns the mean of the distribution, n·K/N.
func (d *HypergeometricDist) Mean() float64 {
	return float64(d.sample) * float64(d.successes) / float64(d.population)
}

// Variance returns the variance of the distribution. It is undefined
// for a population of 1.
func (d *HypergeometricDist) Variance() float64 {
	N, K, n := float64(d.population), float64(d.successes), float64(d.sample)
	return n * K * (N - K) * (N - n) / (N * N * (N - 1))
}
