// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions missing from the standard
// math package.
package mathx // import "github.com/probmath/go-probmath/mathx"

import (
	"fmt"
	"math"
)

func lgamma(x float64) float64 {
	y, _ := math.Lgamma(x)
	return y
}

// A ConvergenceError reports that an iterative numeric computation
// failed to converge within its iteration budget. Callers should treat
// the accompanying result as meaningless: a clear failure is preferable
// to a silently wrong probability.
type ConvergenceError struct {
	// Op is the computation that failed to converge.
	Op string

	// Iters is the iteration budget that was exhausted.
	Iters int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s failed to converge after %d iterations", e.Op, e.Iters)
}
