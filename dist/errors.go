// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "fmt"

// An InvalidParamError reports a distribution parameter that violates
// its invariant. Parameters are validated on construction and on every
// mutation; invalid values are rejected, never silently clamped.
type InvalidParamError struct {
	// Param is the name of the offending parameter.
	Param string

	// Value is the rejected value.
	Value float64

	// Cond describes the violated condition.
	Cond string
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Cond)
}

// An OutOfRangeError reports a requested cumulative probability
// outside (0, 1). The boundary quantiles are domain edges or
// infinities and are not solvable by bracketing.
type OutOfRangeError struct {
	// P is the requested cumulative probability.
	P float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cumulative probability %v out of range (0, 1)", e.P)
}
