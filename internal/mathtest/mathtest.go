// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathtest provides helpers for testing numeric functions.
package mathtest

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// Aeq returns whether expect and got are equal to within a small
// absolute or relative tolerance.
func Aeq(expect, got float64) bool {
	if expect == got {
		// Covers infinities and exact values.
		return true
	}
	return scalar.EqualWithinAbsOrRel(expect, got, 1e-5, 1e-5)
}

// WantFunc checks that f(x) is Aeq to want for each x => want in vals,
// in increasing order of x. If name contains "%v", it is used as a
// format string for the failure label; otherwise the label is
// "name(x)".
func WantFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()

	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || Aeq(want, got) {
			continue
		}
		var label string
		if strings.Contains(name, "%v") {
			label = fmt.Sprintf(name, x)
		} else {
			label = fmt.Sprintf("%s(%v)", name, x)
		}
		t.Errorf("want %s=%v, got %v", label, want, got)
	}
}
