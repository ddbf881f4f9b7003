// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"github.com/probmath/go-probmath/internal/mathtest"
)

var aeq = mathtest.Aeq
var testFunc = mathtest.WantFunc

// cdfFunc adapts dist's CDF to a plain float64 function, failing the
// test on any CDF error.
func cdfFunc(t *testing.T, dist DistCommon) func(float64) float64 {
	return func(x float64) float64 {
		p, err := dist.CDF(x)
		if err != nil {
			t.Fatalf("CDF(%v): %v", x, err)
		}
		return p
	}
}

// testDiscreteCDF checks that dist's CDF over [l, h] matches the
// running sum of its PMF.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist, l, h float64) {
	s := dist.Step()
	want := map[float64]float64{l - 0.1: 0, h: 1}
	sum := 0.0
	for x := l; x < h; x += s {
		sum += dist.PMF(x)
		want[x] = sum
		want[x+s/2] = sum
	}

	testFunc(t, name, cdfFunc(t, dist), want)
}
