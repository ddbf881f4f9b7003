// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mathext"

	"github.com/probmath/go-probmath/internal/mathtest"
)

func betaInc(t *testing.T, x, a, b float64) float64 {
	t.Helper()
	y, err := BetaInc(x, a, b)
	if err != nil {
		t.Fatalf("BetaInc(%v, %v, %v): %v", x, a, b, err)
	}
	return y
}

func TestBeta(t *testing.T) {
	mathtest.WantFunc(t, "Beta(%v, 1)",
		func(a float64) float64 { return Beta(a, 1) },
		map[float64]float64{1: 1, 2: 0.5, 4: 0.25})
	if want, got := 1.0/12, Beta(2, 3); !mathtest.Aeq(want, got) {
		t.Errorf("want Beta(2, 3)=%v, got %v", want, got)
	}
	if want, got := math.Pi, Beta(0.5, 0.5); !mathtest.Aeq(want, got) {
		t.Errorf("want Beta(0.5, 0.5)=%v, got %v", want, got)
	}
}

func TestBetaInc(t *testing.T) {
	// I_x(1, 1) is the identity on [0, 1] and NaN outside it.
	mathtest.WantFunc(t, "BetaInc(%v, 1, 1)",
		func(x float64) float64 { return betaInc(t, x, 1, 1) },
		map[float64]float64{
			-0.5: math.NaN(),
			0:    0,
			0.25: 0.25,
			0.5:  0.5,
			1:    1,
			1.5:  math.NaN(),
		})

	// I_x(a, 1) = xᵃ and I_x(1, b) = 1-(1-x)ᵇ.
	for _, x := range []float64{0.1, 0.3, 0.7, 0.9} {
		if want, got := math.Pow(x, 3.5), betaInc(t, x, 3.5, 1); !mathtest.Aeq(want, got) {
			t.Errorf("want BetaInc(%v, 3.5, 1)=%v, got %v", x, want, got)
		}
		if want, got := 1-math.Pow(1-x, 2.5), betaInc(t, x, 1, 2.5); !mathtest.Aeq(want, got) {
			t.Errorf("want BetaInc(%v, 1, 2.5)=%v, got %v", x, want, got)
		}
	}

	// Symmetry: I_0.5(a, a) = 0.5.
	for _, a := range []float64{0.5, 1, 2.5, 10, 100} {
		if got := betaInc(t, 0.5, a, a); !mathtest.Aeq(0.5, got) {
			t.Errorf("want BetaInc(0.5, %v, %v)=0.5, got %v", a, a, got)
		}
	}
}

func TestBetaIncGonum(t *testing.T) {
	// gonum's mathext implementation is the independent oracle.
	for _, a := range []float64{0.5, 1, 2.5, 5, 20} {
		for _, b := range []float64{0.5, 1, 2.5, 5, 20} {
			for _, x := range []float64{0.01, 0.1, 0.5, 0.9, 0.99} {
				want := mathext.RegIncBeta(a, b, x)
				if got := betaInc(t, x, a, b); !mathtest.Aeq(want, got) {
					t.Errorf("want BetaInc(%v, %v, %v)=%v, got %v", x, a, b, want, got)
				}
			}
		}
	}
}
