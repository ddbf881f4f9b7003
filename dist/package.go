// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist provides exact evaluation of parametric probability
// distributions: cumulative distribution functions, probability
// density/mass functions, and inverse CDFs via root bracketing.
//
// The values computed here feed hypothesis tests and confidence
// interval computations, so numeric failures are surfaced as errors
// rather than approximated away: a wrong quantile is worse than a
// clear failure.
//
// Distribution values are mutable via their setters and are not
// internally synchronized. Concurrent read-only queries are safe;
// mutating parameters while another goroutine queries is a data race.
package dist // import "github.com/probmath/go-probmath/dist"

import "math"

var nan = math.NaN()
