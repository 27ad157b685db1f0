// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Choose returns the binomial coefficient of n and k.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	c := math.Exp(LogChoose(n, k))
	if c < 1e15 {
		// Exactly representable, so round off the error from
		// going through logs.
		return math.Round(c)
	}
	return c
}

// LogChoose returns the natural logarithm of the binomial coefficient
// of n and k. Unlike Choose, it does not overflow for large n.
func LogChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	a, _ := math.Lgamma(float64(n) + 1)
	b, _ := math.Lgamma(float64(k) + 1)
	c, _ := math.Lgamma(float64(n-k) + 1)
	return a - b - c
}
