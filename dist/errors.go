// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
)

// ErrParam is the cause of every constructor error in this package.
// Test for it with errors.Is. The full error text names the
// distribution, the offending parameter, and the violated constraint:
//
//	_, err := dist.NewLomax(-1, 1)
//	// err: "Lomax: Lambda = -1, need Lambda > 0: invalid distribution parameter"
var ErrParam = errors.New("invalid distribution parameter")

const badPercentile = "dist: percentile out of bounds"

// checkPercentile panics unless p is a probability in [0, 1]. Every
// Quantile method calls it before doing any work.
func checkPercentile(p float64) {
	if !(p >= 0 && p <= 1) {
		panic(badPercentile)
	}
}

// checkPositive requires v > 0. A NaN v fails.
func checkPositive(dist, name string, v float64) error {
	if !(v > 0) {
		return errors.Wrapf(ErrParam, "%s: %s = %v, need %s > 0", dist, name, v, name)
	}
	if math.IsInf(v, 1) {
		return errors.Wrapf(ErrParam, "%s: %s = %v, need %s finite", dist, name, v, name)
	}
	return nil
}

// checkFinite requires v to be a finite real.
func checkFinite(dist, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Wrapf(ErrParam, "%s: %s = %v, need %s finite", dist, name, v, name)
	}
	return nil
}

// checkUnitOpen requires 0 < v < 1.
func checkUnitOpen(dist, name string, v float64) error {
	if !(v > 0 && v < 1) {
		return errors.Wrapf(ErrParam, "%s: %s = %v, need 0 < %s < 1", dist, name, v, name)
	}
	return nil
}

// checkUnitClosed requires 0 ≤ v ≤ 1.
func checkUnitClosed(dist, name string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return errors.Wrapf(ErrParam, "%s: %s = %v, need 0 <= %s <= 1", dist, name, v, name)
	}
	return nil
}

// checkLess requires lo < hi, for ordered parameter pairs such as
// interval endpoints.
func checkLess(dist, lo string, lov float64, hi string, hiv float64) error {
	if !(lov < hiv) {
		return errors.Wrapf(ErrParam, "%s: %s = %v, %s = %v, need %s < %s", dist, lo, lov, hi, hiv, lo, hi)
	}
	return nil
}

// firstErr returns the first non-nil error, so constructors can
// validate every parameter in one expression.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
