// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist provides additional univariate probability distributions
// that extend the families in gonum.org/v1/gonum/stat/distuv.
//
// Every distribution is an immutable value type whose exported fields
// are its parameters. Constructing a value with NewXxx validates the
// parameters and returns an error naming the violated constraint;
// constructing it as a struct literal skips validation, exactly as
// distuv literals do, and all methods then assume the parameters are
// valid. This is the deliberate performance opt-out: the choice is
// visible at the call site.
//
// Method names follow distuv so that generic code written against the
// distuv method sets (Rander, Quantiler, LogProber and friends) works on
// these types unchanged. Sampling draws from the Src field; a nil Src
// uses the global source of golang.org/x/exp/rand. Instances are safe
// for concurrent use by multiple goroutines except for Rand, which is
// only as safe as the Src it was given.
//
// Moments that do not exist for the given parameters are reported the
// way the literature reports them: NaN where the literature calls the
// moment undefined (the mean of a Lomax with Alpha ≤ 1, and every
// moment above a nonexistent one), +Inf or -Inf where it calls the
// moment infinite (the variance of a Yule with 1 < Rho ≤ 2). Each type
// documents its thresholds. Entropy and MGF are provided only on types
// with trustworthy closed forms; their absence from a type is
// deliberate.
package dist // import "github.com/aclements/go-moredist/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

const (
	ln2     = 0.693147180559945309417232121458176568
	sqrt2Pi = 2.50662827463100050241576528481104525
)
