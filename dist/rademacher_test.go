// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestRademacher(t *testing.T) {
	d := NewRademacher()
	testFunc(t, "Rademacher.Prob", d.Prob, map[float64]float64{
		-2: 0, -1: 0.5, -0.5: 0, 0: 0, 0.5: 0, 1: 0.5, 2: 0})
	testFunc(t, "Rademacher.CDF", d.CDF, map[float64]float64{
		-2: 0, -1: 0.5, 0: 0.5, 0.999: 0.5, 1: 1, 2: 1})
	testFunc(t, "Rademacher.Survival", d.Survival, map[float64]float64{
		-2: 1, -1: 0.5, 0: 0.5, 1: 0, 2: 0})
	testMoments(t, "Rademacher", d, 0, 1, 0, -2)
	if got := d.Quantile(0); got != -1 {
		t.Errorf("Quantile(0) = %v, want -1", got)
	}
	if got := d.Quantile(0.5); got != -1 {
		t.Errorf("Quantile(0.5) = %v, want -1", got)
	}
	if got := d.Quantile(0.50001); got != 1 {
		t.Errorf("Quantile(0.50001) = %v, want 1", got)
	}
	if got := d.Quantile(1); got != 1 {
		t.Errorf("Quantile(1) = %v, want 1", got)
	}
	if got := d.Median(); got != -1 {
		t.Errorf("Median() = %v, want -1", got)
	}
	if got := d.Mode(); !math.IsNaN(got) {
		t.Errorf("Mode() = %v, want NaN", got)
	}
	if got := d.Entropy(); !aeq(ln2, got) {
		t.Errorf("Entropy() = %v, want ln 2", got)
	}
	testFunc(t, "Rademacher.MGF", d.MGF, map[float64]float64{
		-2: math.Cosh(2), -0.5: math.Cosh(0.5), 0: 1, 1: math.Cosh(1)})
	testDiscreteCDF(t, "Rademacher.CDF", d)

	d.Src = rand.NewSource(1)
	checkDist(t, "Rademacher", d)
}
