// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestGaussKuzmin(t *testing.T) {
	d := NewGaussKuzmin()
	testFunc(t, "GaussKuzmin.Prob", d.Prob, map[float64]float64{
		1: 0.4150374992788438, 2: 0.16992500144231246, 3: 0.09310940439148147,
		5: 0.04064198449734593, 10: 0.011972641666075944,
		100: 0.00014143375736913193})
	testFunc(t, "GaussKuzmin.CDF", d.CDF, map[float64]float64{
		1: 0.4150374992788438, 2: 0.5849625007211563, 3: 0.6780719051126376,
		5: 0.777607578663552, 10: 0.8744691179161412, 100: 0.9857861407802991})
	// The 1/k² tail leaves no finite moments at all.
	nan := math.NaN()
	testMoments(t, "GaussKuzmin", d, nan, nan, nan, nan)
	if got := d.StdDev(); !math.IsNaN(got) {
		t.Errorf("StdDev() = %v, want NaN", got)
	}
	if got := d.Median(); got != 2 {
		t.Errorf("Median() = %v, want 2", got)
	}
	if got := d.Mode(); got != 1 {
		t.Errorf("Mode() = %v, want 1", got)
	}
	if got := d.Quantile(1); !math.IsInf(got, 1) {
		t.Errorf("Quantile(1) = %v, want +Inf", got)
	}
	if got := d.NumParameters(); got != 0 {
		t.Errorf("NumParameters() = %v, want 0", got)
	}
	testDiscreteCDF(t, "GaussKuzmin.CDF", d)

	d.Src = rand.NewSource(1)
	checkDist(t, "GaussKuzmin", d)
}
