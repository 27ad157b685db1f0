// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestZINegativeBinomial(t *testing.T) {
	d := ZINegativeBinomial{R: 2, P: 0.5, Pi: 0.3}
	testFunc(t, fmt.Sprintf("%+v.Prob", d), d.Prob, map[float64]float64{
		0: 0.475, 1: 0.175, 2: 0.13124999999999998, 3: 0.0875,
		5: 0.032812499999999994, 8: 0.00615234375})
	testFunc(t, fmt.Sprintf("%+v.CDF", d), d.CDF, map[float64]float64{
		0: 0.475, 1: 0.6499999999999999, 2: 0.7812499999999999,
		3: 0.8687499999999999, 5: 0.9562499999999999, 8: 0.99248046875})
	testMoments(t, "ZINegativeBinomial{2, 0.5, 0.3}", d,
		1.4, 3.64, 1.838530329019979, 4.355029585798824)
	testFunc(t, fmt.Sprintf("%+v.MGF", d), d.MGF, map[float64]float64{
		-1: 0.562780762993409, 0: 1, 0.5: 5.9727590040102205})
	// The MGF diverges at t = -log(1-P) = log 2.
	if got := d.MGF(0.7); !math.IsInf(got, 1) {
		t.Errorf("MGF(0.7) = %v, want +Inf", got)
	}
	// Pi = 1 is a point mass at zero, so its MGF is 1 for every t,
	// even past the base divergence point.
	zeroes := ZINegativeBinomial{R: 2, P: 0.5, Pi: 1}
	for _, s := range []float64{-1, 0.7, 40} {
		if got := zeroes.MGF(s); got != 1 {
			t.Errorf("ZINegativeBinomial{2, 0.5, 1}.MGF(%v) = %v, want 1", s, got)
		}
	}
	if got := d.Median(); got != 1 {
		t.Errorf("Median() = %v, want 1", got)
	}
	if got := d.Mode(); got != 0 {
		t.Errorf("Mode() = %v, want 0", got)
	}
	testDiscreteCDF(t, "ZINegativeBinomial{2, 0.5, 0.3}.CDF", d)

	d.Src = rand.NewSource(1)
	checkDist(t, "ZINegativeBinomial{2, 0.5, 0.3}", d)
	d2 := ZINegativeBinomial{R: 5, P: 0.7, Pi: 0.1, Src: rand.NewSource(2)}
	checkDist(t, "ZINegativeBinomial{5, 0.7, 0.1}", d2)
}

func TestNewZINegativeBinomial(t *testing.T) {
	if _, err := NewZINegativeBinomial(2, 0.5, 0.3); err != nil {
		t.Errorf("NewZINegativeBinomial(2, 0.5, 0.3) = %v", err)
	}
	if _, err := NewZINegativeBinomial(2, 0.5, 0); err != nil {
		t.Errorf("NewZINegativeBinomial(2, 0.5, 0) = %v", err)
	}
	bad := []struct{ r, p, pi float64 }{
		{0, 0.5, 0.3},
		{-2, 0.5, 0.3},
		{2, 0, 0.3},
		{2, 1, 0.3},
		{2, math.NaN(), 0.3},
		{2, 0.5, -0.1},
		{2, 0.5, 1.1},
		{2, 0.5, math.NaN()},
	}
	for _, c := range bad {
		if _, err := NewZINegativeBinomial(c.r, c.p, c.pi); !errors.Is(err, ErrParam) {
			t.Errorf("NewZINegativeBinomial(%v, %v, %v) = %v, want ErrParam",
				c.r, c.p, c.pi, err)
		}
	}
}
