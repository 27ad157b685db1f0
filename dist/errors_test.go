// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
	"testing"
)

func TestConstructorErrors(t *testing.T) {
	_, errNeg := NewLomax(-1, 1)
	_, errInf := NewLomax(math.Inf(1), 1)
	_, errLess := NewBradford(1, 3, 2)
	_, errOpen := NewLogarithmic(1)
	_, errFin := NewCrystalBall(1, 2, math.Inf(-1), 1)
	_, errClosed := NewZIPoisson(5, -0.1)

	// Each check helper names the distribution, the parameter, its
	// value, and the violated constraint, and wraps ErrParam.
	tests := []struct {
		err  error
		want string
	}{
		{errNeg, "Lomax: Lambda = -1, need Lambda > 0"},
		{errInf, "Lomax: Lambda = +Inf, need Lambda finite"},
		{errLess, "Bradford: A = 3, B = 2, need A < B"},
		{errOpen, "Logarithmic: P = 1, need 0 < P < 1"},
		{errFin, "CrystalBall: Mu = -Inf, need Mu finite"},
		{errClosed, "ZIPoisson: Pi = -0.1, need 0 <= Pi <= 1"},
	}
	for _, test := range tests {
		if !errors.Is(test.err, ErrParam) {
			t.Errorf("%v: want ErrParam in the chain", test.err)
		}
		want := test.want + ": " + ErrParam.Error()
		if test.err == nil || test.err.Error() != want {
			t.Errorf("error = %v, want %q", test.err, want)
		}
	}
}

func TestQuantileDomainPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != badPercentile {
			t.Errorf("panic = %v, want %q", r, badPercentile)
		}
	}()
	NewRademacher().Quantile(2)
}
