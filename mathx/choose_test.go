// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

func TestChoose(t *testing.T) {
	// Small coefficients are exact.
	exact := []struct {
		n, k int
		want float64
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 5, 1},
		{4, 2, 6},
		{10, 3, 120},
		{52, 5, 2598960},
	}
	for _, c := range exact {
		if got := Choose(c.n, c.k); got != c.want {
			t.Errorf("Choose(%v, %v) = %v, want %v", c.n, c.k, got, c.want)
		}
	}
	// Out of range.
	for _, c := range []struct{ n, k int }{{5, 6}, {5, -1}, {-1, 0}} {
		if got := Choose(c.n, c.k); got != 0 {
			t.Errorf("Choose(%v, %v) = %v, want 0", c.n, c.k, got)
		}
	}
	// Beyond exact integer range.
	if got, want := Choose(60, 30), 1.1826458156486142e+17; !aeq(want, got) {
		t.Errorf("Choose(60, 30) = %v, want %v", got, want)
	}
}

func TestLogChoose(t *testing.T) {
	if got, want := LogChoose(10, 3), math.Log(120); !aeq(want, got) {
		t.Errorf("LogChoose(10, 3) = %v, want %v", got, want)
	}
	if got, want := LogChoose(1000, 500), 689.467261567851; !aeq(want, got) {
		t.Errorf("LogChoose(1000, 500) = %v, want %v", got, want)
	}
	if got := LogChoose(0, 0); got != 0 {
		t.Errorf("LogChoose(0, 0) = %v, want 0", got)
	}
	if got := LogChoose(5, 6); !math.IsInf(got, -1) {
		t.Errorf("LogChoose(5, 6) = %v, want -Inf", got)
	}
}
