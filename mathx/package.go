// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions that are not provided by
// the standard math package or by gonum's mathext.
package mathx // import "github.com/aclements/go-moredist/mathx"
