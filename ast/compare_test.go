// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a        Value
		b        Value
		expected int
	}{
		// Variant ordering
		{Empty{}, NewOp(Sum, Symbol("x"), Symbol("y")), -1},
		{NewOp(Sum, Symbol("x"), Symbol("y")), FnSin, -1},
		{FnSin, Pi, -1},
		{Pi, Number(1), -1},
		{Number(1), Symbol("a"), -1},
		{Symbol("a"), PlaceholderFor('a'), -1},

		// Atoms
		{Empty{}, Empty{}, 0},
		{Number(1), Number(2), -1},
		{Number(2), Number(1), 1},
		{Number(2), Number(2), 0},
		{Symbol("a"), Symbol("b"), -1},
		{Symbol("b"), Symbol("a"), 1},
		{Pi, E, -1},
		{FnSin, FnCos, -1},
		{PlaceholderFor('a'), PlaceholderFor('b'), -1},

		// Ops compare on operator first, then children
		{MustParse("x + y"), MustParse("x * y"), -1},
		{MustParse("x + y"), MustParse("x + y"), 0},
		{MustParse("x + y"), MustParse("x + z"), -1},
		{MustParse("y + x"), MustParse("x + z"), 1},
		{MustParse("sin(x)"), MustParse("cos(x)"), -1},
	}
	for _, tc := range tests {
		result := Compare(tc.a, tc.b)
		if normalize(result) != tc.expected {
			t.Errorf("Compare(%v, %v): expected %d but got %d", tc.a, tc.b, tc.expected, result)
		}
		// Antisymmetry
		if normalize(Compare(tc.b, tc.a)) != -tc.expected {
			t.Errorf("Compare(%v, %v): not antisymmetric", tc.b, tc.a)
		}
		// Agreement with Equal
		if (result == 0) != tc.a.Equal(tc.b) {
			t.Errorf("Compare(%v, %v) disagrees with Equal", tc.a, tc.b)
		}
	}
}

func normalize(cmp int) int {
	switch {
	case cmp < 0:
		return -1
	case cmp > 0:
		return 1
	}
	return 0
}
