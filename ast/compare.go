// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import (
	"fmt"
	"math"
)

// Compare returns an integer indicating whether two terms are less than,
// equal to, or greater than each other.
//
// If a is less than b, the return value is negative. If a is greater than
// b, the return value is positive. If a is equal to b, the return value is
// zero.
//
// Different types are never equal to each other. For comparison purposes,
// types are sorted as follows:
//
// Empty < Op < FunctionTag < Constant < Number < Symbol < Placeholder.
//
// Ops compare on (operator, lhs, rhs) recursively; Numbers by numeric
// order with NaN collapsed into a single class below all other numbers;
// Symbols lexicographically; the enum-backed types by their ordinal. The
// result is a total order that is stable within a process, used to key the
// closed set, the rewrite cache, and the traceback table.
func Compare(a, b Value) int {
	sortA := sortOrder(a)
	sortB := sortOrder(b)

	if sortA < sortB {
		return -1
	} else if sortB < sortA {
		return 1
	}

	switch a := a.(type) {
	case Empty:
		return 0
	case *Op:
		b := b.(*Op)
		if a.Operator != b.Operator {
			if a.Operator < b.Operator {
				return -1
			}
			return 1
		}
		if cmp := Compare(a.LHS, b.LHS); cmp != 0 {
			return cmp
		}
		return Compare(a.RHS, b.RHS)
	case FunctionTag:
		return int(a) - int(b.(FunctionTag))
	case Constant:
		return int(a) - int(b.(Constant))
	case Number:
		return numberCompare(float64(a), float64(b.(Number)))
	case Symbol:
		b := b.(Symbol)
		if a == b {
			return 0
		}
		if a < b {
			return -1
		}
		return 1
	case Placeholder:
		return int(a) - int(b.(Placeholder))
	}
	panic(fmt.Sprintf("illegal value: %T", a))
}

func sortOrder(x Value) int {
	switch x.(type) {
	case Empty:
		return 0
	case *Op:
		return 1
	case FunctionTag:
		return 2
	case Constant:
		return 3
	case Number:
		return 4
	case Symbol:
		return 5
	case Placeholder:
		return 6
	}
	panic(fmt.Sprintf("illegal value: %T", x))
}

func numberCompare(x, y float64) int {
	xNaN, yNaN := math.IsNaN(x), math.IsNaN(y)
	switch {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return -1
	case yNaN:
		return 1
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}
