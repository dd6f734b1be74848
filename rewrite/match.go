// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rewrite

import (
	"github.com/symplify/symplify/ast"
)

// Match unifies a against b, binding placeholders to the subterms they
// stand for. On success env is extended with the new bindings and Match
// returns true; on failure env is left unchanged.
//
// Matching is symmetric: placeholders are resolved on whichever side they
// appear. The engine always calls Match with a closed term on the left and
// a rule template on the right; the symmetric branch exists for matching
// two templates against each other.
//
// A placeholder that is already bound must match structurally on
// re-encounter, so the template `f(a, a)` matches `f(q, q)` but not `f(q, r)`.
func Match(a, b ast.Value, env *Bindings) bool {
	scratch := env.Copy()
	if matchRec(a, b, scratch) {
		*env = *scratch
		return true
	}
	return false
}

func matchRec(a, b ast.Value, env *Bindings) bool {
	pa, aIsPlaceholder := a.(ast.Placeholder)
	pb, bIsPlaceholder := b.(ast.Placeholder)

	switch {
	case aIsPlaceholder && bIsPlaceholder && pa == pb:
		return true
	case bIsPlaceholder:
		if bound, ok := env.Value(pb); ok {
			scratch := env.Copy()
			if !matchRec(bound, a, scratch) {
				return false
			}
			*env = *scratch
			return true
		}
		env.Bind(pb, a)
		return true
	case aIsPlaceholder:
		return matchRec(b, a, env)
	}

	aOp, ok := a.(*ast.Op)
	if !ok {
		return a.Equal(b)
	}
	bOp, ok := b.(*ast.Op)
	if !ok || aOp.Operator != bOp.Operator {
		return false
	}

	// Both children must unify under one consistent set of bindings; the
	// scratch copy is committed only on joint success.
	scratch := env.Copy()
	if !matchRec(aOp.LHS, bOp.LHS, scratch) {
		return false
	}
	if !matchRec(aOp.RHS, bOp.RHS, scratch) {
		return false
	}
	*env = *scratch
	return true
}
