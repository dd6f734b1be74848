// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rewrite

import (
	"math"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/symplify/symplify/ast"
	"github.com/symplify/symplify/metrics"
)

// DefaultCacheSize bounds the expansion memo cache when no explicit size is
// configured.
const DefaultCacheSize = 8192

// Expander enumerates every term reachable from a given term by exactly one
// rewrite step: each applicable rule direction at the root, the same applied
// at every subterm position, and numeric folding of literal operands.
//
// Expansions are memoized per term. An Expander is not safe for concurrent
// use.
type Expander struct {
	rules   []*Rule
	cache   *lru.Cache[string, []ast.Value]
	metrics metrics.Metrics
}

// NewExpander returns an expander over the given rule set.
func NewExpander(rules []*Rule) *Expander {
	cache, err := lru.New[string, []ast.Value](DefaultCacheSize)
	if err != nil {
		panic(err)
	}
	return &Expander{
		rules:   rules,
		cache:   cache,
		metrics: metrics.NoOp(),
	}
}

// WithMetrics sets the metrics sink used by the expander.
func (e *Expander) WithMetrics(m metrics.Metrics) *Expander {
	e.metrics = m
	return e
}

// WithCacheSize resizes the expansion memo cache.
func (e *Expander) WithCacheSize(n int) *Expander {
	if n <= 0 {
		n = DefaultCacheSize
	}
	cache, err := lru.New[string, []ast.Value](n)
	if err != nil {
		panic(err)
	}
	e.cache = cache
	return e
}

// Expand returns the one-step rewrite neighborhood of x, sorted by the
// structural term order so iteration over the result is deterministic.
// The returned slice is shared with the cache and must not be modified.
func (e *Expander) Expand(x ast.Value) []ast.Value {
	// Empty stands for the absent operand of a unary node and must never
	// leak into a rewrite (a placeholder would bind to it).
	if _, ok := x.(ast.Empty); ok {
		return nil
	}

	// The printed form is injective (every operator parenthesizes), so it
	// doubles as the structural cache key.
	key := x.String()
	if out, ok := e.cache.Get(key); ok {
		e.metrics.Counter(metrics.ExpandCacheHit).Incr()
		return out
	}
	e.metrics.Counter(metrics.ExpandCacheMiss).Incr()

	set := newValueSet()

	for _, r := range e.rules {
		e.applyRule(r, x, set)
	}

	if op, ok := x.(*ast.Op); ok {
		// Congruence closure: a rewrite of either child yields a rewrite of
		// the whole term.
		for _, lhs := range e.Expand(op.LHS) {
			set.add(ast.NewOp(op.Operator, lhs, op.RHS))
		}
		for _, rhs := range e.Expand(op.RHS) {
			set.add(ast.NewOp(op.Operator, op.LHS, rhs))
		}

		e.fold(op, set)
	}

	out := set.values
	e.cache.Add(key, out)
	e.metrics.Histogram(metrics.ExpandNeighbors).Update(int64(len(out)))
	return out
}

// applyRule emits the substitution for each applicable rule direction. A
// direction applies only when the match binds exactly the union of both
// sides' placeholders, so the opposite template never sees an unbound
// placeholder.
func (e *Expander) applyRule(r *Rule, x ast.Value, out *valueSet) {
	if r.sourceSet == r.merged {
		var env Bindings
		if Match(x, r.Source, &env) && env.Covers(r.merged) {
			out.add(Substitute(r.Target, &env))
		}
	}
	if r.targetSet == r.merged {
		var env Bindings
		if Match(x, r.Target, &env) && env.Covers(r.merged) {
			out.add(Substitute(r.Source, &env))
		}
	}
}

// fold emits the arithmetic result for an operator over two numeric
// literals.
func (e *Expander) fold(op *ast.Op, out *valueSet) {
	lhs, ok := op.LHS.(ast.Number)
	if !ok {
		return
	}
	rhs, ok := op.RHS.(ast.Number)
	if !ok {
		return
	}

	switch op.Operator {
	case ast.Sum:
		out.add(foldedValue(float64(lhs) + float64(rhs)))
	case ast.Difference:
		// A negative result keeps its magnitude as a bare literal under an
		// explicit negation node.
		if lhs < rhs {
			out.add(ast.NewUnary(ast.Negative, ast.Number(float64(rhs)-float64(lhs))))
		} else {
			out.add(ast.Number(float64(lhs) - float64(rhs)))
		}
	case ast.Product:
		out.add(foldedValue(float64(lhs) * float64(rhs)))
	case ast.Quotient:
		if rhs == 0 {
			out.add(ast.Undefined)
		} else {
			out.add(foldedValue(float64(lhs) / float64(rhs)))
		}
	case ast.Exponent:
		out.add(foldedValue(math.Pow(float64(lhs), float64(rhs))))
	}
}

// foldedValue maps non-finite arithmetic results into the undefined
// constant so NaN never enters the term order.
func foldedValue(f float64) ast.Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ast.Undefined
	}
	return ast.Number(f)
}

// valueSet is a set of terms kept sorted by the structural term order.
type valueSet struct {
	values []ast.Value
}

func newValueSet() *valueSet {
	return &valueSet{}
}

func (s *valueSet) add(v ast.Value) {
	i := sort.Search(len(s.values), func(i int) bool {
		return ast.Compare(s.values[i], v) >= 0
	})
	if i < len(s.values) && ast.Compare(s.values[i], v) == 0 {
		return
	}
	s.values = append(s.values, nil)
	copy(s.values[i+1:], s.values[i:])
	s.values[i] = v
}
