// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package search

import (
	"context"
	"testing"

	"github.com/symplify/symplify/ast"
	"github.com/symplify/symplify/metrics"
	"github.com/symplify/symplify/rewrite"
)

func simplify(t *testing.T, input string, maxIter int) *Result {
	t.Helper()
	s := New().WithMaxOperations(32).WithMaxIterations(maxIter)
	return s.Simplify(context.Background(), ast.MustParse(input))
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		note     string
		input    string
		maxIter  int
		expected []string // accepted printed forms of the best term
		opcount  int
	}{
		{
			note:     "additive identity",
			input:    "x + 0",
			maxIter:  256,
			expected: []string{"x"},
			opcount:  0,
		},
		{
			note:     "identity and kernel",
			input:    "x * 1 + 0 * y",
			maxIter:  256,
			expected: []string{"x"},
			opcount:  0,
		},
		{
			note:     "pythagorean identity",
			input:    "sin(x) ^ 2 + cos(x) ^ 2",
			maxIter:  256,
			expected: []string{"1"},
			opcount:  0,
		},
		{
			note:     "power rule",
			input:    "d/dx(x ^ 2)",
			maxIter:  1024,
			expected: []string{"(2 * x)", "(x * 2)", "(x + x)"},
			opcount:  1,
		},
		{
			note:     "cancellation through associativity",
			input:    "(x + y) - y",
			maxIter:  1024,
			expected: []string{"x"},
			opcount:  0,
		},
	}
	for _, tc := range tests {
		result := simplify(t, tc.input, tc.maxIter)
		if result.OpCount != tc.opcount {
			t.Errorf("%v: expected opcount %d but got %d (%v)", tc.note, tc.opcount, result.OpCount, result.Best)
			continue
		}
		got := result.Best.String()
		ok := false
		for _, accept := range tc.expected {
			if got == accept {
				ok = true
			}
		}
		if !ok {
			t.Errorf("%v: expected one of %v but got %q", tc.note, tc.expected, got)
		}
	}
}

func TestSimplifyIrreducible(t *testing.T) {
	// log(x*y, b) has no smaller equivalent, so the search returns the
	// input itself; the expanded sum of logarithms is strictly larger.
	input := ast.MustParse("log(x * y, b)")
	result := New().WithMaxOperations(32).WithMaxIterations(256).Simplify(context.Background(), input)
	if !result.Best.Equal(input) {
		t.Fatalf("expected the input back but got %v", result.Best)
	}
	if result.OpCount != 2 {
		t.Fatalf("expected opcount 2 but got %d", result.OpCount)
	}
	if len(result.Steps) != 1 {
		t.Fatalf("expected a single-step trace but got %v", result.Steps)
	}
}

func TestSimplifyTraceback(t *testing.T) {
	inputs := []string{
		"x * 1 + 0 * y",
		"sin(x) ^ 2 + cos(x) ^ 2",
		"d/dx(x ^ 2)",
	}
	expander := rewrite.NewExpander(rewrite.DefaultRules())
	for _, input := range inputs {
		term := ast.MustParse(input)
		result := simplify(t, input, 1024)

		if len(result.Steps) == 0 {
			t.Fatalf("%v: empty trace", input)
		}
		if !result.Steps[0].Term.Equal(term) {
			t.Errorf("%v: trace does not start at the input: %v", input, result.Steps[0].Term)
		}
		last := result.Steps[len(result.Steps)-1]
		if !last.Term.Equal(result.Best) {
			t.Errorf("%v: trace does not end at the best term: %v", input, last.Term)
		}

		// Every step must be reachable from its predecessor in one rewrite.
		for i := 1; i < len(result.Steps); i++ {
			parent, child := result.Steps[i-1].Term, result.Steps[i].Term
			found := false
			for _, n := range expander.Expand(parent) {
				if n.Equal(child) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%v: step %d (%v) is not a rewrite of %v", input, i, child, parent)
			}
		}

		// Step opcounts are consistent with the terms.
		for _, step := range result.Steps {
			if step.OpCount != ast.OpCount(step.Term) {
				t.Errorf("%v: inconsistent opcount for %v", input, step.Term)
			}
		}
	}
}

func TestSimplifyIterationBound(t *testing.T) {
	m := metrics.New()
	s := New().WithMaxIterations(7).WithMetrics(m)
	result := s.Simplify(context.Background(), ast.MustParse("(x + y) * (y + x)"))

	if result.Iterations > 7 {
		t.Fatalf("expected at most 7 iterations but got %d", result.Iterations)
	}
	all := m.All()
	if n, ok := all["counter_"+metrics.SimplifyIterations].(uint64); !ok || n > 7 {
		t.Fatalf("expected iteration counter at most 7: %v", all)
	}
}

func TestSimplifyMaxOperations(t *testing.T) {
	// With a bound below the input size the search stops after the first
	// pop and returns the input.
	input := ast.MustParse("x * 1 + 0 * y")
	result := New().WithMaxOperations(2).Simplify(context.Background(), input)
	if !result.Best.Equal(input) {
		t.Fatalf("expected the input back but got %v", result.Best)
	}
	if result.Iterations != 1 {
		t.Fatalf("expected a single iteration but got %d", result.Iterations)
	}
}

func TestSimplifyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := ast.MustParse("x * 1 + 0 * y")
	result := New().Simplify(ctx, input)
	if !result.Best.Equal(input) {
		t.Fatalf("expected the input back but got %v", result.Best)
	}
	if result.Iterations != 0 {
		t.Fatalf("expected no iterations but got %d", result.Iterations)
	}
}

func TestSimplifyMonotoneBest(t *testing.T) {
	// A larger iteration budget never returns a larger result than a
	// smaller budget on the same input.
	input := "(x + y) - y"
	shorter := New().WithMaxOperations(32).WithMaxIterations(64).
		Simplify(context.Background(), ast.MustParse(input))
	longer := New().WithMaxOperations(32).WithMaxIterations(1024).
		Simplify(context.Background(), ast.MustParse(input))
	if longer.OpCount > shorter.OpCount {
		t.Fatalf("expected a larger budget to do no worse: %d vs %d", longer.OpCount, shorter.OpCount)
	}
}
