// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package search implements the best-first exploration of the rewrite graph
// that finds the smallest equivalent form of an expression.
package search

import (
	"container/heap"
	"context"

	"github.com/symplify/symplify/ast"
	"github.com/symplify/symplify/logging"
	"github.com/symplify/symplify/metrics"
	"github.com/symplify/symplify/rewrite"
	"github.com/symplify/symplify/util"
)

// Searcher drives simplification over a fixed rule set. Construct with New
// and configure with the With* methods before calling Simplify. A Searcher
// is not safe for concurrent use; the expansion cache persists across
// Simplify calls.
type Searcher struct {
	rules     []*rewrite.Rule
	expander  *rewrite.Expander
	maxOps    int // 0 = unbounded
	maxIter   int // 0 = unbounded
	cacheSize int
	metrics   metrics.Metrics
	logger    logging.Logger
}

// New returns a new Searcher over the bundled rule catalog with unbounded
// limits, no-op metrics, and no-op logging.
func New() *Searcher {
	return &Searcher{
		rules:   rewrite.DefaultRules(),
		metrics: metrics.NoOp(),
		logger:  logging.NewNoOpLogger(),
	}
}

// WithRules sets the rule set searched over.
func (s *Searcher) WithRules(rules []*rewrite.Rule) *Searcher {
	s.rules = rules
	s.expander = nil
	return s
}

// WithMaxOperations bounds the size of explored terms: the search stops
// when the smallest unexplored term already has at least n operator nodes.
// Zero means unbounded.
func (s *Searcher) WithMaxOperations(n int) *Searcher {
	s.maxOps = n
	return s
}

// WithMaxIterations bounds the number of terms popped and expanded. Zero
// means unbounded.
func (s *Searcher) WithMaxIterations(n int) *Searcher {
	s.maxIter = n
	return s
}

// WithCacheSize sets the expansion memo cache size.
func (s *Searcher) WithCacheSize(n int) *Searcher {
	s.cacheSize = n
	s.expander = nil
	return s
}

// WithMetrics sets the metrics sink.
func (s *Searcher) WithMetrics(m metrics.Metrics) *Searcher {
	s.metrics = m
	s.expander = nil
	return s
}

// WithLogger sets the logger. The engine logs at debug level only.
func (s *Searcher) WithLogger(l logging.Logger) *Searcher {
	s.logger = l
	return s
}

// Step is one entry of a simplification traceback.
type Step struct {
	OpCount int
	Term    ast.Value
}

// Result carries the outcome of a Simplify call: the smallest equivalent
// term found and the chain of rewrites that produced it, from the input to
// the best term inclusive.
type Result struct {
	Best       ast.Value
	OpCount    int
	Steps      []Step
	Iterations int
}

// Simplify searches for the equivalent term with the fewest operator nodes
// reachable from x. The search is total: it always returns a result, at
// worst the input itself. Cancelling ctx stops the search at the next
// iteration and returns the best term found so far.
func (s *Searcher) Simplify(ctx context.Context, x ast.Value) *Result {
	timer := s.metrics.Timer(metrics.SimplifyEval)
	timer.Start()
	defer timer.Stop()

	if s.expander == nil {
		s.expander = rewrite.NewExpander(s.rules).WithMetrics(s.metrics)
		if s.cacheSize > 0 {
			s.expander.WithCacheSize(s.cacheSize)
		}
	}

	closed := newValueSet()
	trace := util.NewHashMap[ast.Value, ast.Value](valueEq, valueHash)
	open := &openQueue{}

	heap.Push(open, &openEntry{value: x, ops: ast.OpCount(x)})
	closed.Put(x, struct{}{})

	best := x
	bestOps := ast.OpCount(best)
	iterations := 0

	for open.Len() > 0 {
		if s.maxIter > 0 && iterations >= s.maxIter {
			break
		}
		if ctx.Err() != nil {
			s.logger.Debug("search cancelled after %d iterations", iterations)
			break
		}
		iterations++
		s.metrics.Counter(metrics.SimplifyIterations).Incr()

		next := heap.Pop(open).(*openEntry)

		if next.ops < bestOps {
			best = next.value
			bestOps = next.ops
			s.logger.WithFields(map[string]any{
				"opcount": bestOps,
				"term":    best.String(),
			}).Debug("new best term")
		}

		// The open queue is min-ordered by opcount, so once the popped term
		// is too large the rest of the frontier is at least as large.
		if s.maxOps > 0 && next.ops >= s.maxOps {
			break
		}
		if next.ops == 0 {
			break
		}

		for _, neighbor := range s.expander.Expand(next.value) {
			if _, ok := closed.Get(neighbor); ok {
				continue
			}
			closed.Put(neighbor, struct{}{})
			trace.Put(neighbor, next.value)
			heap.Push(open, &openEntry{value: neighbor, ops: ast.OpCount(neighbor)})
			s.metrics.Counter(metrics.SimplifyEnqueued).Incr()
		}
	}

	return &Result{
		Best:       best,
		OpCount:    bestOps,
		Steps:      traceback(best, trace),
		Iterations: iterations,
	}
}

// traceback reconstructs the rewrite chain from the input term to best by
// walking the parent links.
func traceback(best ast.Value, trace *util.HashMap[ast.Value, ast.Value]) []Step {
	var chain []ast.Value
	for cur := best; ; {
		chain = append(chain, cur)
		parent, ok := trace.Get(cur)
		if !ok {
			break
		}
		cur = parent
	}

	steps := make([]Step, len(chain))
	for i, v := range chain {
		steps[len(chain)-1-i] = Step{OpCount: ast.OpCount(v), Term: v}
	}
	return steps
}

func valueEq(a, b ast.Value) bool { return a.Equal(b) }
func valueHash(v ast.Value) int   { return v.Hash() }

func newValueSet() *util.HashMap[ast.Value, struct{}] {
	return util.NewHashMap[ast.Value, struct{}](valueEq, valueHash)
}

// openEntry is a queue entry. Entries with equal opcount pop in insertion
// order so that a run's trace is reproducible.
type openEntry struct {
	value ast.Value
	ops   int
	seq   int
}

type openQueue struct {
	entries []*openEntry
	nextSeq int
}

func (q *openQueue) Len() int { return len(q.entries) }

func (q *openQueue) Less(i, j int) bool {
	if q.entries[i].ops != q.entries[j].ops {
		return q.entries[i].ops < q.entries[j].ops
	}
	return q.entries[i].seq < q.entries[j].seq
}

func (q *openQueue) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
}

func (q *openQueue) Push(x any) {
	entry := x.(*openEntry)
	entry.seq = q.nextSeq
	q.nextSeq++
	q.entries = append(q.entries, entry)
}

func (q *openQueue) Pop() any {
	old := q.entries
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	q.entries = old[:n-1]
	return entry
}
