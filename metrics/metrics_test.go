// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package metrics

import (
	"encoding/json"
	"testing"
)

func TestCounter(t *testing.T) {
	m := New()
	c := m.Counter("foo")
	c.Incr()
	c.Incr()
	c.Add(3)
	if v := c.Value().(uint64); v != 5 {
		t.Fatalf("expected 5 but got %v", v)
	}
	if m.Counter("foo") != c {
		t.Fatal("expected the same counter on repeated lookup")
	}
}

func TestTimer(t *testing.T) {
	m := New()
	timer := m.Timer("foo")
	timer.Start()
	if delta := timer.Stop(); delta < 0 {
		t.Fatalf("expected non-negative delta but got %v", delta)
	}
	if timer.Int64() < 0 {
		t.Fatalf("expected non-negative accumulated value")
	}
	// Stop without start accumulates nothing.
	before := timer.Int64()
	if delta := timer.Stop(); delta != 0 {
		t.Fatalf("expected zero delta but got %v", delta)
	}
	if timer.Int64() != before {
		t.Fatal("expected value unchanged")
	}
}

func TestHistogram(t *testing.T) {
	m := New()
	h := m.Histogram("foo")
	for i := int64(1); i <= 100; i++ {
		h.Update(i)
	}
	values := h.Value().(map[string]any)
	if values["count"].(int64) != 100 {
		t.Fatalf("expected count 100 but got %v", values["count"])
	}
	if values["min"].(int64) != 1 || values["max"].(int64) != 100 {
		t.Fatalf("unexpected bounds: %v", values)
	}
}

func TestAllAndClear(t *testing.T) {
	m := New()
	m.Counter("hits").Incr()
	m.Timer("eval").Start()
	m.Timer("eval").Stop()
	m.Histogram("sizes").Update(1)

	all := m.All()
	for _, key := range []string{"counter_hits", "timer_eval_ns", "histogram_sizes"} {
		if _, ok := all[key]; !ok {
			t.Fatalf("expected key %q in %v", key, all)
		}
	}

	if _, err := json.Marshal(m); err != nil {
		t.Fatal(err)
	}

	m.Clear()
	if len(m.All()) != 0 {
		t.Fatalf("expected empty metrics after clear: %v", m.All())
	}
}

func TestNoOp(t *testing.T) {
	m := NoOp()
	m.Counter("foo").Incr()
	m.Timer("bar").Start()
	m.Histogram("baz").Update(1)
	if m.All() != nil {
		t.Fatal("expected no recorded metrics")
	}
}
