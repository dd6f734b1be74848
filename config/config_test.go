// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.MaxOperations != 32 || c.MaxIterations != 256 {
		t.Fatalf("unexpected default limits: %+v", c)
	}
	if c.CacheSize != 8192 {
		t.Fatalf("unexpected default cache size: %+v", c)
	}
	if c.Logging.Level != "info" || c.Logging.Format != "text" {
		t.Fatalf("unexpected default logging: %+v", c)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), *c); diff != "" {
		t.Fatalf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	doc := `
max_operations: 64
max_iterations: 1000
rule_files:
  - extra.yaml
logging:
  level: debug
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.MaxOperations != 64 || c.MaxIterations != 1000 {
		t.Fatalf("unexpected limits: %+v", c)
	}
	if len(c.RuleFiles) != 1 || c.RuleFiles[0] != "extra.yaml" {
		t.Fatalf("unexpected rule files: %+v", c)
	}
	if c.Logging.Level != "debug" {
		t.Fatalf("unexpected log level: %+v", c)
	}
	// Unset keys keep their defaults.
	if c.CacheSize != 8192 || c.Logging.Format != "text" {
		t.Fatalf("expected defaults for unset keys: %+v", c)
	}
}

func TestLoadValidation(t *testing.T) {
	doc := "max_operations: -1\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
