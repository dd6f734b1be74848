// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package cmd contains the CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

// RootCommand is the base CLI command that all subcommands are added to.
var RootCommand = &cobra.Command{
	Use:   "symplify",
	Short: "Symbolic expression simplifier",
	Long: `Symplify searches for the smallest equivalent form of an algebraic
expression by applying bidirectional rewrite rules.`,
}
