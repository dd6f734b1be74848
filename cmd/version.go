// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/symplify/symplify/version"
)

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the version of symplify",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("Version:", version.Version)
		fmt.Println("Go Version:", version.GoVersion)
		if version.Vcs != "" {
			fmt.Println("Commit:", version.Vcs)
		}
		if version.Timestamp != "" {
			fmt.Println("Build Timestamp:", version.Timestamp)
		}
	},
}

func init() {
	RootCommand.AddCommand(versionCommand)
}
