// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package version contains version information that is set at build time.
package version

import (
	"runtime"
)

// Version is the canonical version of this build. Set by the build.
var Version = "0.1.0-dev"

// Vcs is the commit the build was based on.
var Vcs = ""

// Timestamp is the time the build happened.
var Timestamp = ""

// GoVersion is the version of Go this build was made with.
var GoVersion = runtime.Version()
