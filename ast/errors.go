// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import (
	"fmt"
	"strings"
)

// ParseError records a syntactic error together with the offending position
// in the input.
type ParseError struct {
	Message string // description of the error
	Input   string // the full source line
	Offset  int    // byte offset of the offending token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}

// Indicator returns a two-line diagnostic: the input followed by a caret
// underlining the offending position.
//
//	x + + y
//	    ^
func (e *ParseError) Indicator() string {
	offset := e.Offset
	if offset > len(e.Input) {
		offset = len(e.Input)
	}
	return e.Input + "\n" + strings.Repeat(" ", offset) + "^"
}
