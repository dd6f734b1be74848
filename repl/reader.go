// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package repl

import (
	"bufio"
	"io"
	"strings"
)

type lineReader struct {
	scanner *bufio.Scanner
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(in)}
}

func (r *lineReader) readLine() (string, error) {
	if r.scanner.Scan() {
		return strings.TrimSpace(r.scanner.Text()), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
