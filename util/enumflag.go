// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

// EnumFlag implements the pflag.Value interface to provide enumerated
// command line parameter values.
type EnumFlag struct {
	value   string
	vs      []string
	isSet   bool
	defined map[string]struct{}
}

// NewEnumFlag returns a new EnumFlag that has a defaultValue and vs
// enumerated values.
func NewEnumFlag(defaultValue string, vs []string) *EnumFlag {
	f := &EnumFlag{
		value:   defaultValue,
		vs:      vs,
		defined: make(map[string]struct{}, len(vs)),
	}
	for _, v := range vs {
		f.defined[v] = struct{}{}
	}
	return f
}

// Type returns the valid enumeration values.
func (f *EnumFlag) Type() string {
	return "{" + strings.Join(f.vs, ",") + "}"
}

// String returns the EnumValue's value as string.
func (f *EnumFlag) String() string {
	return f.value
}

// IsSet will return true if the EnumFlag has been set.
func (f *EnumFlag) IsSet() bool {
	return f.isSet
}

// Set sets the enum value. If s is not a valid enum value, an error is
// returned.
func (f *EnumFlag) Set(s string) error {
	if _, ok := f.defined[s]; !ok {
		return fmt.Errorf("must be one of %v", f.Type())
	}
	f.value = s
	f.isSet = true
	return nil
}
