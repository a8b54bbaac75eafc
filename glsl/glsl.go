// SPDX-License-Identifier: GPL-2.0-or-later

// Package glsl rewrites shader source written against legacy (pre 3.0)
// OpenGL shading language syntax so it compiles under a newer target
// version. It is pure text processing and holds no GL state.
package glsl

import (
	"fmt"

	"github.com/pkg/errors"
)

type Stage string

const (
	Vertex   Stage = "vertex"
	Fragment Stage = "fragment"
)

var (
	ErrUnsupportedStage = errors.New("unsupported shader stage")
	ErrUnknownVersion   = errors.New("unknown shading language version")
)

func ParseStage(s string) (Stage, error) {
	switch Stage(s) {
	case Vertex:
		return Vertex, nil
	case Fragment:
		return Fragment, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedStage, s)
}

// versions maps an OpenGL version label to the #version token its shading
// language expects.
var versions = map[string]int{
	"2.0": 110,
	"2.1": 120,
	"3.0": 130,
	"3.1": 140,
	"3.2": 150,
	"3.3": 330,
	"4.0": 400,
	"4.1": 410,
	"4.2": 420,
	"4.3": 430,
	"4.4": 440,
	"4.5": 450,
}

func VersionToken(label string) (int, error) {
	t, ok := versions[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVersion, label)
	}
	return t, nil
}
