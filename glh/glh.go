// SPDX-License-Identifier: GPL-2.0-or-later

// Package glh manages GL shader and program objects. Source is run through
// the glsl preprocessor before compilation, so legacy shaders work against
// modern context versions. All calls must happen on the GL context thread;
// only object deletion is marshaled there automatically.
package glh

import (
	"github.com/pkg/errors"
)

var (
	ErrNotCompiled            = errors.New("shader has not been compiled")
	ErrUnknownUniform         = errors.New("unknown uniform")
	ErrUnsupportedUniformType = errors.New("unsupported uniform type")
)

// Config sets the diagnostics policy of a Shader or Program.
type Config struct {
	// Printf receives compile and link logs together with the offending
	// source. Nil drops them.
	Printf func(format string, v ...interface{})
	// Strict turns a failed compile or link status into an error. Off by
	// default: some drivers write text like "No errors" to the info log of
	// a perfectly fine shader, so logs alone are advisory.
	Strict bool
}

func (c Config) printf(format string, v ...interface{}) {
	if c.Printf != nil {
		c.Printf(format, v...)
	}
}
