// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// UniformType is the closed set of uniform data types the program layer can
// update. Adding a type means adding a constant, a ParseUniformType case and
// a set case.
type UniformType int

const (
	UniformVec4 UniformType = iota
	UniformMat4
)

func ParseUniformType(s string) (UniformType, error) {
	switch s {
	case "vec4":
		return UniformVec4, nil
	case "mat4":
		return UniformMat4, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedUniformType, s)
}

func (t UniformType) String() string {
	switch t {
	case UniformVec4:
		return "vec4"
	case UniformMat4:
		return "mat4"
	}
	return fmt.Sprintf("UniformType(%d)", int(t))
}

// indirection for tests
var (
	uniform4f        = gl.Uniform4f
	uniformMatrix4fv = gl.UniformMatrix4fv
)

// set writes data to the uniform at location. The caller guarantees the
// length, 4 for vec4 and 16 for mat4.
func (t UniformType) set(location int32, data []float32) {
	switch t {
	case UniformVec4:
		uniform4f(location, data[0], data[1], data[2], data[3])
	case UniformMat4:
		// we use row major order, so transpose must be set to true
		// as opengl uses column major order
		uniformMatrix4fv(location, 1, true, &data[0])
	}
}
