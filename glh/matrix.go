// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Matrix is a 4x4 float32 matrix in row major order, meant as payload for a
// mat4 uniform.
type Matrix struct {
	m [16]float32
}

func Identity() *Matrix {
	return &Matrix{
		m: [16]float32{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		},
	}
}

func (m *Matrix) Copy() *Matrix {
	nm := &Matrix{}
	nm.m = m.m
	return nm
}

// Data returns the 16 elements in row major order, the shape
// Program.UpdateUniform expects for a mat4 uniform.
func (m *Matrix) Data() []float32 {
	return m.m[:]
}

func (m *Matrix) SetAsUniform(id int32) {
	// we use row major order, so transpose must be set to true
	// as opengl uses column major order
	gl.UniformMatrix4fv(id, 1, true, &m.m[0])
}

// mult computes m*t and stores the result in m.
func (m *Matrix) mult(t [16]float32) {
	var n [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m.m[r*4+k] * t[k*4+c]
			}
			n[r*4+c] = s
		}
	}
	m.m = n
}

func (m *Matrix) Translate(x, y, z float32) {
	m.mult([16]float32{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	})
}

func (m *Matrix) Scale(x, y, z float32) {
	m.mult([16]float32{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	})
}

func sincosDeg(degree float32) (float32, float32) {
	return math32.Sincos(degree * math32.Pi / 180)
}

func (m *Matrix) RotateX(degree float32) {
	sin, cos := sincosDeg(degree)
	m.mult([16]float32{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	})
}

func (m *Matrix) RotateY(degree float32) {
	sin, cos := sincosDeg(degree)
	m.mult([16]float32{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	})
}

func (m *Matrix) RotateZ(degree float32) {
	sin, cos := sincosDeg(degree)
	m.mult([16]float32{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}
