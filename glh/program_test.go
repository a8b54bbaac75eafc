// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"errors"
	"testing"
	"unsafe"
)

func TestParseUniformType(t *testing.T) {
	if typ, err := ParseUniformType("vec4"); err != nil || typ != UniformVec4 {
		t.Errorf("ParseUniformType(vec4) = %v, %v", typ, err)
	}
	if typ, err := ParseUniformType("mat4"); err != nil || typ != UniformMat4 {
		t.Errorf("ParseUniformType(mat4) = %v, %v", typ, err)
	}
	if _, err := ParseUniformType("vec3"); !errors.Is(err, ErrUnsupportedUniformType) {
		t.Errorf("ParseUniformType(vec3) err = %v", err)
	}
}

func TestRegisterUnsupportedUniformType(t *testing.T) {
	p := &Program{uniforms: make(map[string]uniform)}
	if err := p.RegisterUniform("fill_color", "sampler2D"); !errors.Is(err, ErrUnsupportedUniformType) {
		t.Errorf("RegisterUniform(sampler2D) err = %v", err)
	}
	if len(p.uniforms) != 0 {
		t.Errorf("failed registration left a binding behind")
	}
}

func TestUpdateUnknownUniform(t *testing.T) {
	p := &Program{uniforms: make(map[string]uniform)}
	err := p.UpdateUniform("missing", []float32{0, 0, 0, 0})
	if !errors.Is(err, ErrUnknownUniform) {
		t.Errorf("UpdateUniform(missing) err = %v", err)
	}
}

func TestUpdateUniformVec4(t *testing.T) {
	var gotLoc int32 = -1
	var gotData [4]float32
	orig := uniform4f
	uniform4f = func(location int32, v0, v1, v2, v3 float32) {
		gotLoc = location
		gotData = [4]float32{v0, v1, v2, v3}
	}
	defer func() { uniform4f = orig }()

	p := &Program{uniforms: map[string]uniform{
		"fill_color": {name: "fill_color", location: 7, typ: UniformVec4},
	}}
	if err := p.UpdateUniform("fill_color", []float32{1, 0.5, 0.25, 1}); err != nil {
		t.Fatal(err)
	}
	if gotLoc != 7 {
		t.Errorf("vec4 update location = %d, want 7", gotLoc)
	}
	if gotData != [4]float32{1, 0.5, 0.25, 1} {
		t.Errorf("vec4 update data = %v", gotData)
	}
}

func TestUpdateUniformMat4(t *testing.T) {
	var gotLoc int32 = -1
	var gotTranspose bool
	var gotData []float32
	orig := uniformMatrix4fv
	uniformMatrix4fv = func(location, count int32, transpose bool, value *float32) {
		gotLoc = location
		gotTranspose = transpose
		gotData = append([]float32(nil), unsafe.Slice(value, 16)...)
	}
	defer func() { uniformMatrix4fv = orig }()

	m := Identity()
	m.Translate(2, 3, 5)
	p := &Program{uniforms: map[string]uniform{
		"transform": {name: "transform", location: 3, typ: UniformMat4},
	}}
	if err := p.UpdateUniform("transform", m.Data()); err != nil {
		t.Fatal(err)
	}
	if gotLoc != 3 {
		t.Errorf("mat4 update location = %d, want 3", gotLoc)
	}
	if !gotTranspose {
		t.Errorf("mat4 update must transpose row major data")
	}
	want := []float32{
		1, 0, 0, 2,
		0, 1, 0, 3,
		0, 0, 1, 5,
		0, 0, 0, 1,
	}
	for i := range want {
		if gotData[i] != want[i] {
			t.Errorf("mat4 update data = %v, want %v", gotData, want)
			break
		}
	}
}
