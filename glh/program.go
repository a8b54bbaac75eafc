// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
)

type uniform struct {
	name     string
	location int32
	typ      UniformType
}

// Program is a GL program object plus its registered uniforms. Shaders are
// attached after they compiled, then the program is linked once and used
// per draw.
type Program struct {
	prog     uint32
	uniforms map[string]uniform
	cfg      Config
}

func NewProgram(cfg Config) *Program {
	p := &Program{
		prog:     gl.CreateProgram(),
		uniforms: make(map[string]uniform),
		cfg:      cfg,
	}
	runtime.AddCleanup(p, deleteProgram, p.prog)
	return p
}

func deleteProgram(prog uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteProgram(prog)
	})
}

// Attach registers a compiled shader as one of the program's stages. It
// fails with ErrNotCompiled if the shader has no GL object yet.
func (p *Program) Attach(s *Shader) error {
	shader, err := s.Handle()
	if err != nil {
		return err
	}
	gl.AttachShader(p.prog, shader)
	return nil
}

// Link links the attached shaders. The link log is advisory like the
// compile log, and an error is returned only in Strict mode.
func (p *Program) Link() error {
	gl.LinkProgram(p.prog)
	var status int32
	gl.GetProgramiv(p.prog, gl.LINK_STATUS, &status)
	log := programLog(p.prog)
	if log != "" {
		p.cfg.printf("program %d link log:\n%s", p.prog, log)
	}
	if status == gl.FALSE && p.cfg.Strict {
		return fmt.Errorf("failed to link program %d: %v", p.prog, log)
	}
	return nil
}

func programLog(prog uint32) string {
	var logLength int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// RegisterUniform resolves name against the program and records it with the
// update behavior of dtype ("vec4" or "mat4"). Locations are stable only
// after a successful Link; registering earlier works on some drivers but
// re-registering after Link is the supported contract.
func (p *Program) RegisterUniform(name, dtype string) error {
	typ, err := ParseUniformType(dtype)
	if err != nil {
		return err
	}
	location := gl.GetUniformLocation(p.prog, gl.Str(name+"\x00"))
	p.uniforms[name] = uniform{
		name:     name,
		location: location,
		typ:      typ,
	}
	return nil
}

// UpdateUniform writes data to a registered uniform. The length of data has
// to match the registered type, 4 floats for vec4 and 16 for mat4 in row
// major order.
func (p *Program) UpdateUniform(name string, data []float32) error {
	u, ok := p.uniforms[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownUniform, name)
	}
	u.typ.set(u.location, data)
	return nil
}

// Use makes this program current for subsequent draws.
func (p *Program) Use() {
	gl.UseProgram(p.prog)
}

// Unuse restores the no-program state.
func (p *Program) Unuse() {
	gl.UseProgram(0)
}

func (p *Program) String() string {
	return fmt.Sprintf("Program(prog=%d)", p.prog)
}
