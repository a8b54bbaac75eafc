// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"

	"sketchgl/glsl"
)

// Shader is a single compilation unit. Zero value is not usable, construct
// with NewShader or ShaderFromFile.
type Shader struct {
	stage  glsl.Stage
	source string
	shader uint32
	cfg    Config
}

type Options struct {
	// Version is the OpenGL version label the source is preprocessed for.
	// Empty means "2.0".
	Version string
	// SkipPreprocess submits the source to the compiler as-is.
	SkipPreprocess bool
	Config
}

func NewShader(source string, stage glsl.Stage, opts Options) (*Shader, error) {
	if _, err := glsl.ParseStage(string(stage)); err != nil {
		return nil, err
	}
	if opts.Version == "" {
		opts.Version = "2.0"
	}
	if !opts.SkipPreprocess {
		var err error
		source, err = glsl.Preprocess(source, stage, opts.Version)
		if err != nil {
			return nil, err
		}
	}
	return &Shader{
		stage:  stage,
		source: source,
		cfg:    opts.Config,
	}, nil
}

func ShaderFromFile(path string, stage glsl.Stage, opts Options) (*Shader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read shader %s", path)
	}
	return NewShader(string(src), stage, opts)
}

func stageEnum(stage glsl.Stage) uint32 {
	if stage == glsl.Vertex {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

// Compile creates the GL shader object and compiles the stored source. A
// non-empty compile log is reported through the Config sink together with
// the source; it fails the call only in Strict mode.
func (s *Shader) Compile() error {
	shader := gl.CreateShader(stageEnum(s.stage))
	csource, free := gl.Strs(s.source + "\x00")
	defer free()
	length := int32(len(s.source))
	gl.ShaderSource(shader, 1, csource, &length)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	log := shaderLog(shader)
	if log != "" {
		s.cfg.printf("%s shader compile log:\n%s\nsource:\n%s", s.stage, log, s.source)
	}
	if status == gl.FALSE && s.cfg.Strict {
		gl.DeleteShader(shader)
		return fmt.Errorf("failed to compile %s shader: %v", s.stage, log)
	}
	s.shader = shader
	runtime.AddCleanup(s, deleteShader, shader)
	return nil
}

func deleteShader(shader uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteShader(shader)
	})
}

func shaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// Handle returns the GL shader object name. It fails with ErrNotCompiled
// until Compile has succeeded.
func (s *Shader) Handle() (uint32, error) {
	if s.shader == 0 {
		return 0, ErrNotCompiled
	}
	return s.shader, nil
}

// Source returns what will be, or was, submitted to the compiler.
func (s *Shader) Source() string {
	return s.source
}
