// Package shader wraps an OpenGL shader program: two GLSL sources loaded
// from disk, compiled, linked, and driven through name-keyed uniform
// setters.
//
// Compile and link failures are logged, not fatal: the viewer is meant to
// survive bad shader edits and keep running with whatever program linked.
// Only an unreadable source file aborts construction.
package shader

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader owns exactly one linked GL program. Keep it behind the pointer
// returned by New; copying would create two owners of the same handle.
type Shader struct {
	program uint32
}

// New reads, compiles and links the two shader stages. A missing or
// unreadable source file is the only fatal path.
func New(vertexPath, fragmentPath string) (*Shader, error) {
	vsSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vertex shader: %w", err)
	}
	fsSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fragment shader: %w", err)
	}

	vs := compileStage(gl.VERTEX_SHADER, string(vsSource), vertexPath)
	fs := compileStage(gl.FRAGMENT_SHADER, string(fsSource), fragmentPath)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	logLinkError(program)

	// Only the linked program is retained; the per-stage objects are done.
	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	return &Shader{program: program}, nil
}

// Use binds the program as the active one for subsequent draw calls.
func (s *Shader) Use() {
	gl.UseProgram(s.program)
}

// Delete releases the GL program. The shader must not be used afterwards.
func (s *Shader) Delete() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

// ID returns the raw program handle.
func (s *Shader) ID() uint32 {
	return s.program
}

// Uniform setters look the location up by name on every call. A name that
// is absent from the linked program is a silent no-op: many draws set
// uniforms that only some shader variants declare.

func (s *Shader) SetMat4(name string, value mgl32.Mat4) {
	if loc := s.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

func (s *Shader) SetVec3(name string, value mgl32.Vec3) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform3f(loc, value.X(), value.Y(), value.Z())
	}
}

func (s *Shader) SetFloat(name string, value float32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1f(loc, value)
	}
}

func (s *Shader) SetInt(name string, value int32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1i(loc, value)
	}
}

func (s *Shader) location(name string) int32 {
	return gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
}

// compileStage compiles one stage and logs the compiler output on failure.
// The (possibly broken) shader object is returned either way so linking
// can still be attempted.
func compileStage(stageType uint32, source, name string) uint32 {
	shader := gl.CreateShader(stageType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		log.Printf("[shader compile error] %s\n%v", name, infoLog)
	}
	return shader
}

// logLinkError logs the linker output if linking failed. The program
// handle stays valid for binding, it just may not render anything.
func logLinkError(program uint32) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		log.Printf("[program link error]\n%v", infoLog)
	}
}
