package gl45

import (
	"strings"

	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/ardentgfx/ghi"
)

// shaderModule implements ghi.ShaderModule as a single separable
// GLSL_SEPARABLE_PROGRAM, built with glCreateShaderProgramv. Each
// pipeline stage is its own program object; GraphState's per-stage
// ShaderFuncs are stitched together into one program pipeline object
// at NewPipeline time and bound as a unit via
// cmd.Backend.BindProgramPipeline.
type shaderModule struct {
	program uint32
	stage   ghi.Stage
}

func (g *GPU) NewShaderModule(stage ghi.Stage, sources []string) (ghi.ShaderModule, error) {
	if len(sources) == 0 {
		return nil, &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "NewShaderModule: no source provided"}
	}
	terminated := make([]string, len(sources))
	for i, s := range sources {
		if !strings.HasSuffix(s, "\x00") {
			s += "\x00"
		}
		terminated[i] = s
	}
	cstrs, free := gl.Strs(terminated...)
	defer free()
	program := gl.CreateShaderProgramv(glShaderStage(stage), int32(len(terminated)), cstrs)
	if program == 0 {
		return nil, &ghi.Error{Kind: ghi.ECompileFailed, Reason: "NewShaderModule: glCreateShaderProgramv returned 0"}
	}
	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == 0 {
		log := programInfoLog(program)
		gl.DeleteProgram(program)
		return nil, &ghi.Error{Kind: ghi.ECompileFailed, Reason: "NewShaderModule: compile/link failed", Log: log}
	}
	return &shaderModule{program: program, stage: stage}, nil
}

func programInfoLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetProgramInfoLog(program, n, nil, &buf[0])
	return string(buf[:len(buf)-1])
}

func (g *GPU) NewShaderModuleBinary(stage ghi.Stage, binary []byte) (ghi.ShaderModule, error) {
	if len(binary) < 4 {
		return nil, &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "NewShaderModuleBinary: binary too small"}
	}
	format := binaryFormat(binary)
	program := gl.CreateProgram()
	gl.ProgramParameteri(program, gl.PROGRAM_SEPARABLE, 1)
	gl.ProgramBinary(program, format, gl.Ptr(&binary[4]), int32(len(binary)-4))
	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == 0 {
		log := programInfoLog(program)
		gl.DeleteProgram(program)
		return nil, &ghi.Error{Kind: ghi.ELinkFailed, Reason: "NewShaderModuleBinary: glProgramBinary failed", Log: log}
	}
	return &shaderModule{program: program, stage: stage}, nil
}

// binaryFormat extracts the format the Binary method prepended to
// its payload: the 4 bytes ahead of the raw glGetProgramBinary data.
func binaryFormat(binary []byte) uint32 {
	return uint32(binary[0]) | uint32(binary[1])<<8 | uint32(binary[2])<<16 | uint32(binary[3])<<24
}

func (m *shaderModule) Destroy() {
	if m == nil || m.program == 0 {
		return
	}
	gl.DeleteProgram(m.program)
	m.program = 0
}

func (m *shaderModule) Stage() ghi.Stage { return m.stage }

// Binary retrieves the program binary via glGetProgramBinary and
// prepends its 4-byte format so NewShaderModuleBinary can round-trip
// it without the caller needing to track the format separately.
func (m *shaderModule) Binary() ([]byte, error) {
	var size int32
	gl.GetProgramiv(m.program, gl.PROGRAM_BINARY_LENGTH, &size)
	if size == 0 {
		return nil, &ghi.Error{Kind: ghi.ENotAvailable, Reason: "Binary: driver reported zero-length binary"}
	}
	buf := make([]byte, 4+int(size))
	var format uint32
	var length int32
	gl.GetProgramBinary(m.program, size, &length, &format, gl.Ptr(&buf[4]))
	buf[0] = byte(format)
	buf[1] = byte(format >> 8)
	buf[2] = byte(format >> 16)
	buf[3] = byte(format >> 24)
	return buf[:4+int(length)], nil
}
