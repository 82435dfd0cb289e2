package gl45

import (
	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/gstate"
)

// vaoHandle implements gstate.VAOHandle as a GL vertex-array object
// name. strides records each binding's byte stride, fixed at
// creation time per the VAO's VertexBinding list, so that
// Backend.BindVertexBuffer (which the cmd.Backend interface gives no
// stride parameter of its own) can still issue a correct
// glVertexArrayVertexBuffer call when a new buffer is bound to a
// slot.
type vaoHandle struct {
	name    uint32
	strides map[uint32]int32
}

func (h *vaoHandle) Destroy() {
	if h == nil || h.name == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &h.name)
	h.name = 0
}

// NewVAOFactory returns a gstate.VAOFactory that creates and
// programs a GL vertex array object: one glVertexArrayBindingDivisor
// call per VertexBinding (whose stride is recorded for later
// Backend.BindVertexBuffer calls), one glVertexArrayAttrib{Format,
// Binding} plus glEnableVertexArrayAttrib per VertexAttrib, per spec
// §4.3.
func NewVAOFactory() gstate.VAOFactory {
	return func(bindings []ghi.VertexBinding, attribs []ghi.VertexAttrib) (gstate.VAOHandle, error) {
		var name uint32
		gl.CreateVertexArrays(1, &name)
		strides := make(map[uint32]int32, len(bindings))
		for _, b := range bindings {
			divisor := b.Divisor
			if b.PerInstance && divisor == 0 {
				divisor = 1
			}
			gl.VertexArrayBindingDivisor(name, b.Binding, divisor)
			strides[b.Binding] = int32(b.Stride)
		}
		for _, a := range attribs {
			info := ghi.DataTypeOf(a.DataType)
			glType := dataTypeBaseTable[info.BaseType]
			switch vertexFmtOf(a.DataType) {
			case ghi.VInt, ghi.VUint:
				gl.VertexArrayAttribIFormat(name, a.Location, int32(info.Components), glType, a.Offset)
			case ghi.VDouble:
				gl.VertexArrayAttribLFormat(name, a.Location, int32(info.Components), glType, a.Offset)
			default:
				gl.VertexArrayAttribFormat(name, a.Location, int32(info.Components), glType, info.Normalized, a.Offset)
			}
			gl.VertexArrayAttribBinding(name, a.Location, a.Binding)
			gl.EnableVertexArrayAttrib(name, a.Location)
		}
		return &vaoHandle{name: name, strides: strides}, nil
	}
}

// vertexFmtOf infers the VertexFmt category a DataType should be
// programmed as: integer types route to the I-format entry points
// unless the type is normalized (in which case it is read back as
// float), doubles route to the L-format entry points, everything
// else uses the plain float-format entry point.
func vertexFmtOf(dt ghi.DataType) ghi.VertexFmt {
	info := ghi.DataTypeOf(dt)
	if info.BaseType == "double" {
		return ghi.VDouble
	}
	if info.Normalized {
		return ghi.VFloatNormalized
	}
	switch info.BaseType {
	case "int8", "int16", "int32":
		return ghi.VInt
	case "uint8", "uint16", "uint32":
		return ghi.VUint
	}
	return ghi.VFloat
}
