package gl45

import (
	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/ardentgfx/ghi"
)

// sampler implements ghi.Sampler. Samplers are never created
// directly by callers: GPU.Sampler hash-conses them through the
// Device so that two equal SamplerDescs always share one backend
// object, matching spec §4.2.
type sampler struct {
	name uint32
	desc ghi.SamplerDesc
}

// Sampler returns the canonical Sampler for desc, creating it on
// first request.
func (g *GPU) Sampler(desc ghi.SamplerDesc) (ghi.Sampler, error) {
	return g.dev.GetOrCreateSampler(desc, g.allocSampler)
}

func (g *GPU) allocSampler(desc ghi.SamplerDesc) (ghi.Sampler, error) {
	var name uint32
	gl.CreateSamplers(1, &name)

	mip := desc.MaxLOD > desc.MinLOD
	gl.SamplerParameteri(name, gl.TEXTURE_MIN_FILTER, int32(glFilter(desc.Filter, mip, desc.Filter == ghi.FLinear)))
	gl.SamplerParameteri(name, gl.TEXTURE_MAG_FILTER, int32(glFilter(desc.Filter, false, false)))
	gl.SamplerParameteri(name, gl.TEXTURE_WRAP_S, glAddrMode(desc.AddrU))
	gl.SamplerParameteri(name, gl.TEXTURE_WRAP_T, glAddrMode(desc.AddrV))
	gl.SamplerParameteri(name, gl.TEXTURE_WRAP_R, glAddrMode(desc.AddrW))
	gl.SamplerParameterf(name, gl.TEXTURE_LOD_BIAS, desc.LODBias)
	gl.SamplerParameterf(name, gl.TEXTURE_MIN_LOD, desc.MinLOD)
	gl.SamplerParameterf(name, gl.TEXTURE_MAX_LOD, desc.MaxLOD)
	if desc.MaxAniso > 1 {
		gl.SamplerParameterf(name, gl.TEXTURE_MAX_ANISOTROPY, desc.MaxAniso)
	}
	if desc.CompareToTex {
		gl.SamplerParameteri(name, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
		gl.SamplerParameteri(name, gl.TEXTURE_COMPARE_FUNC, glCmpFunc(desc.CompareFunc))
	} else {
		gl.SamplerParameteri(name, gl.TEXTURE_COMPARE_MODE, gl.NONE)
	}
	gl.SamplerParameterfv(name, gl.TEXTURE_BORDER_COLOR, &desc.BorderColor[0])

	return &sampler{name: name, desc: desc}, nil
}

func (s *sampler) Destroy() {
	if s == nil || s.name == 0 {
		return
	}
	gl.DeleteSamplers(1, &s.name)
	s.name = 0
}

func (s *sampler) Desc() ghi.SamplerDesc { return s.desc }
