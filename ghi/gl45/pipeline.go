package gl45

import (
	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/gstate"
)

// pipeline implements ghi.Pipeline. A graphics pipeline is a
// program-pipeline object (GL_ARB_separate_shader_objects) stitching
// together the module(s) supplied in its GraphState, plus a VAO
// obtained from the shared gstate VAO cache keyed by the pipeline's
// binding/attribute tuple. A compute pipeline is a single bound
// program with no VAO.
type pipeline struct {
	uid       uint32
	compute   bool
	ppo       uint32
	graph     *ghi.GraphState
	comp      *ghi.CompState
	vao       *gstate.VAO
}

func (g *GPU) NewPipeline(state any) (ghi.Pipeline, error) {
	switch s := state.(type) {
	case *ghi.GraphState:
		return g.newGraphPipeline(s)
	case *ghi.CompState:
		return g.newCompPipeline(s)
	}
	return nil, &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "NewPipeline: state must be *GraphState or *CompState"}
}

func (g *GPU) newGraphPipeline(s *ghi.GraphState) (ghi.Pipeline, error) {
	var ppo uint32
	gl.CreateProgramPipelines(1, &ppo)
	useStage := func(fn *ghi.ShaderFunc, stage ghi.Stage) error {
		if fn == nil || fn.Module == nil {
			return nil
		}
		m, ok := fn.Module.(*shaderModule)
		if !ok {
			return &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "NewPipeline: shader module not created by this GPU"}
		}
		gl.UseProgramStages(ppo, glShaderStageBit(stage), m.program)
		return nil
	}
	if err := useStage(&s.VertFunc, ghi.SVertex); err != nil {
		return nil, err
	}
	if err := useStage(&s.FragFunc, ghi.SFragment); err != nil {
		return nil, err
	}
	if err := useStage(s.TessCtrl, ghi.STessControl); err != nil {
		return nil, err
	}
	if err := useStage(s.TessEval, ghi.STessEval); err != nil {
		return nil, err
	}
	if err := useStage(s.Geom, ghi.SGeometry); err != nil {
		return nil, err
	}

	st := gstate.Current()
	if st == nil {
		gl.DeleteProgramPipelines(1, &ppo)
		return nil, &ghi.Error{Kind: ghi.ENotAvailable, Reason: "NewPipeline: no current gstate.State set for this thread"}
	}
	vao, err := st.VAOCache().GetOrCreate(s.Bindings, s.Attribs)
	if err != nil {
		gl.DeleteProgramPipelines(1, &ppo)
		return nil, err
	}

	raster := g.dev.GetOrCreateRaster(s.Raster)
	blend := g.dev.GetOrCreateBlend(s.Blend)
	ds := g.dev.GetOrCreateDS(s.DS)
	graphCopy := *s
	graphCopy.Raster = *raster
	graphCopy.Blend = *blend
	graphCopy.DS = *ds

	g.dev.NotePipeline(1)
	return &pipeline{uid: g.nextUID(), ppo: ppo, graph: &graphCopy, vao: vao}, nil
}

func (g *GPU) newCompPipeline(s *ghi.CompState) (ghi.Pipeline, error) {
	var ppo uint32
	gl.CreateProgramPipelines(1, &ppo)
	if s.Func.Module != nil {
		m, ok := s.Func.Module.(*shaderModule)
		if !ok {
			return nil, &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "NewPipeline: shader module not created by this GPU"}
		}
		gl.UseProgramStages(ppo, gl.COMPUTE_SHADER_BIT, m.program)
	}
	g.dev.NotePipeline(1)
	comp := *s
	return &pipeline{uid: g.nextUID(), compute: true, ppo: ppo, comp: &comp}, nil
}

func (p *pipeline) Destroy() {
	if p == nil || p.ppo == 0 {
		return
	}
	gl.DeleteProgramPipelines(1, &p.ppo)
	p.ppo = 0
}

func (p *pipeline) IsCompute() bool         { return p.compute }
func (p *pipeline) UID() uint32             { return p.uid }
func (p *pipeline) Graph() *ghi.GraphState  { return p.graph }
func (p *pipeline) Compute() *ghi.CompState { return p.comp }
func (p *pipeline) VAO() any                { return p.vao }
