package ghi

// Filter is the type of sampler filters.
type Filter int

// Filters.
const (
	FNearest Filter = iota
	FLinear
)

// AddrMode is the type of sampler address modes.
type AddrMode int

// Address modes.
const (
	AWrap AddrMode = iota
	AMirror
	AClamp
	AMirrorClamp
	ABorder
)

// CmpFunc is the type of comparison functions, used both by
// sampler compare-mode and by depth/stencil state.
type CmpFunc int

// Comparison functions.
const (
	CNever CmpFunc = iota
	CLess
	CEqual
	CLessEqual
	CGreater
	CNotEqual
	CGreaterEqual
	CAlways
)

// SamplerDesc is a pure-value descriptor for a Sampler. It is
// hash-consed at the Device: two requests with an equal descriptor
// return the same handle.
type SamplerDesc struct {
	Filter      Filter
	AddrU       AddrMode
	AddrV       AddrMode
	AddrW       AddrMode
	LODBias     float32
	MinLOD      float32
	MaxLOD      float32
	MaxAniso    float32
	CompareToTex bool
	CompareFunc CmpFunc
	BorderColor [4]float32
	CubeSeamless bool
}

// Sampler is the interface that defines an image sampler. Sampler
// is a pure value: construction always goes through the Device's
// hash-consing cache, so two equal SamplerDescs always yield the
// same Sampler.
type Sampler interface {
	Destroyer

	// Desc returns the descriptor the sampler was created from.
	Desc() SamplerDesc
}
