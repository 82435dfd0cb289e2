package gl45

import (
	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/ardentgfx/ghi"
)

// texture implements ghi.Texture. Immutable-storage textures are
// allocated with glTextureStorage{1D,2D,3D}/glTextureStorage{2D,3D}
// Multisample and never reallocated; mutable textures may have
// their level count changed by CreateLOD, which recreates the
// underlying name (DSA storage calls are one-shot).
type texture struct {
	g        *GPU
	name     uint32
	uid      uint32
	target   uint32
	desc     ghi.TextureDesc
	mutable  bool
	view     bool
	bufBacked bool
}

func (g *GPU) NewTexture(desc *ghi.TextureDesc) (ghi.Texture, error) {
	return g.newTexture(desc, false, nil)
}

func (g *GPU) NewMutableTexture(desc *ghi.TextureDesc, initial []byte) (ghi.Texture, error) {
	return g.newTexture(desc, true, initial)
}

func (g *GPU) newTexture(desc *ghi.TextureDesc, mutable bool, initial []byte) (ghi.Texture, error) {
	target := textureTarget(desc.Type)
	var name uint32
	gl.CreateTextures(target, 1, &name)
	fmtGL := glInternalFormat(desc.Format)
	levels := desc.Levels
	if levels < 1 {
		levels = 1
	}

	switch desc.Type {
	case ghi.Texture1D:
		gl.TextureStorage1D(name, int32(levels), fmtGL, int32(desc.Size.Width))
	case ghi.Texture1DArray:
		gl.TextureStorage2D(name, int32(levels), fmtGL, int32(desc.Size.Width), int32(desc.Layers))
	case ghi.Texture2D, ghi.TextureRect:
		gl.TextureStorage2D(name, int32(levels), fmtGL, int32(desc.Size.Width), int32(desc.Size.Height))
	case ghi.TextureCube:
		gl.TextureStorage2D(name, int32(levels), fmtGL, int32(desc.Size.Width), int32(desc.Size.Height))
	case ghi.Texture2DArray, ghi.TextureCubeArray:
		gl.TextureStorage3D(name, int32(levels), fmtGL, int32(desc.Size.Width), int32(desc.Size.Height), int32(desc.Layers))
	case ghi.Texture3D:
		gl.TextureStorage3D(name, int32(levels), fmtGL, int32(desc.Size.Width), int32(desc.Size.Height), int32(desc.Size.Depth))
	case ghi.Texture2DMS:
		gl.TextureStorage2DMultisample(name, int32(desc.Samples), fmtGL, int32(desc.Size.Width), int32(desc.Size.Height), desc.FixedSampleLocations)
	case ghi.Texture2DArrayMS:
		gl.TextureStorage3DMultisample(name, int32(desc.Samples), fmtGL, int32(desc.Size.Width), int32(desc.Size.Height), int32(desc.Layers), desc.FixedSampleLocations)
	}

	if desc.Swizzle != [4]int{} {
		setSwizzle(name, desc.Swizzle)
	}

	t := &texture{g: g, name: name, uid: g.nextUID(), target: target, desc: *desc, mutable: mutable}
	if mutable && len(initial) > 0 {
		layout, typ := glDataFormat(inferDataType(desc.Format))
		gl.TextureSubImage2D(name, 0, 0, 0, int32(desc.Size.Width), int32(desc.Size.Height), layout, typ, gl.Ptr(&initial[0]))
	}
	return t, nil
}

// inferDataType picks a plausible upload DataType for a given
// internal format; exact round-tripping is the caller's job via
// WriteRect's explicit dataType parameter; this is used for
// NewMutableTexture's convenience initial-data path and by
// Backend.CopyBufferToTexture/CopyTextureToBuffer.
func inferDataType(f ghi.PixelFmt) ghi.DataType {
	switch ghi.Info(f).ClearType {
	case ghi.ClearFloat32:
		return ghi.F32x4
	case ghi.ClearInt32:
		return ghi.I32x4
	case ghi.ClearUInt32:
		return ghi.U32x4
	default:
		return ghi.U8x4
	}
}

func setSwizzle(name uint32, sw [4]int) {
	mapping := [4]int32{gl.RED, gl.GREEN, gl.BLUE, gl.ALPHA}
	var params [4]int32
	for i, s := range sw {
		if s >= 0 && s < 4 {
			params[i] = mapping[s]
		} else {
			params[i] = mapping[i]
		}
	}
	gl.TextureParameteriv(name, gl.TEXTURE_SWIZZLE_RGBA, &params[0])
}

func (g *GPU) NewBufferBackedTexture(dataType ghi.DataType, buf ghi.Buffer, offset, length int64) (ghi.Texture, error) {
	b, ok := buf.(*buffer)
	if !ok {
		return nil, &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "NewBufferBackedTexture: buf is not a gl45 buffer"}
	}
	internalFmt := glInternalFormat(ghi.DataTypeOf(dataType).EquivFormat)

	var name uint32
	gl.CreateTextures(gl.TEXTURE_BUFFER, 1, &name)
	gl.TextureBufferRange(name, internalFmt, b.name, offset, length)

	return &texture{
		g:         g,
		name:      name,
		uid:       g.nextUID(),
		target:    gl.TEXTURE_BUFFER,
		desc:      ghi.TextureDesc{Type: ghi.Texture1D, Format: ghi.DataTypeOf(dataType).EquivFormat},
		bufBacked: true,
	}, nil
}

func (t *texture) Destroy() {
	if t == nil || t.name == 0 {
		return
	}
	gl.DeleteTextures(1, &t.name)
	t.name = 0
}

func (t *texture) Type() ghi.TextureType { return t.desc.Type }
func (t *texture) Format() ghi.PixelFmt  { return t.desc.Format }
func (t *texture) Size() ghi.Dim3D       { return t.desc.Size }
func (t *texture) Layers() int {
	if t.desc.Layers < 1 {
		return 1
	}
	return t.desc.Layers
}
func (t *texture) Levels() int {
	if t.desc.Levels < 1 {
		return 1
	}
	return t.desc.Levels
}
func (t *texture) Samples() int {
	if t.desc.Samples < 1 {
		return 1
	}
	return t.desc.Samples
}
func (t *texture) ImmutableStorage() bool { return !t.mutable }
func (t *texture) BufferBacked() bool     { return t.bufBacked }
func (t *texture) IsView() bool           { return t.view }
func (t *texture) UID() uint32            { return t.uid }

func (t *texture) NewView(format ghi.PixelFmt, levels, layers ghi.Range) (ghi.Texture, error) {
	if t.mutable || t.bufBacked {
		return nil, &ghi.Error{Kind: ghi.EIncompatibleView, Reason: "NewView: parent must be an immutable, non-buffer-backed texture"}
	}
	viewType, ok := viewTypeOfExported(t.desc.Type, int(layers.Length))
	if !ok || !ghi.ViewCompatible(t.desc.Type, t.desc.Format, format, int(layers.Length)) {
		return nil, &ghi.Error{Kind: ghi.EIncompatibleView, Reason: "NewView: incompatible type/format/layer combination"}
	}
	var name uint32
	gl.GenTextures(1, &name)
	gl.TextureView(name, textureTarget(viewType), t.name, glInternalFormat(format),
		uint32(levels.Offset), uint32(levels.Length), uint32(layers.Offset), uint32(layers.Length))
	vd := t.desc
	vd.Type = viewType
	vd.Format = format
	vd.Levels = int(levels.Length)
	vd.Layers = int(layers.Length)
	return &texture{g: t.g, name: name, uid: t.g.nextUID(), target: textureTarget(viewType), desc: vd, view: true}, nil
}

// viewTypeOfExported re-derives the view's reported TextureType; the
// ghi package keeps this logic unexported since only ViewCompatible
// needs to be public, so the simple cases relevant to view creation
// are reproduced here rather than duplicating ghi's internal table.
func viewTypeOfExported(parent ghi.TextureType, layers int) (ghi.TextureType, bool) {
	switch parent {
	case ghi.Texture1D, ghi.Texture1DArray:
		if layers <= 1 {
			return ghi.Texture1D, true
		}
		return ghi.Texture1DArray, true
	case ghi.Texture2D, ghi.Texture2DArray:
		if layers <= 1 {
			return ghi.Texture2D, true
		}
		return ghi.Texture2DArray, true
	case ghi.Texture2DMS, ghi.Texture2DArrayMS:
		if layers <= 1 {
			return ghi.Texture2DMS, true
		}
		return ghi.Texture2DArrayMS, true
	case ghi.TextureCube, ghi.TextureCubeArray:
		switch {
		case layers == 6:
			return ghi.TextureCube, true
		case layers > 6 && layers%6 == 0:
			return ghi.TextureCubeArray, true
		}
		return 0, false
	case ghi.Texture3D, ghi.TextureRect:
		if layers <= 1 {
			return parent, true
		}
		return 0, false
	}
	return 0, false
}

func (t *texture) CreateLOD(levels int) error {
	if !t.mutable {
		return &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "CreateLOD: texture is immutable"}
	}
	var name uint32
	gl.CreateTextures(t.target, 1, &name)
	fmtGL := glInternalFormat(t.desc.Format)
	switch t.desc.Type {
	case ghi.Texture1D:
		gl.TextureStorage1D(name, int32(levels), fmtGL, int32(t.desc.Size.Width))
	case ghi.Texture2D, ghi.TextureRect, ghi.TextureCube, ghi.Texture1DArray:
		gl.TextureStorage2D(name, int32(levels), fmtGL, int32(t.desc.Size.Width), int32(t.desc.Size.Height))
	default:
		gl.TextureStorage3D(name, int32(levels), fmtGL, int32(t.desc.Size.Width), int32(t.desc.Size.Height), int32(t.desc.Size.Depth))
	}
	gl.DeleteTextures(1, &t.name)
	t.name = name
	t.desc.Levels = levels
	return nil
}

func (t *texture) GenerateMips() error {
	gl.GenerateTextureMipmap(t.name)
	return nil
}

func (t *texture) ReadRect(layer, level int, off ghi.Off3D, size ghi.Dim3D, dataType ghi.DataType, dst []byte) error {
	if len(dst) == 0 {
		return nil
	}
	format, typ := glDataFormat(dataType)
	z := layer
	if z < off.Z {
		z = off.Z
	}
	gl.GetTextureSubImage(t.name, int32(level), int32(off.X), int32(off.Y), int32(z),
		int32(size.Width), int32(size.Height), int32(max(size.Depth, 1)),
		format, typ, int32(len(dst)), gl.Ptr(&dst[0]))
	return nil
}

func (t *texture) WriteRect(layer, level int, off ghi.Off3D, size ghi.Dim3D, dataType ghi.DataType, src []byte) error {
	if len(src) == 0 {
		return nil
	}
	format, typ := glDataFormat(dataType)
	p := gl.Ptr(&src[0])
	z := layer
	if z < off.Z {
		z = off.Z
	}
	switch t.desc.Type {
	case ghi.Texture1D:
		gl.TextureSubImage1D(t.name, int32(level), int32(off.X), int32(size.Width), format, typ, p)
	case ghi.Texture2D, ghi.TextureRect, ghi.Texture1DArray:
		gl.TextureSubImage2D(t.name, int32(level), int32(off.X), int32(off.Y), int32(size.Width), int32(size.Height), format, typ, p)
	default:
		gl.TextureSubImage3D(t.name, int32(level), int32(off.X), int32(off.Y), int32(z),
			int32(size.Width), int32(size.Height), int32(max(size.Depth, 1)), format, typ, p)
	}
	return nil
}

func (t *texture) Invalidate() error {
	gl.InvalidateTexImage(t.name, 0)
	return nil
}

func (t *texture) InvalidateRect(layer, level int, off ghi.Off3D, size ghi.Dim3D) error {
	gl.InvalidateTexSubImage(t.name, int32(level), int32(off.X), int32(off.Y), int32(off.Z),
		int32(size.Width), int32(size.Height), int32(max(size.Depth, 1)))
	return nil
}

