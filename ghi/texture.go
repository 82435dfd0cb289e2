package ghi

// TextureType is the type variant of a Texture.
type TextureType int

// Texture types.
const (
	Texture1D TextureType = iota
	Texture1DArray
	Texture2D
	Texture2DMS
	Texture2DArray
	Texture2DArrayMS
	Texture3D
	TextureCube
	TextureCubeArray
	TextureRect
)

// Dim3D is a three-dimensional size. The fields that are
// meaningful for a given TextureType are documented on
// TextureDesc.
type Dim3D struct {
	Width, Height, Depth int
}

// Off3D is a three-dimensional offset.
type Off3D struct {
	X, Y, Z int
}

// TextureUsage is a mask of valid uses for a Texture.
type TextureUsage int

// Texture usage flags.
const (
	TexShaderRead TextureUsage = 1 << iota
	TexShaderWrite
	TexShaderSample
	TexRenderTarget
)

// TextureDesc describes the creation parameters of a Texture.
// Resolution uses Dim3D: Width/Height/Depth are interpreted
// according to Type (Depth is the Z extent for Texture3D and is
// ignored for the other types; the layer count of array types is
// Layers).
type TextureDesc struct {
	Type      TextureType
	Format    PixelFmt
	Size      Dim3D
	Layers    int
	Levels    int
	Samples   int
	FixedSampleLocations bool
	Swizzle   [4]int
	Usage     TextureUsage
}

// Texture is the interface that defines a GHI texture. Views share
// storage with a parent texture; a view may only be created over
// an immutable, non-buffer-backed parent of a compatible type and
// format (see ViewCompatible).
type Texture interface {
	Destroyer

	// Type returns the texture's type variant.
	Type() TextureType

	// Format returns the texture's internal pixel format.
	Format() PixelFmt

	// Size returns the texture's resolution, as passed at
	// creation (meaningful fields depend on Type).
	Size() Dim3D

	// Layers returns the number of array layers (1 for
	// non-array types).
	Layers() int

	// Levels returns the number of mip levels.
	Levels() int

	// Samples returns the configured sample count (1 if the
	// texture is not multisampled).
	Samples() int

	// ImmutableStorage reports whether the texture was created
	// with immutable storage.
	ImmutableStorage() bool

	// BufferBacked reports whether the texture's storage is a
	// view over a Buffer's memory.
	BufferBacked() bool

	// IsView reports whether the texture shares storage with a
	// parent texture.
	IsView() bool

	// UID returns the texture's monotonic identity.
	UID() uint32

	// NewView creates a view over the texture. Fails with
	// EIncompatibleView if the texture is buffer-backed, mutable,
	// or the requested type/format/range is incompatible.
	NewView(format PixelFmt, levels, layers Range) (Texture, error)

	// CreateLOD reallocates the texture's mip chain to contain
	// exactly levels mip levels (mutable textures only).
	CreateLOD(levels int) error

	// GenerateMips regenerates mip levels 1..Levels()-1 from
	// level 0.
	GenerateMips() error

	// ReadRect reads a sub-region of a given layer/level into
	// dst, using dataType to interpret dst's layout.
	ReadRect(layer, level int, off Off3D, size Dim3D, dataType DataType, dst []byte) error

	// WriteRect writes src into a sub-region of a given
	// layer/level, interpreting src's layout using dataType.
	WriteRect(layer, level int, off Off3D, size Dim3D, dataType DataType, src []byte) error

	// Invalidate hints that the whole texture's contents need not
	// be preserved.
	Invalidate() error

	// InvalidateRect hints that a sub-region's contents need not
	// be preserved.
	InvalidateRect(layer, level int, off Off3D, size Dim3D) error
}

// viewTypeOf maps a parent TextureType plus a requested layer
// count to the TextureType the resulting view must report,
// following the GL core view-compatibility rules: a view over a
// single layer of an array type drops the Array suffix; a view
// requesting more than one layer of a non-array type promotes it
// to the Array variant.
func viewTypeOf(parent TextureType, layers int) (TextureType, bool) {
	switch parent {
	case Texture1D, Texture1DArray:
		if layers <= 1 {
			return Texture1D, true
		}
		return Texture1DArray, true
	case Texture2D, Texture2DArray:
		if layers <= 1 {
			return Texture2D, true
		}
		return Texture2DArray, true
	case Texture2DMS, Texture2DArrayMS:
		if layers <= 1 {
			return Texture2DMS, true
		}
		return Texture2DArrayMS, true
	case TextureCube, TextureCubeArray:
		switch {
		case layers == 6:
			return TextureCube, true
		case layers > 6 && layers%6 == 0:
			return TextureCubeArray, true
		}
		return 0, false
	case Texture3D, TextureRect:
		if layers <= 1 {
			return parent, true
		}
		return 0, false
	}
	return 0, false
}

// ViewCompatible reports whether a view of viewFmt over a parent
// texture of type parentType/format parentFmt and the given
// requested layer count is permitted by the GL core rule set: the
// parent must be an immutable, non-buffer-backed texture (checked
// by the caller, since Texture itself does not expose mutability
// here), the formats must share the same compatibility class, and
// the layer count must map to a valid view TextureType.
func ViewCompatible(parentType TextureType, parentFmt, viewFmt PixelFmt, layers int) bool {
	if _, ok := viewTypeOf(parentType, layers); !ok {
		return false
	}
	return formatCompatClass(parentFmt) == formatCompatClass(viewFmt)
}
