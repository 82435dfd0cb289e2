package ghi

// PixelFmt describes the internal format of a texture. The set
// covers color (unorm/snorm/float/int/uint in 8/16/32-bit, plus the
// packed and sRGB formats), compressed (RGTC, BPTC, S3TC and their
// sRGB variants) and depth/stencil formats. It is not the whole
// OpenGL 4.5 core list: three-channel RGB formats other than SRGB8,
// and the one- and two-channel 16-bit unorm/snorm formats, have no
// member.
type PixelFmt int

// Color formats, 8-bit channels.
const (
	RGBA8unorm PixelFmt = iota
	RGBA8snorm
	RGBA8sRGB
	BGRA8unorm
	BGRA8sRGB
	RG8unorm
	RG8snorm
	R8unorm
	R8snorm
	RGBA8uint
	RGBA8int
	RG8uint
	RG8int
	R8uint
	R8int

	// 16-bit channels.
	RGBA16unorm
	RGBA16snorm
	RGBA16float
	RGBA16uint
	RGBA16int
	RG16float
	RG16uint
	RG16int
	R16float
	R16uint
	R16int

	// 32-bit channels.
	RGBA32float
	RGBA32uint
	RGBA32int
	RG32float
	RG32uint
	RG32int
	R32float
	R32uint
	R32int

	// Packed formats.
	R3G3B2
	RGB5A1
	RGB10A2unorm
	RGB10A2uint
	R11G11B10float
	RGB9E5

	// sRGB, uncompressed.
	SRGB8
	SRGB8Alpha8

	// Compressed: RGTC.
	RGTC1unorm
	RGTC1snorm
	RGTC2unorm
	RGTC2snorm

	// Compressed: BPTC.
	BPTCrgbaUnorm
	BPTCsRGBAlpha
	BPTCrgbFloat
	BPTCrgbUFloat

	// Compressed: S3TC (DXT).
	S3TCrgbaDXT1
	S3TCrgbDXT1
	S3TCrgbaDXT3
	S3TCrgbaDXT5
	S3TCsRGBAlphaDXT1
	S3TCsRGBDXT1
	S3TCsRGBAlphaDXT3
	S3TCsRGBAlphaDXT5

	// Depth/stencil.
	Stencil1
	Stencil4
	Stencil8
	Stencil16
	Depth16unorm
	Depth24unorm
	Depth32unorm
	Depth32float
	Depth24Stencil8
	Depth32floatStencil8
)

// ClearType is the data interpretation a texture's clear path
// must use for an attachment of a given PixelFmt.
type ClearType int

// Clear types.
const (
	ClearFloat32 ClearType = iota
	ClearInt32
	ClearUInt32
	ClearStencilOnly
	ClearDepthOnly
	ClearDepthStencil
)

// FormatInfo is a single row of the pixel-format capability table:
// the clear-type the command recorder must use when clearing an
// attachment of this format, and the GLSL image-format-qualifier
// string for image-load-store bindings.
type FormatInfo struct {
	ClearType ClearType
	ImageQual string
	compat    int // view compatibility class, internal use
}

// compatibility classes for view creation (ViewCompatible).
const (
	classNone = iota
	class8
	class16
	class32
	class32x2
	class32x3
	class32x4
	class64
	class128
	classRGTC
	classBPTC
	classS3TC
	classDepth
)

var formatTable = map[PixelFmt]FormatInfo{
	RGBA8unorm: {ClearFloat32, "rgba8", class32},
	RGBA8snorm: {ClearFloat32, "rgba8_snorm", class32},
	RGBA8sRGB:  {ClearFloat32, "", class32},
	BGRA8unorm: {ClearFloat32, "", class32},
	BGRA8sRGB:  {ClearFloat32, "", class32},
	RG8unorm:   {ClearFloat32, "rg8", class16},
	RG8snorm:   {ClearFloat32, "rg8_snorm", class16},
	R8unorm:    {ClearFloat32, "r8", class8},
	R8snorm:    {ClearFloat32, "r8_snorm", class8},
	RGBA8uint:  {ClearUInt32, "rgba8ui", class32},
	RGBA8int:   {ClearInt32, "rgba8i", class32},
	RG8uint:    {ClearUInt32, "rg8ui", class16},
	RG8int:     {ClearInt32, "rg8i", class16},
	R8uint:     {ClearUInt32, "r8ui", class8},
	R8int:      {ClearInt32, "r8i", class8},

	RGBA16unorm: {ClearFloat32, "rgba16", class64},
	RGBA16snorm: {ClearFloat32, "rgba16_snorm", class64},
	RGBA16float: {ClearFloat32, "rgba16f", class64},
	RGBA16uint:  {ClearUInt32, "rgba16ui", class64},
	RGBA16int:   {ClearInt32, "rgba16i", class64},
	RG16float:   {ClearFloat32, "rg16f", class32},
	RG16uint:    {ClearUInt32, "rg16ui", class32},
	RG16int:     {ClearInt32, "rg16i", class32},
	R16float:    {ClearFloat32, "r16f", class16},
	R16uint:     {ClearUInt32, "r16ui", class16},
	R16int:      {ClearInt32, "r16i", class16},

	RGBA32float: {ClearFloat32, "rgba32f", class128},
	RGBA32uint:  {ClearUInt32, "rgba32ui", class128},
	RGBA32int:   {ClearInt32, "rgba32i", class128},
	RG32float:   {ClearFloat32, "rg32f", class64},
	RG32uint:    {ClearUInt32, "rg32ui", class64},
	RG32int:     {ClearInt32, "rg32i", class64},
	R32float:    {ClearFloat32, "r32f", class32},
	R32uint:     {ClearUInt32, "r32ui", class32},
	R32int:      {ClearInt32, "r32i", class32},

	R3G3B2:         {ClearFloat32, "", class8},
	RGB5A1:         {ClearFloat32, "rgb5_a1", class16},
	RGB10A2unorm:   {ClearFloat32, "rgb10_a2", class32},
	RGB10A2uint:    {ClearUInt32, "rgb10_a2ui", class32},
	R11G11B10float: {ClearFloat32, "r11f_g11f_b10f", class32},
	RGB9E5:         {ClearFloat32, "", class32},

	SRGB8:       {ClearFloat32, "", class32x3},
	SRGB8Alpha8: {ClearFloat32, "", class32},

	RGTC1unorm: {ClearFloat32, "", classRGTC},
	RGTC1snorm: {ClearFloat32, "", classRGTC},
	RGTC2unorm: {ClearFloat32, "", classRGTC},
	RGTC2snorm: {ClearFloat32, "", classRGTC},

	BPTCrgbaUnorm: {ClearFloat32, "", classBPTC},
	BPTCsRGBAlpha: {ClearFloat32, "", classBPTC},
	BPTCrgbFloat:  {ClearFloat32, "", classBPTC},
	BPTCrgbUFloat: {ClearFloat32, "", classBPTC},

	S3TCrgbaDXT1:      {ClearFloat32, "", classS3TC},
	S3TCrgbDXT1:       {ClearFloat32, "", classS3TC},
	S3TCrgbaDXT3:      {ClearFloat32, "", classS3TC},
	S3TCrgbaDXT5:      {ClearFloat32, "", classS3TC},
	S3TCsRGBAlphaDXT1: {ClearFloat32, "", classS3TC},
	S3TCsRGBDXT1:      {ClearFloat32, "", classS3TC},
	S3TCsRGBAlphaDXT3: {ClearFloat32, "", classS3TC},
	S3TCsRGBAlphaDXT5: {ClearFloat32, "", classS3TC},

	Stencil1:             {ClearStencilOnly, "", classDepth},
	Stencil4:             {ClearStencilOnly, "", classDepth},
	Stencil8:              {ClearStencilOnly, "", classDepth},
	Stencil16:             {ClearStencilOnly, "", classDepth},
	Depth16unorm:          {ClearDepthOnly, "", classDepth},
	Depth24unorm:          {ClearDepthOnly, "", classDepth},
	Depth32unorm:          {ClearDepthOnly, "", classDepth},
	Depth32float:          {ClearDepthOnly, "r32f", classDepth},
	Depth24Stencil8:       {ClearDepthStencil, "", classDepth},
	Depth32floatStencil8:  {ClearDepthStencil, "", classDepth},
}

// Info returns the FormatInfo row for f.
func Info(f PixelFmt) FormatInfo { return formatTable[f] }

func formatCompatClass(f PixelFmt) int { return formatTable[f].compat }

// DataType describes the layout of linear data used to populate
// buffers, vertex attributes and buffer-backed textures. Every
// entry maps bijectively to (base type, component count, component
// size, normalized, equivalent PixelFmt).
type DataType int

// Data types: every combination of component count (1-4),
// component type, and (where applicable) a normalized variant.
const (
	I8 DataType = iota
	I8x2
	I8x3
	I8x4
	U8
	U8x2
	U8x3
	U8x4
	I8norm
	I8x2norm
	I8x3norm
	I8x4norm
	U8norm
	U8x2norm
	U8x3norm
	U8x4norm

	I16
	I16x2
	I16x3
	I16x4
	U16
	U16x2
	U16x3
	U16x4
	I16norm
	I16x2norm
	I16x3norm
	I16x4norm
	U16norm
	U16x2norm
	U16x3norm
	U16x4norm

	I32
	I32x2
	I32x3
	I32x4
	U32
	U32x2
	U32x3
	U32x4

	H16
	H16x2
	H16x3
	H16x4

	F32
	F32x2
	F32x3
	F32x4

	D64
	D64x2
	D64x3
	D64x4
)

// DataTypeInfo describes a DataType's physical layout.
type DataTypeInfo struct {
	BaseType      string // "int8", "uint8", "int16", ..., "half", "float", "double"
	Components    int
	ComponentSize int
	Normalized    bool
	EquivFormat   PixelFmt
}

var dataTypeTable = buildDataTypeTable()

func buildDataTypeTable() map[DataType]DataTypeInfo {
	m := make(map[DataType]DataTypeInfo)
	add := func(dt DataType, base string, n, size int, norm bool, eq PixelFmt) {
		m[dt] = DataTypeInfo{base, n, size, norm, eq}
	}
	add(I8, "int8", 1, 1, false, R8int)
	add(I8x2, "int8", 2, 1, false, RG8int)
	add(I8x3, "int8", 3, 1, false, RG8int)
	add(I8x4, "int8", 4, 1, false, RGBA8int)
	add(U8, "uint8", 1, 1, false, R8uint)
	add(U8x2, "uint8", 2, 1, false, RG8uint)
	add(U8x3, "uint8", 3, 1, false, RG8uint)
	add(U8x4, "uint8", 4, 1, false, RGBA8uint)
	add(I8norm, "int8", 1, 1, true, R8snorm)
	add(I8x2norm, "int8", 2, 1, true, RG8snorm)
	add(I8x3norm, "int8", 3, 1, true, RG8snorm)
	add(I8x4norm, "int8", 4, 1, true, RGBA8snorm)
	add(U8norm, "uint8", 1, 1, true, R8unorm)
	add(U8x2norm, "uint8", 2, 1, true, RG8unorm)
	add(U8x3norm, "uint8", 3, 1, true, RG8unorm)
	add(U8x4norm, "uint8", 4, 1, true, RGBA8unorm)

	add(I16, "int16", 1, 2, false, R16int)
	add(I16x2, "int16", 2, 2, false, RG16int)
	add(I16x3, "int16", 3, 2, false, RG16int)
	add(I16x4, "int16", 4, 2, false, RGBA16int)
	add(U16, "uint16", 1, 2, false, R16uint)
	add(U16x2, "uint16", 2, 2, false, RG16uint)
	add(U16x3, "uint16", 3, 2, false, RG16uint)
	add(U16x4, "uint16", 4, 2, false, RGBA16uint)
	add(I16norm, "int16", 1, 2, true, R16int)
	add(I16x2norm, "int16", 2, 2, true, RG16int)
	add(I16x3norm, "int16", 3, 2, true, RG16int)
	add(I16x4norm, "int16", 4, 2, true, RGBA16snorm)
	add(U16norm, "uint16", 1, 2, true, R16uint)
	add(U16x2norm, "uint16", 2, 2, true, RG16uint)
	add(U16x3norm, "uint16", 3, 2, true, RG16uint)
	add(U16x4norm, "uint16", 4, 2, true, RGBA16unorm)

	add(I32, "int32", 1, 4, false, R32int)
	add(I32x2, "int32", 2, 4, false, RG32int)
	add(I32x3, "int32", 3, 4, false, RG32int)
	add(I32x4, "int32", 4, 4, false, RGBA32int)
	add(U32, "uint32", 1, 4, false, R32uint)
	add(U32x2, "uint32", 2, 4, false, RG32uint)
	add(U32x3, "uint32", 3, 4, false, RG32uint)
	add(U32x4, "uint32", 4, 4, false, RGBA32uint)

	add(H16, "half", 1, 2, false, R16float)
	add(H16x2, "half", 2, 2, false, RG16float)
	add(H16x3, "half", 3, 2, false, RG16float)
	add(H16x4, "half", 4, 2, false, RGBA16float)

	add(F32, "float", 1, 4, false, R32float)
	add(F32x2, "float", 2, 4, false, RG32float)
	add(F32x3, "float", 3, 4, false, RG32float)
	add(F32x4, "float", 4, 4, false, RGBA32float)

	add(D64, "double", 1, 8, false, R32float)
	add(D64x2, "double", 2, 8, false, RG32float)
	add(D64x3, "double", 3, 8, false, RG32float)
	add(D64x4, "double", 4, 8, false, RGBA32float)
	return m
}

// DataTypeOf returns the layout description for dt.
func DataTypeOf(dt DataType) DataTypeInfo { return dataTypeTable[dt] }
