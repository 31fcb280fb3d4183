package avfields

// NumDataPlanes is the fixed bound of a frame's data/linesize arrays
// (AV_NUM_DATA_POINTERS). Plane-indexed accessors return a zero sentinel at
// or beyond it.
const NumDataPlanes = 8

// NoPTSValue marks an unset timestamp (AV_NOPTS_VALUE).
const NoPTSValue int64 = -9223372036854775808

// Packet flag bits (AVPacket.flags).
const (
	PacketFlagKey     = 1 << 0 // packet contains a keyframe
	PacketFlagCorrupt = 1 << 1 // packet content is corrupted
)

// Thread type flags (AVCodecContext.thread_type).
const (
	ThreadFrame = 1 // decode more than one frame at once
	ThreadSlice = 2 // decode more than one part of a single frame at once
)

// Codec flag bits (AVCodecContext.flags).
const (
	CodecFlagPass1        = 1 << 9  // first pass of 2-pass rate control
	CodecFlagPass2        = 1 << 10 // second pass of 2-pass rate control
	CodecFlagGlobalHeader = 1 << 22 // global headers in extradata, not keyframes
	CodecFlagBitexact     = 1 << 23 // use only bitexact operations
)

// Codec flag bits (AVCodecContext.flags2).
const (
	CodecFlag2Fast        = 1 << 0  // allow non-compliant speedup tricks
	CodecFlag2NoOutput    = 1 << 2  // skip bitstream encoding
	CodecFlag2LocalHeader = 1 << 3  // global headers at every keyframe
	CodecFlag2ExportMVs   = 1 << 28 // export motion vectors into side data
)
