package avfields

import "unsafe"

// CodecParameters borrows an AVCodecParameters.
type CodecParameters struct {
	ptr uintptr
}

// CodecParametersFromPtr wraps an existing AVCodecParameters pointer without
// taking ownership.
func CodecParametersFromPtr(ptr uintptr) CodecParameters {
	return CodecParameters{ptr: ptr}
}

// AllocCodecParameters allocates a zeroed AVCodecParameters. Free it with
// FreeCodecParameters. Parameters reached through Stream.CodecParameters
// belong to their stream and must not be freed here.
func AllocCodecParameters() (CodecParameters, error) {
	if err := Load(); err != nil {
		return CodecParameters{}, err
	}
	ptr := streamAvParAlloc()
	if ptr == 0 {
		return CodecParameters{}, errAllocFailed
	}
	return CodecParameters{ptr: ptr}, nil
}

func FreeCodecParameters(p CodecParameters) {
	if p.ptr != 0 {
		streamAvParFree(p.ptr)
	}
}

func (p CodecParameters) Ptr() uintptr { return p.ptr }
func (p CodecParameters) IsNil() bool  { return p.ptr == 0 }

func (p CodecParameters) CodecType() int     { return int(streamAvParGetCodecType(p.ptr)) }
func (p CodecParameters) SetCodecType(v int) { streamAvParSetCodecType(p.ptr, int32(v)) }
func (p CodecParameters) CodecID() int       { return int(streamAvParGetCodecID(p.ptr)) }
func (p CodecParameters) SetCodecID(v int)   { streamAvParSetCodecID(p.ptr, int32(v)) }

// Format is the pixel format for video parameters and the sample format for
// audio parameters.
func (p CodecParameters) Format() int         { return int(streamAvParGetFormat(p.ptr)) }
func (p CodecParameters) SetFormat(v int)     { streamAvParSetFormat(p.ptr, int32(v)) }
func (p CodecParameters) Width() int          { return int(streamAvParGetWidth(p.ptr)) }
func (p CodecParameters) SetWidth(v int)      { streamAvParSetWidth(p.ptr, int32(v)) }
func (p CodecParameters) Height() int         { return int(streamAvParGetHeight(p.ptr)) }
func (p CodecParameters) SetHeight(v int)     { streamAvParSetHeight(p.ptr, int32(v)) }
func (p CodecParameters) SampleRate() int     { return int(streamAvParGetSampleRate(p.ptr)) }
func (p CodecParameters) SetSampleRate(v int) { streamAvParSetSampleRate(p.ptr, int32(v)) }
func (p CodecParameters) BitRate() int64      { return streamAvParGetBitRate(p.ptr) }
func (p CodecParameters) SetBitRate(v int64)  { streamAvParSetBitRate(p.ptr, v) }
func (p CodecParameters) FrameSize() int      { return int(streamAvParGetFrameSize(p.ptr)) }
func (p CodecParameters) SetFrameSize(v int)  { streamAvParSetFrameSize(p.ptr, int32(v)) }

func (p CodecParameters) Channels() int     { return int(streamAvParGetChannelCount(p.ptr)) }
func (p CodecParameters) SetChannels(n int) { streamAvParSetChannelCount(p.ptr, int32(n)) }

// ChannelLayout reads the layout as a bitmask; see
// CodecContext.ChannelLayout for the meaning of exact.
func (p CodecParameters) ChannelLayout() (mask uint64, exact bool) {
	var ex int32
	mask = streamAvParGetChannelLayout(p.ptr, &ex)
	return mask, ex != 0
}

func (p CodecParameters) SetChannelLayout(mask uint64) {
	streamAvParSetChannelLayout(p.ptr, mask)
}

// Extradata returns a copy of the extradata, or nil when unset.
func (p CodecParameters) Extradata() []byte {
	ptr := streamAvParGetExtradata(p.ptr)
	size := streamAvParGetExtradataSize(p.ptr)
	if ptr == 0 || size <= 0 {
		return nil
	}
	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size))
	return out
}

// SetExtradata replaces the extradata with a padded copy of data. A nil or
// empty slice clears the field.
func (p CodecParameters) SetExtradata(data []byte) error {
	var b *byte
	if len(data) > 0 {
		b = &data[0]
	}
	return errFromCode(streamAvParSetExtradata(p.ptr, b, int32(len(data))))
}
