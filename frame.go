package avfields

// Frame borrows an AVFrame.
type Frame struct {
	ptr uintptr
}

// FrameFromPtr wraps an existing AVFrame pointer without taking ownership.
func FrameFromPtr(ptr uintptr) Frame {
	return Frame{ptr: ptr}
}

// AllocFrame allocates an empty AVFrame. Free it with FreeFrame.
func AllocFrame() (Frame, error) {
	if err := Load(); err != nil {
		return Frame{}, err
	}
	ptr := streamAvFrameAlloc()
	if ptr == 0 {
		return Frame{}, errAllocFailed
	}
	return Frame{ptr: ptr}, nil
}

// FreeFrame frees a frame allocated with AllocFrame and any buffers it
// references. Passing the zero value is a no-op.
func FreeFrame(f Frame) {
	if f.ptr != 0 {
		streamAvFrameFree(f.ptr)
	}
}

func (f Frame) Ptr() uintptr { return f.ptr }
func (f Frame) IsNil() bool  { return f.ptr == 0 }

func (f Frame) Width() int              { return int(streamAvFrameGetWidth(f.ptr)) }
func (f Frame) SetWidth(v int)          { streamAvFrameSetWidth(f.ptr, int32(v)) }
func (f Frame) Height() int             { return int(streamAvFrameGetHeight(f.ptr)) }
func (f Frame) SetHeight(v int)         { streamAvFrameSetHeight(f.ptr, int32(v)) }
func (f Frame) Format() int             { return int(streamAvFrameGetFormat(f.ptr)) }
func (f Frame) SetFormat(v int)         { streamAvFrameSetFormat(f.ptr, int32(v)) }
func (f Frame) PTS() int64              { return streamAvFrameGetPTS(f.ptr) }
func (f Frame) SetPTS(v int64)          { streamAvFrameSetPTS(f.ptr, v) }
func (f Frame) Duration() int64         { return streamAvFrameGetDuration(f.ptr) }
func (f Frame) SetDuration(v int64)     { streamAvFrameSetDuration(f.ptr, v) }
func (f Frame) PktDTS() int64           { return streamAvFrameGetPktDTS(f.ptr) }
func (f Frame) SetPktDTS(v int64)       { streamAvFrameSetPktDTS(f.ptr, v) }
func (f Frame) PictType() int           { return int(streamAvFrameGetPictType(f.ptr)) }
func (f Frame) SetPictType(v int)       { streamAvFrameSetPictType(f.ptr, int32(v)) }
func (f Frame) Flags() int              { return int(streamAvFrameGetFlags(f.ptr)) }
func (f Frame) SetFlags(v int)          { streamAvFrameSetFlags(f.ptr, int32(v)) }
func (f Frame) ColorPrimaries() int     { return int(streamAvFrameGetColorPrimaries(f.ptr)) }
func (f Frame) SetColorPrimaries(v int) { streamAvFrameSetColorPrimaries(f.ptr, int32(v)) }
func (f Frame) ColorTRC() int           { return int(streamAvFrameGetColorTRC(f.ptr)) }
func (f Frame) SetColorTRC(v int)       { streamAvFrameSetColorTRC(f.ptr, int32(v)) }
func (f Frame) Colorspace() int         { return int(streamAvFrameGetColorspace(f.ptr)) }
func (f Frame) SetColorspace(v int)     { streamAvFrameSetColorspace(f.ptr, int32(v)) }
func (f Frame) ColorRange() int         { return int(streamAvFrameGetColorRange(f.ptr)) }
func (f Frame) SetColorRange(v int)     { streamAvFrameSetColorRange(f.ptr, int32(v)) }
func (f Frame) NbSamples() int          { return int(streamAvFrameGetNbSamples(f.ptr)) }
func (f Frame) SetNbSamples(v int)      { streamAvFrameSetNbSamples(f.ptr, int32(v)) }
func (f Frame) SampleRate() int         { return int(streamAvFrameGetSampleRate(f.ptr)) }
func (f Frame) SetSampleRate(v int)     { streamAvFrameSetSampleRate(f.ptr, int32(v)) }

func (f Frame) TimeBase() Rational {
	var num, den int32
	streamAvFrameGetTimeBase(f.ptr, &num, &den)
	return Rational{Num: int(num), Den: int(den)}
}

func (f Frame) SetTimeBase(r Rational) {
	streamAvFrameSetTimeBase(f.ptr, int32(r.Num), int32(r.Den))
}

func (f Frame) SampleAspectRatio() Rational {
	var num, den int32
	streamAvFrameGetSampleAspectRatio(f.ptr, &num, &den)
	return Rational{Num: int(num), Den: int(den)}
}

func (f Frame) SetSampleAspectRatio(r Rational) {
	streamAvFrameSetSampleAspectRatio(f.ptr, int32(r.Num), int32(r.Den))
}

// IsKeyFrame reads the logical key-frame signal, whichever storage backs it
// in the linked FFmpeg.
func (f Frame) IsKeyFrame() bool {
	return streamAvFrameGetKey(f.ptr) != 0
}

// SetKeyFrame writes the key-frame signal. Under flag storage only the key
// bit of the frame flags word changes; other flag bits are preserved.
func (f Frame) SetKeyFrame(key bool) {
	v := int32(0)
	if key {
		v = 1
	}
	streamAvFrameSetKey(f.ptr, v)
}

func (f Frame) Channels() int     { return int(streamAvFrameGetChannelCount(f.ptr)) }
func (f Frame) SetChannels(n int) { streamAvFrameSetChannelCount(f.ptr, int32(n)) }

// ChannelLayout reads the frame layout as a bitmask; see
// CodecContext.ChannelLayout for the meaning of exact.
func (f Frame) ChannelLayout() (mask uint64, exact bool) {
	var ex int32
	mask = streamAvFrameGetChannelLayout(f.ptr, &ex)
	return mask, ex != 0
}

func (f Frame) SetChannelLayout(mask uint64) {
	streamAvFrameSetChannelLayout(f.ptr, mask)
}

// Data returns the plane pointer at index plane, or 0 when the index is
// outside [0, NumDataPlanes).
func (f Frame) Data(plane int) uintptr {
	return streamAvFrameData(f.ptr, int32(plane))
}

// SetData stores a plane pointer. Out-of-range indexes are ignored.
func (f Frame) SetData(plane int, data uintptr) {
	streamAvFrameSetData(f.ptr, int32(plane), data)
}

// Linesize returns the stride of plane, or 0 when the index is out of range.
func (f Frame) Linesize(plane int) int {
	return int(streamAvFrameLinesize(f.ptr, int32(plane)))
}

func (f Frame) SetLinesize(plane, linesize int) {
	streamAvFrameSetLinesize(f.ptr, int32(plane), int32(linesize))
}

// ExtendedDataPlane reads extended_data[plane]. While extended_data still
// aliases the fixed data array the bound is NumDataPlanes; once a wider
// array has been installed (SetExtendedData, or FFmpeg allocating for >8
// channels) indexes up to the channel count are reachable. Out-of-bounds
// indexes and a nil extended_data return 0, never reading past the array.
func (f Frame) ExtendedDataPlane(plane int) uintptr {
	return streamAvFrameExtendedDataPlane(f.ptr, int32(plane))
}

// SetExtendedData points extended_data at a caller-owned pointer array. The
// array must outlive its use by the frame; no ownership transfers.
func (f Frame) SetExtendedData(extendedData uintptr) {
	streamAvFrameSetExtendedData(f.ptr, extendedData)
}
