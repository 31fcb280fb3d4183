package avfields

import "unsafe"

// CodecContext borrows an AVCodecContext. The zero value is invalid; wrap a
// pointer obtained elsewhere with CodecContextFromPtr or allocate one with
// AllocCodecContext.
type CodecContext struct {
	ptr uintptr
}

// CodecContextFromPtr wraps an existing AVCodecContext pointer without
// taking ownership.
func CodecContextFromPtr(ptr uintptr) CodecContext {
	return CodecContext{ptr: ptr}
}

// AllocCodecContext allocates a bare AVCodecContext. Free it with
// FreeCodecContext.
func AllocCodecContext() (CodecContext, error) {
	if err := Load(); err != nil {
		return CodecContext{}, err
	}
	ptr := streamAvCtxAlloc()
	if ptr == 0 {
		return CodecContext{}, errAllocFailed
	}
	return CodecContext{ptr: ptr}, nil
}

// FreeCodecContext frees a context allocated with AllocCodecContext. Passing
// the zero value is a no-op.
func FreeCodecContext(c CodecContext) {
	if c.ptr != 0 {
		streamAvCtxFree(c.ptr)
	}
}

// Ptr exposes the underlying AVCodecContext pointer.
func (c CodecContext) Ptr() uintptr { return c.ptr }

// IsNil reports whether the handle wraps no context.
func (c CodecContext) IsNil() bool { return c.ptr == 0 }

func (c CodecContext) Width() int          { return int(streamAvCtxGetWidth(c.ptr)) }
func (c CodecContext) SetWidth(v int)      { streamAvCtxSetWidth(c.ptr, int32(v)) }
func (c CodecContext) Height() int         { return int(streamAvCtxGetHeight(c.ptr)) }
func (c CodecContext) SetHeight(v int)     { streamAvCtxSetHeight(c.ptr, int32(v)) }
func (c CodecContext) CodedWidth() int     { return int(streamAvCtxGetCodedWidth(c.ptr)) }
func (c CodecContext) SetCodedWidth(v int) { streamAvCtxSetCodedWidth(c.ptr, int32(v)) }
func (c CodecContext) CodedHeight() int    { return int(streamAvCtxGetCodedHeight(c.ptr)) }
func (c CodecContext) SetCodedHeight(v int) {
	streamAvCtxSetCodedHeight(c.ptr, int32(v))
}

// PixelFormat reads pix_fmt as the raw AVPixelFormat enum value.
func (c CodecContext) PixelFormat() int        { return int(streamAvCtxGetPixFmt(c.ptr)) }
func (c CodecContext) SetPixelFormat(v int)    { streamAvCtxSetPixFmt(c.ptr, int32(v)) }
func (c CodecContext) BitRate() int64          { return streamAvCtxGetBitRate(c.ptr) }
func (c CodecContext) SetBitRate(v int64)      { streamAvCtxSetBitRate(c.ptr, v) }
func (c CodecContext) RCMaxRate() int64        { return streamAvCtxGetRCMaxRate(c.ptr) }
func (c CodecContext) SetRCMaxRate(v int64)    { streamAvCtxSetRCMaxRate(c.ptr, v) }
func (c CodecContext) RCBufferSize() int       { return int(streamAvCtxGetRCBufferSize(c.ptr)) }
func (c CodecContext) SetRCBufferSize(v int)   { streamAvCtxSetRCBufferSize(c.ptr, int32(v)) }
func (c CodecContext) GOPSize() int            { return int(streamAvCtxGetGOPSize(c.ptr)) }
func (c CodecContext) SetGOPSize(v int)        { streamAvCtxSetGOPSize(c.ptr, int32(v)) }
func (c CodecContext) MaxBFrames() int         { return int(streamAvCtxGetMaxBFrames(c.ptr)) }
func (c CodecContext) SetMaxBFrames(v int)     { streamAvCtxSetMaxBFrames(c.ptr, int32(v)) }
func (c CodecContext) ThreadCount() int        { return int(streamAvCtxGetThreadCount(c.ptr)) }
func (c CodecContext) SetThreadCount(v int)    { streamAvCtxSetThreadCount(c.ptr, int32(v)) }
func (c CodecContext) ThreadType() int         { return int(streamAvCtxGetThreadType(c.ptr)) }
func (c CodecContext) SetThreadType(v int)     { streamAvCtxSetThreadType(c.ptr, int32(v)) }
func (c CodecContext) ColorPrimaries() int     { return int(streamAvCtxGetColorPrimaries(c.ptr)) }
func (c CodecContext) SetColorPrimaries(v int) { streamAvCtxSetColorPrimaries(c.ptr, int32(v)) }
func (c CodecContext) ColorTRC() int           { return int(streamAvCtxGetColorTRC(c.ptr)) }
func (c CodecContext) SetColorTRC(v int)       { streamAvCtxSetColorTRC(c.ptr, int32(v)) }
func (c CodecContext) Colorspace() int         { return int(streamAvCtxGetColorspace(c.ptr)) }
func (c CodecContext) SetColorspace(v int)     { streamAvCtxSetColorspace(c.ptr, int32(v)) }
func (c CodecContext) ColorRange() int         { return int(streamAvCtxGetColorRange(c.ptr)) }
func (c CodecContext) SetColorRange(v int)     { streamAvCtxSetColorRange(c.ptr, int32(v)) }
func (c CodecContext) Flags() int              { return int(streamAvCtxGetFlags(c.ptr)) }
func (c CodecContext) SetFlags(v int)          { streamAvCtxSetFlags(c.ptr, int32(v)) }
func (c CodecContext) Flags2() int             { return int(streamAvCtxGetFlags2(c.ptr)) }
func (c CodecContext) SetFlags2(v int)         { streamAvCtxSetFlags2(c.ptr, int32(v)) }
func (c CodecContext) Profile() int            { return int(streamAvCtxGetProfile(c.ptr)) }
func (c CodecContext) SetProfile(v int)        { streamAvCtxSetProfile(c.ptr, int32(v)) }
func (c CodecContext) Level() int              { return int(streamAvCtxGetLevel(c.ptr)) }
func (c CodecContext) SetLevel(v int)          { streamAvCtxSetLevel(c.ptr, int32(v)) }
func (c CodecContext) SampleRate() int         { return int(streamAvCtxGetSampleRate(c.ptr)) }
func (c CodecContext) SetSampleRate(v int)     { streamAvCtxSetSampleRate(c.ptr, int32(v)) }
func (c CodecContext) SampleFormat() int       { return int(streamAvCtxGetSampleFmt(c.ptr)) }
func (c CodecContext) SetSampleFormat(v int)   { streamAvCtxSetSampleFmt(c.ptr, int32(v)) }
func (c CodecContext) FrameSize() int          { return int(streamAvCtxGetFrameSize(c.ptr)) }
func (c CodecContext) SetFrameSize(v int)      { streamAvCtxSetFrameSize(c.ptr, int32(v)) }

// TimeBase reads the time base as one pair; a concurrent SetTimeBase on the
// same context from another goroutine is still a data race.
func (c CodecContext) TimeBase() Rational {
	var num, den int32
	streamAvCtxGetTimeBase(c.ptr, &num, &den)
	return Rational{Num: int(num), Den: int(den)}
}

func (c CodecContext) SetTimeBase(r Rational) {
	streamAvCtxSetTimeBase(c.ptr, int32(r.Num), int32(r.Den))
}

func (c CodecContext) Framerate() Rational {
	var num, den int32
	streamAvCtxGetFramerate(c.ptr, &num, &den)
	return Rational{Num: int(num), Den: int(den)}
}

func (c CodecContext) SetFramerate(r Rational) {
	streamAvCtxSetFramerate(c.ptr, int32(r.Num), int32(r.Den))
}

func (c CodecContext) SampleAspectRatio() Rational {
	var num, den int32
	streamAvCtxGetSampleAspectRatio(c.ptr, &num, &den)
	return Rational{Num: int(num), Den: int(den)}
}

func (c CodecContext) SetSampleAspectRatio(r Rational) {
	streamAvCtxSetSampleAspectRatio(c.ptr, int32(r.Num), int32(r.Den))
}

// Channels reads the channel count regardless of which layout generation
// backs it.
func (c CodecContext) Channels() int { return int(streamAvCtxGetChannelCount(c.ptr)) }

// SetChannels stores a channel count and the canonical default layout for
// it, so both layout generations end up describing the same logical value.
func (c CodecContext) SetChannels(n int) { streamAvCtxSetChannelCount(c.ptr, int32(n)) }

// ChannelLayout reads the layout as a 64-bit bitmask. exact is false when
// the stored layout has no faithful bitmask form (custom channel orders,
// count-only layouts); the returned mask is then the canonical default for
// the channel count, or 0 when none exists.
func (c CodecContext) ChannelLayout() (mask uint64, exact bool) {
	var ex int32
	mask = streamAvCtxGetChannelLayout(c.ptr, &ex)
	return mask, ex != 0
}

// SetChannelLayout stores a layout bitmask and derives the channel count
// from its population count.
func (c CodecContext) SetChannelLayout(mask uint64) {
	streamAvCtxSetChannelLayout(c.ptr, mask)
}

// Extradata returns a copy of the codec extradata, or nil when unset.
func (c CodecContext) Extradata() []byte {
	ptr := streamAvCtxGetExtradata(c.ptr)
	size := streamAvCtxGetExtradataSize(c.ptr)
	if ptr == 0 || size <= 0 {
		return nil
	}
	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size))
	return out
}

// SetExtradata replaces the extradata with a padded copy of data. A nil or
// empty slice clears the field.
func (c CodecContext) SetExtradata(data []byte) error {
	var p *byte
	if len(data) > 0 {
		p = &data[0]
	}
	return errFromCode(streamAvCtxSetExtradata(c.ptr, p, int32(len(data))))
}

// HWDeviceContext returns the raw AVBufferRef pointer of hw_device_ctx,
// or 0 when unset. The reference stays owned by the context.
func (c CodecContext) HWDeviceContext() BufferRef {
	return BufferRef{ptr: streamAvCtxGetHWDeviceCtx(c.ptr)}
}

// SetHWDeviceContext installs a new reference to ref as hw_device_ctx,
// releasing any reference the context already held. The caller's reference
// is untouched. A zero ref clears the field.
func (c CodecContext) SetHWDeviceContext(ref BufferRef) {
	streamAvCtxSetHWDeviceCtx(c.ptr, ref.ptr)
}

func (c CodecContext) HWFramesContext() BufferRef {
	return BufferRef{ptr: streamAvCtxGetHWFramesCtx(c.ptr)}
}

// SetHWFramesContext installs a new reference to ref as hw_frames_ctx, with
// the same ownership rules as SetHWDeviceContext.
func (c CodecContext) SetHWFramesContext(ref BufferRef) {
	streamAvCtxSetHWFramesCtx(c.ptr, ref.ptr)
}
