package avfields

// FormatContext borrows an AVFormatContext.
type FormatContext struct {
	ptr uintptr
}

// FormatContextFromPtr wraps an existing AVFormatContext pointer without
// taking ownership.
func FormatContextFromPtr(ptr uintptr) FormatContext {
	return FormatContext{ptr: ptr}
}

// AllocFormatContext allocates an AVFormatContext with no I/O attached.
// Free it with FreeFormatContext.
func AllocFormatContext() (FormatContext, error) {
	if err := Load(); err != nil {
		return FormatContext{}, err
	}
	ptr := streamAvFmtAlloc()
	if ptr == 0 {
		return FormatContext{}, errAllocFailed
	}
	return FormatContext{ptr: ptr}, nil
}

// FreeFormatContext frees a context allocated with AllocFormatContext
// together with its streams. Passing the zero value is a no-op.
func FreeFormatContext(f FormatContext) {
	if f.ptr != 0 {
		streamAvFmtFree(f.ptr)
	}
}

func (f FormatContext) Ptr() uintptr { return f.ptr }
func (f FormatContext) IsNil() bool  { return f.ptr == 0 }

// NewStream appends a stream to the container. The stream is owned by the
// format context and freed with it.
func (f FormatContext) NewStream() (Stream, error) {
	ptr := streamAvFmtNewStream(f.ptr)
	if ptr == 0 {
		return Stream{}, errAllocFailed
	}
	return Stream{ptr: ptr}, nil
}

// NbStreams returns the number of streams in the container.
func (f FormatContext) NbStreams() int {
	return int(streamAvFmtNbStreams(f.ptr))
}

// Stream returns the stream at index. The returned handle is nil (IsNil)
// when index is out of range.
func (f FormatContext) Stream(index int) Stream {
	if index < 0 {
		return Stream{}
	}
	return Stream{ptr: streamAvFmtStream(f.ptr, uint32(index))}
}

// Duration returns the container duration in AV_TIME_BASE units.
func (f FormatContext) Duration() int64 {
	return streamAvFmtDuration(f.ptr)
}

// OutputFormatFlags returns oformat->flags, or 0 when no output format is
// attached.
func (f FormatContext) OutputFormatFlags() int {
	return int(streamAvFmtOformatFlags(f.ptr))
}

// Stream borrows an AVStream owned by its format context.
type Stream struct {
	ptr uintptr
}

// StreamFromPtr wraps an existing AVStream pointer without taking ownership.
func StreamFromPtr(ptr uintptr) Stream {
	return Stream{ptr: ptr}
}

func (s Stream) Ptr() uintptr { return s.ptr }
func (s Stream) IsNil() bool  { return s.ptr == 0 }

// Index returns the stream's position within its container.
func (s Stream) Index() int { return int(streamAvStreamIndex(s.ptr)) }

// Duration returns the stream duration in stream time-base units.
func (s Stream) Duration() int64 { return streamAvStreamDuration(s.ptr) }

func (s Stream) TimeBase() Rational {
	var num, den int32
	streamAvStreamGetTimeBase(s.ptr, &num, &den)
	return Rational{Num: int(num), Den: int(den)}
}

func (s Stream) SetTimeBase(r Rational) {
	streamAvStreamSetTimeBase(s.ptr, int32(r.Num), int32(r.Den))
}

// CodecParameters returns the stream's codecpar. The parameters are owned
// by the stream.
func (s Stream) CodecParameters() CodecParameters {
	return CodecParameters{ptr: streamAvStreamCodecpar(s.ptr)}
}
