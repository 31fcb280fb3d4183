package avfields

// BufferRef borrows an AVBufferRef, FFmpeg's refcounted buffer reference.
// The zero value is the nil reference.
type BufferRef struct {
	ptr uintptr
}

// BufferRefFromPtr wraps an existing AVBufferRef pointer without taking
// ownership.
func BufferRefFromPtr(ptr uintptr) BufferRef {
	return BufferRef{ptr: ptr}
}

// AllocBuffer allocates a refcounted buffer of size bytes with an initial
// refcount of 1. Release it with Unref.
func AllocBuffer(size int) (BufferRef, error) {
	if err := Load(); err != nil {
		return BufferRef{}, err
	}
	ptr := streamAvBufferAlloc(int32(size))
	if ptr == 0 {
		return BufferRef{}, errAllocFailed
	}
	return BufferRef{ptr: ptr}, nil
}

func (b BufferRef) Ptr() uintptr { return b.ptr }
func (b BufferRef) IsNil() bool  { return b.ptr == 0 }

// Ref creates a new reference to the same underlying buffer, incrementing
// its refcount. Returns the nil reference on failure or when b is nil.
func (b BufferRef) Ref() BufferRef {
	if b.ptr == 0 {
		return BufferRef{}
	}
	return BufferRef{ptr: streamAvBufferRef(b.ptr)}
}

// Unref releases the reference and zeroes the handle's pointer on the C
// side. The underlying buffer is freed when the last reference goes away.
// Calling Unref on the nil reference is a no-op.
func (b *BufferRef) Unref() {
	if b.ptr != 0 {
		streamAvBufferUnref(b.ptr)
		b.ptr = 0
	}
}

// RefCount returns the buffer's current reference count, or 0 for the nil
// reference.
func (b BufferRef) RefCount() int {
	if b.ptr == 0 {
		return 0
	}
	return int(streamAvBufferRefcount(b.ptr))
}

// Data returns the buffer's data pointer.
func (b BufferRef) Data() uintptr {
	if b.ptr == 0 {
		return 0
	}
	return streamAvBufferData(b.ptr)
}

// Size returns the buffer's size in bytes.
func (b BufferRef) Size() int64 {
	if b.ptr == 0 {
		return 0
	}
	return streamAvBufferSize(b.ptr)
}

// AllocHWDeviceContext allocates an uninitialized hardware device context
// of the given AVHWDeviceType wrapped in a buffer reference. No device is
// opened; the allocation exists so device fields can be staged and handed
// around before initialization. Release with Unref.
func AllocHWDeviceContext(deviceType int) (BufferRef, error) {
	if err := Load(); err != nil {
		return BufferRef{}, err
	}
	ptr := streamAvHWDeviceCtxAlloc(int32(deviceType))
	if ptr == 0 {
		return BufferRef{}, errAllocFailed
	}
	return BufferRef{ptr: ptr}, nil
}

// AllocHWFramesContext allocates an uninitialized hardware frames context
// tied to deviceRef. The frames context takes its own reference to the
// device; the caller's deviceRef is untouched. Release with Unref.
func AllocHWFramesContext(deviceRef BufferRef) (BufferRef, error) {
	if err := Load(); err != nil {
		return BufferRef{}, err
	}
	if deviceRef.ptr == 0 {
		return BufferRef{}, errAllocFailed
	}
	ptr := streamAvHWFrameCtxAlloc(deviceRef.ptr)
	if ptr == 0 {
		return BufferRef{}, errAllocFailed
	}
	return BufferRef{ptr: ptr}, nil
}

// HWFramesContext views a buffer reference as an AVHWFramesContext and
// exposes its geometry fields. The fields may only be written before the
// frames context is initialized.
type HWFramesContext struct {
	ref BufferRef
}

// AsHWFramesContext reinterprets ref, which must wrap an AVHWFramesContext
// allocation, as a frames-context field view.
func AsHWFramesContext(ref BufferRef) HWFramesContext {
	return HWFramesContext{ref: ref}
}

func (h HWFramesContext) Format() int       { return int(streamAvHWFramesGetFormat(h.ref.ptr)) }
func (h HWFramesContext) SetFormat(v int)   { streamAvHWFramesSetFormat(h.ref.ptr, int32(v)) }
func (h HWFramesContext) SWFormat() int     { return int(streamAvHWFramesGetSWFormat(h.ref.ptr)) }
func (h HWFramesContext) SetSWFormat(v int) { streamAvHWFramesSetSWFormat(h.ref.ptr, int32(v)) }
func (h HWFramesContext) Width() int        { return int(streamAvHWFramesGetWidth(h.ref.ptr)) }
func (h HWFramesContext) SetWidth(v int)    { streamAvHWFramesSetWidth(h.ref.ptr, int32(v)) }
func (h HWFramesContext) Height() int       { return int(streamAvHWFramesGetHeight(h.ref.ptr)) }
func (h HWFramesContext) SetHeight(v int)   { streamAvHWFramesSetHeight(h.ref.ptr, int32(v)) }

func (h HWFramesContext) InitialPoolSize() int {
	return int(streamAvHWFramesGetInitialPoolSize(h.ref.ptr))
}

func (h HWFramesContext) SetInitialPoolSize(v int) {
	streamAvHWFramesSetInitialPoolSize(h.ref.ptr, int32(v))
}
