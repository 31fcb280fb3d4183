package avfields

import "unsafe"

// Packet borrows an AVPacket.
type Packet struct {
	ptr uintptr
}

// PacketFromPtr wraps an existing AVPacket pointer without taking ownership.
func PacketFromPtr(ptr uintptr) Packet {
	return Packet{ptr: ptr}
}

// AllocPacket allocates an empty AVPacket. Free it with FreePacket.
func AllocPacket() (Packet, error) {
	if err := Load(); err != nil {
		return Packet{}, err
	}
	ptr := streamAvPktAlloc()
	if ptr == 0 {
		return Packet{}, errAllocFailed
	}
	return Packet{ptr: ptr}, nil
}

// FreePacket frees a packet allocated with AllocPacket, unreferencing its
// payload. Passing the zero value is a no-op.
func FreePacket(p Packet) {
	if p.ptr != 0 {
		streamAvPktFree(p.ptr)
	}
}

func (p Packet) Ptr() uintptr { return p.ptr }
func (p Packet) IsNil() bool  { return p.ptr == 0 }

// Data returns the payload pointer, or 0 for an empty packet.
func (p Packet) Data() uintptr { return streamAvPktData(p.ptr) }

// Size returns the payload length in bytes.
func (p Packet) Size() int { return int(streamAvPktSize(p.ptr)) }

// Bytes returns the payload as a slice aliasing the packet's own buffer.
// The slice is valid only until the packet is unreferenced or rewritten;
// copy it to keep it. Returns nil for an empty packet.
func (p Packet) Bytes() []byte {
	data := streamAvPktData(p.ptr)
	size := streamAvPktSize(p.ptr)
	if data == 0 || size <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(data)), size)
}

func (p Packet) PTS() int64           { return streamAvPktGetPTS(p.ptr) }
func (p Packet) SetPTS(v int64)       { streamAvPktSetPTS(p.ptr, v) }
func (p Packet) DTS() int64           { return streamAvPktGetDTS(p.ptr) }
func (p Packet) SetDTS(v int64)       { streamAvPktSetDTS(p.ptr, v) }
func (p Packet) Duration() int64      { return streamAvPktGetDuration(p.ptr) }
func (p Packet) SetDuration(v int64)  { streamAvPktSetDuration(p.ptr, v) }
func (p Packet) Flags() int           { return int(streamAvPktGetFlags(p.ptr)) }
func (p Packet) SetFlags(v int)       { streamAvPktSetFlags(p.ptr, int32(v)) }
func (p Packet) StreamIndex() int     { return int(streamAvPktGetStreamIndex(p.ptr)) }
func (p Packet) SetStreamIndex(v int) { streamAvPktSetStreamIndex(p.ptr, int32(v)) }

// Pos returns the byte position in the input stream, or -1 when unknown.
func (p Packet) Pos() int64 { return streamAvPktGetPos(p.ptr) }

// IsKey reports whether the keyframe flag bit is set.
func (p Packet) IsKey() bool { return streamAvPktGetFlags(p.ptr)&PacketFlagKey != 0 }
