package avfields

import (
	"runtime"
	"testing"
	"unsafe"
)

func newTestFrame(t *testing.T) Frame {
	t.Helper()
	requireShim(t)
	f, err := AllocFrame()
	if err != nil {
		t.Fatalf("AllocFrame() error = %v", err)
	}
	t.Cleanup(func() { FreeFrame(f) })
	return f
}

func TestFrame_ScalarRoundTrip(t *testing.T) {
	f := newTestFrame(t)

	f.SetWidth(1280)
	f.SetHeight(720)
	f.SetFormat(0)
	f.SetPTS(90000)
	f.SetDuration(3000)
	f.SetPktDTS(89000)
	f.SetPictType(1)
	f.SetNbSamples(960)
	f.SetSampleRate(48000)
	f.SetColorRange(1)

	if got := f.Width(); got != 1280 {
		t.Errorf("Width() = %d, want 1280", got)
	}
	if got := f.Height(); got != 720 {
		t.Errorf("Height() = %d, want 720", got)
	}
	if got := f.PTS(); got != 90000 {
		t.Errorf("PTS() = %d, want 90000", got)
	}
	if got := f.Duration(); got != 3000 {
		t.Errorf("Duration() = %d, want 3000", got)
	}
	if got := f.PktDTS(); got != 89000 {
		t.Errorf("PktDTS() = %d, want 89000", got)
	}
	if got := f.PictType(); got != 1 {
		t.Errorf("PictType() = %d, want 1", got)
	}
	if got := f.NbSamples(); got != 960 {
		t.Errorf("NbSamples() = %d, want 960", got)
	}
	if got := f.SampleRate(); got != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", got)
	}
	if got := f.ColorRange(); got != 1 {
		t.Errorf("ColorRange() = %d, want 1", got)
	}

	f.SetTimeBase(Rational{Num: 1, Den: 30})
	if got := f.TimeBase(); got != (Rational{Num: 1, Den: 30}) {
		t.Errorf("TimeBase() = %v, want 1/30", got)
	}
	f.SetSampleAspectRatio(Rational{Num: 4, Den: 3})
	if got := f.SampleAspectRatio(); got != (Rational{Num: 4, Den: 3}) {
		t.Errorf("SampleAspectRatio() = %v, want 4/3", got)
	}
}

func TestFrame_KeyFrameRoundTrip(t *testing.T) {
	f := newTestFrame(t)

	if f.IsKeyFrame() {
		t.Error("new frame reports key frame")
	}
	f.SetKeyFrame(true)
	if !f.IsKeyFrame() {
		t.Error("IsKeyFrame() = false after SetKeyFrame(true)")
	}
	f.SetKeyFrame(false)
	if f.IsKeyFrame() {
		t.Error("IsKeyFrame() = true after SetKeyFrame(false)")
	}
}

// Under flag storage the key-frame setter must touch only its own bit of
// the flags word.
func TestFrame_KeyFramePreservesOtherFlags(t *testing.T) {
	f := newTestFrame(t)
	if KeyFrameStorage() != KeyFrameFlag {
		t.Skip("key frame stored outside flags in this build")
	}

	const otherBit = 1 << 3 // interlaced
	f.SetFlags(otherBit)

	f.SetKeyFrame(true)
	if f.Flags()&otherBit == 0 {
		t.Error("SetKeyFrame(true) cleared unrelated flag bit")
	}
	if !f.IsKeyFrame() {
		t.Error("key bit not set in flags")
	}

	f.SetKeyFrame(false)
	if f.Flags()&otherBit == 0 {
		t.Error("SetKeyFrame(false) cleared unrelated flag bit")
	}
	if f.IsKeyFrame() {
		t.Error("key bit still set in flags")
	}
}

func TestFrame_PlaneBounds(t *testing.T) {
	f := newTestFrame(t)

	buf, err := AllocBuffer(4096)
	if err != nil {
		t.Fatalf("AllocBuffer() error = %v", err)
	}
	defer buf.Unref()

	f.SetData(0, buf.Data())
	f.SetLinesize(0, 1280)
	if got := f.Data(0); got != buf.Data() {
		t.Errorf("Data(0) = %#x, want %#x", got, buf.Data())
	}
	if got := f.Linesize(0); got != 1280 {
		t.Errorf("Linesize(0) = %d, want 1280", got)
	}

	// Out-of-range plane indexes return the zero sentinel instead of
	// touching memory.
	tests := []int{-1, NumDataPlanes, NumDataPlanes + 3}
	for _, plane := range tests {
		if got := f.Data(plane); got != 0 {
			t.Errorf("Data(%d) = %#x, want 0", plane, got)
		}
		if got := f.Linesize(plane); got != 0 {
			t.Errorf("Linesize(%d) = %d, want 0", plane, got)
		}
		// Writes to the same indexes are dropped.
		f.SetData(plane, 0xdead)
		f.SetLinesize(plane, 99)
	}

	// The in-range plane survived the out-of-range writes.
	if got := f.Data(0); got != buf.Data() {
		t.Errorf("Data(0) = %#x after out-of-range writes, want %#x", got, buf.Data())
	}

	f.SetData(0, 0)
}

func TestFrame_ChannelLayout(t *testing.T) {
	f := newTestFrame(t)

	f.SetChannelLayout(0x3)
	mask, exact := f.ChannelLayout()
	if mask != 0x3 || !exact {
		t.Errorf("ChannelLayout() = %#x, %v, want 0x3, true", mask, exact)
	}
	if got := f.Channels(); got != 2 {
		t.Errorf("Channels() = %d, want 2", got)
	}

	f.SetChannels(1)
	if got := f.Channels(); got != 1 {
		t.Errorf("Channels() = %d, want 1", got)
	}

	// A count with no canonical layout reads back as a flagged fallback.
	if DefaultChannelLayout(9) == 0 {
		f.SetChannels(9)
		mask, exact = f.ChannelLayout()
		if exact {
			t.Error("ChannelLayout() exact = true for a count with no canonical layout")
		}
		if mask != 0 {
			t.Errorf("ChannelLayout() mask = %#x for 9 channels, want 0", mask)
		}
	}
}

func TestFrame_ExtendedData(t *testing.T) {
	f := newTestFrame(t)

	if got := f.ExtendedDataPlane(-1); got != 0 {
		t.Errorf("ExtendedDataPlane(-1) = %#x, want 0", got)
	}

	buf, err := AllocBuffer(256)
	if err != nil {
		t.Fatalf("AllocBuffer() error = %v", err)
	}
	defer buf.Unref()

	// A caller-owned pointer array. It must stay alive while the frame
	// points at it.
	planes := []uintptr{buf.Data(), buf.Data() + 128}
	f.SetExtendedData(uintptr(unsafe.Pointer(&planes[0])))
	if got := f.ExtendedDataPlane(1); got != buf.Data()+128 {
		t.Errorf("ExtendedDataPlane(1) = %#x, want %#x", got, buf.Data()+128)
	}
	f.SetExtendedData(0)
	runtime.KeepAlive(planes)
}

// A fresh frame's extended_data aliases the fixed 8-entry data array. A
// channel count wider than that must not widen the read bound until a wider
// array is actually installed.
func TestFrame_ExtendedDataAliasedBound(t *testing.T) {
	f := newTestFrame(t)

	f.SetChannels(10)
	for _, plane := range []int{NumDataPlanes, 9, 15} {
		if got := f.ExtendedDataPlane(plane); got != 0 {
			t.Errorf("ExtendedDataPlane(%d) = %#x on aliased array, want 0", plane, got)
		}
	}

	// Installing a wider caller-owned array makes the same indexes valid.
	buf, err := AllocBuffer(10 * 16)
	if err != nil {
		t.Fatalf("AllocBuffer() error = %v", err)
	}
	defer buf.Unref()

	planes := make([]uintptr, 10)
	for i := range planes {
		planes[i] = buf.Data() + uintptr(i*16)
	}
	f.SetExtendedData(uintptr(unsafe.Pointer(&planes[0])))
	if got := f.ExtendedDataPlane(9); got != planes[9] {
		t.Errorf("ExtendedDataPlane(9) = %#x on installed array, want %#x", got, planes[9])
	}
	if got := f.ExtendedDataPlane(10); got != 0 {
		t.Errorf("ExtendedDataPlane(10) = %#x past installed array, want 0", got)
	}
	f.SetExtendedData(0)
	runtime.KeepAlive(planes)
}
