package avfields

import (
	"bytes"
	"testing"
)

func newTestCodecParameters(t *testing.T) CodecParameters {
	t.Helper()
	requireShim(t)
	par, err := AllocCodecParameters()
	if err != nil {
		t.Fatalf("AllocCodecParameters() error = %v", err)
	}
	t.Cleanup(func() { FreeCodecParameters(par) })
	return par
}

func TestCodecParameters_ScalarRoundTrip(t *testing.T) {
	par := newTestCodecParameters(t)

	par.SetCodecType(0) // video
	par.SetCodecID(27)  // h264
	par.SetFormat(0)
	par.SetWidth(1920)
	par.SetHeight(1080)
	par.SetBitRate(5_000_000)
	par.SetSampleRate(48000)
	par.SetFrameSize(1024)

	if got := par.CodecType(); got != 0 {
		t.Errorf("CodecType() = %d, want 0", got)
	}
	if got := par.CodecID(); got != 27 {
		t.Errorf("CodecID() = %d, want 27", got)
	}
	if got := par.Width(); got != 1920 {
		t.Errorf("Width() = %d, want 1920", got)
	}
	if got := par.Height(); got != 1080 {
		t.Errorf("Height() = %d, want 1080", got)
	}
	if got := par.BitRate(); got != 5_000_000 {
		t.Errorf("BitRate() = %d, want 5000000", got)
	}
	if got := par.SampleRate(); got != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", got)
	}
	if got := par.FrameSize(); got != 1024 {
		t.Errorf("FrameSize() = %d, want 1024", got)
	}
}

func TestCodecParameters_ChannelLayout(t *testing.T) {
	par := newTestCodecParameters(t)

	par.SetChannelLayout(0x60F)
	mask, exact := par.ChannelLayout()
	if mask != 0x60F || !exact {
		t.Errorf("ChannelLayout() = %#x, %v, want 0x60F, true", mask, exact)
	}
	if got := par.Channels(); got != 6 {
		t.Errorf("Channels() = %d, want 6", got)
	}
}

func TestCodecParameters_Extradata(t *testing.T) {
	par := newTestCodecParameters(t)

	payload := []byte{0x01, 0x42, 0xc0, 0x1f}
	if err := par.SetExtradata(payload); err != nil {
		t.Fatalf("SetExtradata() error = %v", err)
	}
	if got := par.Extradata(); !bytes.Equal(got, payload) {
		t.Errorf("Extradata() = %x, want %x", got, payload)
	}

	if err := par.SetExtradata(nil); err != nil {
		t.Fatalf("SetExtradata(nil) error = %v", err)
	}
	if got := par.Extradata(); got != nil {
		t.Errorf("Extradata() = %x after clear, want nil", got)
	}
}
