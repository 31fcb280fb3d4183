package avfields

import "testing"

func newTestPacket(t *testing.T) Packet {
	t.Helper()
	requireShim(t)
	p, err := AllocPacket()
	if err != nil {
		t.Fatalf("AllocPacket() error = %v", err)
	}
	t.Cleanup(func() { FreePacket(p) })
	return p
}

func TestPacket_ScalarRoundTrip(t *testing.T) {
	p := newTestPacket(t)

	p.SetPTS(180000)
	p.SetDTS(177000)
	p.SetDuration(3000)
	p.SetStreamIndex(1)
	p.SetFlags(PacketFlagKey)

	if got := p.PTS(); got != 180000 {
		t.Errorf("PTS() = %d, want 180000", got)
	}
	if got := p.DTS(); got != 177000 {
		t.Errorf("DTS() = %d, want 177000", got)
	}
	if got := p.Duration(); got != 3000 {
		t.Errorf("Duration() = %d, want 3000", got)
	}
	if got := p.StreamIndex(); got != 1 {
		t.Errorf("StreamIndex() = %d, want 1", got)
	}
	if got := p.Flags(); got != PacketFlagKey {
		t.Errorf("Flags() = %#x, want %#x", got, PacketFlagKey)
	}
	if !p.IsKey() {
		t.Error("IsKey() = false with keyframe flag set")
	}
}

func TestPacket_EmptyDefaults(t *testing.T) {
	p := newTestPacket(t)

	if got := p.Data(); got != 0 {
		t.Errorf("Data() = %#x on empty packet, want 0", got)
	}
	if got := p.Size(); got != 0 {
		t.Errorf("Size() = %d on empty packet, want 0", got)
	}
	if got := p.Bytes(); got != nil {
		t.Errorf("Bytes() = %v on empty packet, want nil", got)
	}
	if got := p.PTS(); got != NoPTSValue {
		t.Errorf("PTS() = %d on fresh packet, want NoPTSValue", got)
	}
	if got := p.Pos(); got != -1 {
		t.Errorf("Pos() = %d on fresh packet, want -1", got)
	}
	if p.IsKey() {
		t.Error("IsKey() = true on empty packet")
	}
}
