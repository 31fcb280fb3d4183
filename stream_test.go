package avfields

import "testing"

func newTestFormatContext(t *testing.T) FormatContext {
	t.Helper()
	requireShim(t)
	fc, err := AllocFormatContext()
	if err != nil {
		t.Fatalf("AllocFormatContext() error = %v", err)
	}
	t.Cleanup(func() { FreeFormatContext(fc) })
	return fc
}

func TestFormatContext_Streams(t *testing.T) {
	fc := newTestFormatContext(t)

	if got := fc.NbStreams(); got != 0 {
		t.Fatalf("NbStreams() = %d on fresh context, want 0", got)
	}

	first, err := fc.NewStream()
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}
	second, err := fc.NewStream()
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	if got := fc.NbStreams(); got != 2 {
		t.Errorf("NbStreams() = %d, want 2", got)
	}
	if got := first.Index(); got != 0 {
		t.Errorf("first stream Index() = %d, want 0", got)
	}
	if got := second.Index(); got != 1 {
		t.Errorf("second stream Index() = %d, want 1", got)
	}
	if fc.Stream(1).Ptr() != second.Ptr() {
		t.Error("Stream(1) does not match the second created stream")
	}

	// Out-of-range lookups return the nil handle, never trap.
	if !fc.Stream(2).IsNil() {
		t.Error("Stream(2) = non-nil, want nil handle")
	}
	if !fc.Stream(-1).IsNil() {
		t.Error("Stream(-1) = non-nil, want nil handle")
	}
}

func TestStream_TimeBase(t *testing.T) {
	fc := newTestFormatContext(t)

	st, err := fc.NewStream()
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	st.SetTimeBase(Rational{Num: 1, Den: 90000})
	if got := st.TimeBase(); got != (Rational{Num: 1, Den: 90000}) {
		t.Errorf("TimeBase() = %v, want 1/90000", got)
	}
}

func TestStream_CodecParameters(t *testing.T) {
	fc := newTestFormatContext(t)

	st, err := fc.NewStream()
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	par := st.CodecParameters()
	if par.IsNil() {
		t.Fatal("CodecParameters() = nil handle on new stream")
	}
	par.SetWidth(640)
	par.SetHeight(480)
	if got := par.Width(); got != 640 {
		t.Errorf("Width() = %d, want 640", got)
	}
	if got := par.Height(); got != 480 {
		t.Errorf("Height() = %d, want 480", got)
	}
}
