package avfields

import "testing"

func TestBufferRef_Lifecycle(t *testing.T) {
	requireShim(t)

	buf, err := AllocBuffer(1024)
	if err != nil {
		t.Fatalf("AllocBuffer() error = %v", err)
	}
	if buf.Data() == 0 {
		t.Fatal("Data() = 0 on fresh buffer")
	}
	if got := buf.Size(); got != 1024 {
		t.Errorf("Size() = %d, want 1024", got)
	}
	if got := buf.RefCount(); got != 1 {
		t.Errorf("RefCount() = %d on fresh buffer, want 1", got)
	}

	ref := buf.Ref()
	if ref.IsNil() {
		t.Fatal("Ref() = nil handle")
	}
	if ref.Data() != buf.Data() {
		t.Error("second reference points at different data")
	}
	if got := buf.RefCount(); got != 2 {
		t.Errorf("RefCount() = %d after Ref(), want 2", got)
	}

	ref.Unref()
	if !ref.IsNil() {
		t.Error("handle still non-nil after Unref()")
	}
	if got := buf.RefCount(); got != 1 {
		t.Errorf("RefCount() = %d after dropping one reference, want 1", got)
	}

	buf.Unref()
}

func TestBufferRef_NilReference(t *testing.T) {
	requireShim(t)

	var nilRef BufferRef
	if !nilRef.IsNil() {
		t.Error("zero value IsNil() = false")
	}
	if got := nilRef.RefCount(); got != 0 {
		t.Errorf("RefCount() = %d on nil reference, want 0", got)
	}
	if got := nilRef.Data(); got != 0 {
		t.Errorf("Data() = %#x on nil reference, want 0", got)
	}
	if !nilRef.Ref().IsNil() {
		t.Error("Ref() on nil reference = non-nil")
	}
	nilRef.Unref() // must not trap
}

func TestAllocHWFramesContext_NilDevice(t *testing.T) {
	requireShim(t)

	if _, err := AllocHWFramesContext(BufferRef{}); err == nil {
		t.Error("AllocHWFramesContext(nil) error = nil, want error")
	}
}
