package avfields

import (
	"sync"
	"testing"
)

func TestErrFromCode(t *testing.T) {
	if err := errFromCode(0); err != nil {
		t.Errorf("errFromCode(0) = %v, want nil", err)
	}
	if err := errFromCode(42); err != nil {
		t.Errorf("errFromCode(42) = %v, want nil", err)
	}

	err := errFromCode(-22)
	if err == nil {
		t.Fatal("errFromCode(-22) = nil, want error")
	}
	var e Error
	ok := false
	if e, ok = err.(Error); !ok {
		t.Fatalf("errFromCode(-22) type = %T, want Error", err)
	}
	if int32(e) != -22 {
		t.Errorf("code = %d, want -22", int32(e))
	}
}

// Formatting an Error must be safe alongside a concurrent first Load; the
// race detector flags any unsynchronized read of the loader state.
func TestError_ConcurrentFormat(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if msg := Error(-22).Error(); msg == "" {
				t.Error("empty error message")
			}
		}()
	}
	wg.Wait()
}

func TestError_Message(t *testing.T) {
	msg := Error(-22).Error()
	if msg == "" {
		t.Fatal("empty error message")
	}
	// With the wrapper loaded the message is FFmpeg's strerror text; without
	// it, the numeric fallback. Both carry the code.
	t.Logf("Error(-22) = %q", msg)
}
