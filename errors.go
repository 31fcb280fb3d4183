package avfields

import (
	"errors"
	"fmt"
)

// Error is a negative FFmpeg error code (AVERROR) surfaced through the
// wrapper. Non-negative codes never become an Error.
type Error int32

func (e Error) Error() string {
	buf := make([]byte, 128)
	if Available() && streamAvStrerror(int32(e), &buf[0], uintptr(len(buf))) == 0 {
		n := 0
		for n < len(buf) && buf[n] != 0 {
			n++
		}
		return fmt.Sprintf("avfields: %s (%d)", buf[:n], int32(e))
	}
	return fmt.Sprintf("avfields: error %d", int32(e))
}

// errFromCode maps a wrapper status code to an error: nil for success,
// Error for negative codes.
func errFromCode(code int32) error {
	if code >= 0 {
		return nil
	}
	return Error(code)
}

var errAllocFailed = errors.New("avfields: allocation failed")
