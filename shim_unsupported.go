//go:build !darwin && !linux

package avfields

import "errors"

func loadShim() error {
	return errors.New("avfields: unsupported platform")
}
