//go:build !linux

package input

import (
	"errors"
	"log/slog"
)

// ErrUnsupported is returned by OpenDevice off Linux.
var ErrUnsupported = errors.New("input: evdev devices are only supported on linux")

// Device is unavailable on this platform.
type Device struct{}

func OpenDevice(path string, logger *slog.Logger) (*Device, error) {
	return nil, ErrUnsupported
}

func (d *Device) Commands() <-chan Command {
	return nil
}

func (d *Device) Close() error {
	return nil
}
