//go:build linux

package input

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

var evdevKeys = map[evdev.EvCode]Key{
	evdev.KEY_LEFT:       KeyLeft,
	evdev.KEY_RIGHT:      KeyRight,
	evdev.BTN_DPAD_LEFT:  KeyLeft,
	evdev.BTN_DPAD_RIGHT: KeyRight,
	evdev.KEY_1:          KeyDigit1,
	evdev.KEY_2:          KeyDigit2,
	evdev.KEY_3:          KeyDigit3,
	evdev.KEY_4:          KeyDigit4,
	evdev.KEY_5:          KeyDigit5,
	evdev.KEY_6:          KeyDigit6,
	evdev.KEY_7:          KeyDigit7,
	evdev.KEY_8:          KeyDigit8,
	evdev.KEY_9:          KeyDigit9,
}

// Device reads key presses from an evdev node on its own goroutine and hands
// them to the render loop through Commands.
type Device struct {
	dev      *evdev.InputDevice
	commands chan Command
	closed   *atomic.Bool
	wg       sync.WaitGroup
	logger   *slog.Logger
}

// OpenDevice opens the evdev node at path and starts reading.
func OpenDevice(path string, logger *slog.Logger) (*Device, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}

	name, _ := dev.Name()
	logger.Debug("Input device opened", "path", path, "name", name)

	d := &Device{
		dev:      dev,
		commands: make(chan Command, 16),
		closed:   atomic.NewBool(false),
		logger:   logger,
	}

	d.wg.Add(1)
	go d.read()
	return d, nil
}

func (d *Device) read() {
	defer d.wg.Done()
	defer close(d.commands)

	for {
		ev, err := d.dev.ReadOne()
		if err != nil {
			if !d.closed.Load() {
				d.logger.Warn("Input device read failed", "error", err)
			}
			return
		}

		// Key down only; auto-repeat (2) and release (0) are ignored.
		if ev.Type != evdev.EV_KEY || ev.Value != 1 {
			continue
		}

		key, ok := evdevKeys[ev.Code]
		if !ok {
			continue
		}

		select {
		case d.commands <- CommandFor(key):
		default:
			d.logger.Debug("Input command dropped", "key", key.String())
		}
	}
}

// Commands delivers translated key presses. It is closed when reading stops.
func (d *Device) Commands() <-chan Command {
	return d.commands
}

// Close stops reading and waits for the reader goroutine.
func (d *Device) Close() error {
	if !d.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := d.dev.Close()
	d.wg.Wait()
	return err
}
