//go:build linux

package input

import (
	"fmt"

	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/holoplot/go-evdev"
)

var defaultCodes = map[evdev.EvCode]engine.Button{
	evdev.KEY_ENTER:     engine.ButtonSelect,
	evdev.KEY_KPENTER:   engine.ButtonSelect,
	evdev.KEY_SELECT:    engine.ButtonSelect,
	evdev.KEY_RIGHT:     engine.ButtonForward,
	evdev.KEY_DOWN:      engine.ButtonIncrease,
	evdev.KEY_KPPLUS:    engine.ButtonIncrease,
	evdev.KEY_UP:        engine.ButtonDecrease,
	evdev.KEY_KPMINUS:   engine.ButtonDecrease,
	evdev.KEY_ESC:       engine.ButtonBack,
	evdev.KEY_LEFT:      engine.ButtonBack,
	evdev.KEY_BACKSPACE: engine.ButtonBack,
}

type evdevDevice struct {
	dev   *evdev.InputDevice
	codes map[evdev.EvCode]engine.Button
}

func openDevice(path string, opts Options) (device, error) {
	codes, err := keyCodes(opts.Keys)
	if err != nil {
		return nil, err
	}
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}
	if opts.Grab {
		if err := dev.Grab(); err != nil {
			_ = dev.Close()
			return nil, fmt.Errorf("grab input device %s: %w", path, err)
		}
	}
	return &evdevDevice{dev: dev, codes: codes}, nil
}

// keyCodes builds the code table, replacing the defaults of every button
// named in overrides.
func keyCodes(overrides map[engine.Button][]string) (map[evdev.EvCode]engine.Button, error) {
	codes := make(map[evdev.EvCode]engine.Button, len(defaultCodes))
	for code, b := range defaultCodes {
		if _, replaced := overrides[b]; !replaced {
			codes[code] = b
		}
	}
	for b, names := range overrides {
		for _, name := range names {
			code, ok := evdev.KEYFromString[name]
			if !ok {
				return nil, fmt.Errorf("unknown key %q for %s", name, b)
			}
			codes[code] = b
		}
	}
	return codes, nil
}

func (d *evdevDevice) next() (press, error) {
	ev, err := d.dev.ReadOne()
	if err != nil {
		return press{}, err
	}
	if ev.Type != evdev.EV_KEY {
		return press{ignore: true}, nil
	}
	b, ok := d.codes[ev.Code]
	if !ok {
		return press{ignore: true}, nil
	}
	switch ev.Value {
	case 1:
		return press{button: b}, nil
	case 2:
		return press{button: b, repeat: true}, nil
	}
	return press{ignore: true}, nil
}

func (d *evdevDevice) Close() error {
	return d.dev.Close()
}
