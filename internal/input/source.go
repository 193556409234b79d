package input

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
)

// ErrUnsupported is returned by Open on platforms without evdev.
var ErrUnsupported = errors.New("input devices are not supported on this platform")

// Event carries one button press or a read error from a Source.
type Event struct {
	Button engine.Button
	Err    error
}

// Options tune a device source.
type Options struct {
	// Repeat is the minimum spacing of auto-repeat presses. Zero passes
	// every repeat.
	Repeat time.Duration
	// Keys overrides the key names bound to each button, for example
	// {engine.ButtonSelect: {"KEY_ENTER", "KEY_OK"}}.
	Keys map[engine.Button][]string
	// Grab requests exclusive access to the device.
	Grab bool
}

// press is one decoded key event.
type press struct {
	button engine.Button
	repeat bool
	ignore bool
}

type device interface {
	next() (press, error)
	Close() error
}

// Source streams button presses read from an input device.
type Source struct {
	dev      device
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
	once   sync.Once
}

// Open starts reading the input device at path.
func Open(path string, opts Options) (*Source, error) {
	dev, err := openDevice(path, opts)
	if err != nil {
		events.Input.Error(err)
		return nil, err
	}
	events.Input.Device(path)
	return newSource(dev, opts.Repeat), nil
}

func newSource(dev device, repeat time.Duration) *Source {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Source{
		dev:      dev,
		throttle: newThrottle(repeat),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}
	s.wg.Add(1)
	go s.read()
	go func() {
		s.wg.Wait()
		close(s.events)
	}()
	return s
}

// Events returns the channel of presses. It is closed when the source stops
// or the device fails.
func (s *Source) Events() <-chan Event {
	return s.events
}

// Stop closes the device, unblocking the reader.
func (s *Source) Stop() {
	s.once.Do(func() {
		s.cancel()
		_ = s.dev.Close()
	})
}

// Wait blocks until the reader has exited and Events is closed.
func (s *Source) Wait() {
	s.wg.Wait()
}

func (s *Source) read() {
	defer s.wg.Done()
	for {
		p, err := s.dev.next()
		if err != nil {
			if s.ctx.Err() == nil {
				events.Input.Error(err)
				s.emit(Event{Err: err})
			}
			return
		}
		if p.ignore {
			continue
		}
		if p.repeat {
			if !s.throttle.allow() {
				continue
			}
		} else {
			s.throttle.reset()
			s.throttle.allow()
		}
		events.Input.Event(p.button.String())
		if !s.emit(Event{Button: p.button}) {
			return
		}
	}
}

func (s *Source) emit(evt Event) bool {
	select {
	case <-s.ctx.Done():
		return false
	case s.events <- evt:
		return true
	}
}
