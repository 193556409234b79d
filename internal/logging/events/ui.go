package events

import "github.com/atomicstack/lcdmenu/internal/logging"

type UITracer struct{}

type InputTracer struct{}

var (
	UI    = UITracer{}
	Input = InputTracer{}
)

func (UITracer) Mode(from, to string) {
	logging.Trace("ui.mode", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (InputTracer) Key(key, button string) {
	logging.Trace("input.key", map[string]interface{}{"key": key, "button": button})
}

func (InputTracer) Device(path string) {
	logging.Trace("input.device", map[string]interface{}{"path": path})
}

func (InputTracer) Event(button string) {
	logging.Trace("input.event", map[string]interface{}{"button": button})
}

func (InputTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("input.error", map[string]interface{}{"error": err.Error()})
}
