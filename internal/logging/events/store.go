package events

import "github.com/atomicstack/lcdmenu/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Open(kind, path string) {
	logging.Trace("store.open", map[string]interface{}{"kind": kind, "path": path})
}

func (StoreTracer) Write(key string, width int, raw uint32) {
	logging.Trace("store.write", map[string]interface{}{"key": key, "width": width, "raw": raw})
}

func (StoreTracer) Restore(restored, skipped int) {
	logging.Trace("store.restore", map[string]interface{}{"restored": restored, "skipped": skipped})
}

func (StoreTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.error", map[string]interface{}{"op": op, "error": err.Error()})
}
