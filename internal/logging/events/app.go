package events

import "github.com/atomicstack/lcdmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(stats interface{}) {
	logging.Trace("app.stop", map[string]interface{}{"stats": stats})
}
