package events

import "github.com/xiaoxiae/vimvaldi/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit() {
	logging.Trace("app.exit", nil)
}

func (AppTracer) Resize(width, height int) {
	logging.Trace("app.resize", map[string]interface{}{"width": width, "height": height})
}

func (AppTracer) TooSmall(width, height int) {
	logging.Trace("app.too-small", map[string]interface{}{"width": width, "height": height})
}
