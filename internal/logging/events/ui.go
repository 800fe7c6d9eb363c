package events

import "github.com/xiaoxiae/vimvaldi/internal/logging"

type UITracer struct{}

type CommandTracer struct{}

type StatusTracer struct{}

var (
	UI      = UITracer{}
	Command = CommandTracer{}
	Status  = StatusTracer{}
)

func (UITracer) ComponentPush(name string, depth int) {
	logging.Trace("ui.push", map[string]interface{}{"component": name, "depth": depth})
}

func (UITracer) ComponentPop(depth int) {
	logging.Trace("ui.pop", map[string]interface{}{"depth": depth})
}

func (UITracer) FocusToggle(statusFocused bool) {
	logging.Trace("ui.focus", map[string]interface{}{"status": statusFocused})
}

func (CommandTracer) Resolve(kind string) {
	logging.Trace("command.resolve", map[string]interface{}{"kind": kind})
}

func (CommandTracer) Emitted(kind string, count int) {
	logging.Trace("command.emitted", map[string]interface{}{"kind": kind, "followups": count})
}

func (StatusTracer) Submit(mode, text string) {
	logging.Trace("status.submit", map[string]interface{}{"mode": mode, "text": text})
}

func (StatusTracer) ModeChange(mode string) {
	logging.Trace("status.mode", map[string]interface{}{"mode": mode})
}

func (StatusTracer) Unknown(text string) {
	logging.Trace("status.unknown-command", map[string]interface{}{"text": text})
}
