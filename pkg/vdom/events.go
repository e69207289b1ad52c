package vdom

import (
	"sort"

	"github.com/vango-dev/reflow/pkg/host"
)

// On creates a handler for an arbitrary event type.
func On(event string, handler func(host.Event)) EventHandler {
	return EventHandler{Event: event, Handler: handler}
}

// Events converts a map of event types to handlers, sorted by type.
func Events(handlers map[string]func(host.Event)) []EventHandler {
	out := make([]EventHandler, 0, len(handlers))
	for name, fn := range handlers {
		out = append(out, On(name, fn))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Event < out[j].Event })
	return out
}

// Mouse events

// OnClick handles click events.
func OnClick(handler func(host.Event)) EventHandler { return On("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler func(host.Event)) EventHandler { return On("dblclick", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler func(host.Event)) EventHandler { return On("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler func(host.Event)) EventHandler { return On("keyup", handler) }

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(handler func(host.Event)) EventHandler { return On("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler func(host.Event)) EventHandler { return On("change", handler) }

// OnSubmit handles form submission.
func OnSubmit(handler func(host.Event)) EventHandler { return On("submit", handler) }

// Focus events

func OnFocus(handler func(host.Event)) EventHandler { return On("focus", handler) }
func OnBlur(handler func(host.Event)) EventHandler  { return On("blur", handler) }
