package controller

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/vantage-gg/stride/event"
)

// Handler receives the discrete events a controller produces. Cancelling a
// context suppresses the animator-facing side effect of the event, never the
// internal bookkeeping (a cancelled landing still resets the fall
// accumulator).
type Handler interface {
	HandleJump(ctx *event.Context, ev *event.JumpEvent)
	HandleLanding(ctx *event.Context, ev *event.LandingEvent, extra *orderedmap.OrderedMap[string, any])
	HandleAction(ctx *event.Context, ev *event.ActionEvent)
}

// NopHandler implements Handler with no-ops. Embed it to handle a subset of
// events.
type NopHandler struct{}

func (NopHandler) HandleJump(*event.Context, *event.JumpEvent) {}
func (NopHandler) HandleLanding(*event.Context, *event.LandingEvent, *orderedmap.OrderedMap[string, any]) {
}
func (NopHandler) HandleAction(*event.Context, *event.ActionEvent) {}
