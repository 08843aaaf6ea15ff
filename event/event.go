package event

// Event is implemented by every notification a controller delivers to its
// handler.
type Event interface {
	ID() string
}

// Context is passed alongside an event and may be cancelled by the handler to
// suppress the default side effect of the event.
type Context struct {
	cancelled bool
}

// C returns a fresh event context.
func C() *Context {
	return &Context{}
}

// Cancel cancels the context.
func (ctx *Context) Cancel() {
	ctx.cancelled = true
}

// Cancelled returns true if the context was cancelled.
func (ctx *Context) Cancelled() bool {
	return ctx.cancelled
}
