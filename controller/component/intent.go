package component

import (
	"github.com/chewxy/math32"
	"github.com/vantage-gg/stride/controller"
	"github.com/vantage-gg/stride/game"
)

// IntentComponent normalizes raw input into the tick's locomotion intent. The
// external call path applies values directly; the polled path additionally
// slews the turn value toward its target at a fixed rate.
type IntentComponent struct {
	mController *controller.Controller
	source      controller.InputSource

	moveValue float32
	turnValue float32
	running   bool

	jumpRequested bool
	prevJumpHeld  bool
	externalSet   bool
}

// NewIntentComponent returns a new intent resolver. source may be nil when the
// host only drives the external SetMoveAndTurn path.
func NewIntentComponent(c *controller.Controller, source controller.InputSource) *IntentComponent {
	return &IntentComponent{mController: c, source: source}
}

// SetMoveAndTurn applies external intent for the current tick. Callers of this
// path own their own smoothing.
func (ic *IntentComponent) SetMoveAndTurn(moveIntensity, turnInput float32, running bool) {
	ic.moveValue = quantizeMove(moveIntensity, running, ic.mController.Conf().Intent.MoveDeadzone)
	ic.turnValue = clampTurn(turnInput, running)
	ic.running = running
	ic.externalSet = true
}

// RequestJump raises the single-frame jump flag.
func (ic *IntentComponent) RequestJump() {
	ic.jumpRequested = true
}

// Update resolves this tick's intent and writes it into the state. The
// built-in input source is only polled when no external intent arrived.
func (ic *IntentComponent) Update(st *controller.MotionState) {
	if !ic.externalSet && ic.source != nil {
		ic.poll(st.Dt)
	}

	st.MoveValue = ic.moveValue
	st.TurnValue = ic.turnValue
	st.Running = ic.running
	st.JumpRequested = ic.jumpRequested
}

func (ic *IntentComponent) poll(dt float32) {
	conf := ic.mController.Conf().Intent
	move, turn, running, jumpHeld := ic.source.Poll()

	ic.running = running
	ic.moveValue = quantizeMove(move, running, conf.MoveDeadzone)

	// Rate-limit the polled turn toward its instantaneous target.
	target := clampTurn(turn, running)
	maxStep := conf.TurnSlewRate * dt
	delta := game.ClampFloat(target-ic.turnValue, -maxStep, maxStep)
	ic.turnValue = clampTurn(ic.turnValue+delta, running)

	if jumpHeld && !ic.prevJumpHeld {
		ic.jumpRequested = true
	}
	ic.prevJumpHeld = jumpHeld
}

// EndTick clears the edge-triggered flags for the next tick.
func (ic *IntentComponent) EndTick() {
	ic.jumpRequested = false
	ic.externalSet = false
}

// MoveValue returns the quantized move value.
func (ic *IntentComponent) MoveValue() float32 {
	return ic.moveValue
}

// TurnValue returns the clamped turn value.
func (ic *IntentComponent) TurnValue() float32 {
	return ic.turnValue
}

// Running returns whether the run modifier is active.
func (ic *IntentComponent) Running() bool {
	return ic.running
}

// quantizeMove maps an intensity in [0, 1] onto the discrete move values:
// zero inside the deadzone, walk or run otherwise.
func quantizeMove(intensity float32, running bool, deadzone float32) float32 {
	if math32.Abs(intensity) <= deadzone {
		return 0
	}
	if running {
		return game.RunMoveValue
	}
	return game.WalkMoveValue
}

func clampTurn(turn float32, running bool) float32 {
	limit := game.WalkTurnClamp
	if running {
		limit = game.RunTurnClamp
	}
	return game.ClampFloat(turn, -limit, limit)
}
