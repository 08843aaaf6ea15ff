package controller

import "github.com/go-gl/mathgl/mgl32"

// ActionPhase is the explicit tri-state of the context-action lifecycle. It
// advances from locomotion to pending when the probe detector fires, to active
// once the animation collaborator enters the action state, and back to
// locomotion when it exits.
type ActionPhase byte

const (
	PhaseLocomotion ActionPhase = iota
	PhaseActionPending
	PhaseActionActive
)

// InAction reports whether the controller is in any action phase. Gravity is
// suspended and vertical motion is animation-authored for as long as this
// holds.
func (p ActionPhase) InAction() bool {
	return p != PhaseLocomotion
}

// String ...
func (p ActionPhase) String() string {
	switch p {
	case PhaseActionPending:
		return "action_pending"
	case PhaseActionActive:
		return "action_active"
	default:
		return "locomotion"
	}
}

// MotionState is the per-tick snapshot produced by the pipeline. Each stage
// writes its slice of the state before the next stage runs, and the motion
// composer consumes the finished snapshot later in the same frame.
type MotionState struct {
	// Intent, written by the intent resolver. MoveValue is quantised to
	// 0, 0.5 or 1; TurnValue is clamped to the walk or run range.
	MoveValue float32
	TurnValue float32
	Running   bool
	// JumpRequested is the edge-triggered jump flag for this tick. It is
	// cleared at the end of every tick whether or not it was consumed.
	JumpRequested bool

	// Ground contact, written by the ground sensor. ForcedFall overrides a
	// positive contact result, so ForcedFall implies !Grounded.
	Grounded     bool
	GroundNormal mgl32.Vec3
	ForcedFall   bool

	// Vertical channel, written by the vertical motion simulator.
	// LastAirborneDownSpeed is the most negative velocity observed while
	// falling and only resets when a landing is classified.
	VerticalVelocity      float32
	LastAirborneDownSpeed float32
	// JustLanded marks the airborne to grounded edge of this tick.
	JustLanded bool

	// Phase mirrors the controller's action phase at the top of the tick.
	Phase ActionPhase

	Tick uint64
	// Now is the controller clock in seconds, advanced by every tick delta.
	Now float64
	Dt  float32
}
