package controller

import "github.com/go-gl/mathgl/mgl32"

// IntentComponent resolves raw input into the normalized locomotion intent for
// the current tick.
type IntentComponent interface {
	// SetMoveAndTurn applies externally supplied intent for the current tick.
	// moveIntensity is in [0, 1] and turnInput in [-1, 1]; callers of this
	// path own their own smoothing.
	SetMoveAndTurn(moveIntensity, turnInput float32, running bool)
	// RequestJump raises the single-frame jump flag.
	RequestJump()
	// Update writes the resolved intent into the tick state, polling the
	// built-in input source when no external intent was set this tick.
	Update(st *MotionState)
	// EndTick clears the edge-triggered flags regardless of consumption.
	EndTick()

	MoveValue() float32
	TurnValue() float32
	Running() bool
}

// GroundSensor classifies ground contact and ledge edges for the tick.
type GroundSensor interface {
	Sense(st *MotionState)
}

// VerticalMotion integrates the simulated vertical channel.
type VerticalMotion interface {
	Simulate(st *MotionState)
	// Reset hard-resets the velocity and fall tracking. Called when the
	// controller is disabled so no stale fall speed survives a pause.
	Reset()
	// ResetFallTracking zeroes only the fall-speed accumulator. Called by the
	// landing classifier after a landing is classified.
	ResetFallTracking()

	Velocity() float32
	FallSpeed() float32
}

// ActionDetector runs the three-point forward probe classification.
type ActionDetector interface {
	Detect(st *MotionState)
}

// LandingClassifier turns the airborne to grounded edge into a severity-rated
// landing event.
type LandingClassifier interface {
	Classify(st *MotionState)
}

// MotionComposer merges animation-authored displacement with the simulated
// vertical channel and commits the result to the kinematic mover. It runs from
// the pose-evaluation callback, strictly after the tick pipeline.
type MotionComposer interface {
	Compose(st *MotionState, translation mgl32.Vec3, yawDelta float32, dt float32)
}

// InputSource is the built-in polled input path of the intent resolver.
type InputSource interface {
	// Poll returns the instantaneous move intensity in [0, 1], turn input in
	// [-1, 1], whether the run modifier is held and whether jump is held.
	Poll() (move float32, turn float32, running bool, jump bool)
}
