package component

import (
	"github.com/vantage-gg/stride/controller"
	"github.com/vantage-gg/stride/event"
)

// VerticalMotionComponent integrates the simulated vertical channel. It runs
// one of three modes each tick: action override (gravity suspended), grounded
// (stick bias, jump consumption) or airborne (gravity integration with fall
// tracking).
type VerticalMotionComponent struct {
	mController *controller.Controller

	vel       float32
	fallSpeed float32
	airborne  bool
}

// NewVerticalMotionComponent returns a new vertical motion simulator.
func NewVerticalMotionComponent(c *controller.Controller) *VerticalMotionComponent {
	return &VerticalMotionComponent{mController: c}
}

// Simulate advances the vertical channel for this tick.
func (vm *VerticalMotionComponent) Simulate(st *controller.MotionState) {
	c := vm.mController
	conf := c.Conf().Vertical

	// The action override takes priority over both other modes: gravity is
	// suspended and fall tracking zeroed for every tick it is active.
	if st.Phase.InAction() {
		vm.vel = 0
		vm.fallSpeed = 0
		vm.airborne = false
		st.VerticalVelocity = 0
		st.LastAirborneDownSpeed = 0
		return
	}

	if vm.airborne {
		// A rising character still overlaps the ground cast for the first few
		// ticks of a jump; the grounded edge only counts once descending.
		if st.Grounded && vm.vel <= 0 {
			vm.airborne = false
			st.JustLanded = true
		} else {
			g := conf.Gravity
			if vm.vel <= 0 {
				g *= conf.FallingMultiplier
			}
			vm.vel -= g * st.Dt
			if vm.vel < vm.fallSpeed {
				vm.fallSpeed = vm.vel
			}
		}
	}

	if !vm.airborne {
		switch {
		// Gated on the simulator's own ground state, not the sensor's: a jump
		// requested on the tick a failed ledge probe forces the fall must still
		// fire, overriding the forced fall.
		case st.JumpRequested:
			vm.vel = conf.JumpSpeed
			vm.airborne = true
			st.Grounded = false
			st.ForcedFall = false
			c.StatsRef().Jumps++

			ctx := event.C()
			c.Handler().HandleJump(ctx, event.NewJumpEvent(conf.JumpSpeed, st.Tick))
			if !ctx.Cancelled() {
				c.Animator().Trigger(controller.TriggerJump)
			}
		case !st.Grounded:
			vm.airborne = true
		case vm.vel <= 0:
			// Small negative bias keeps contact across minor surface
			// irregularities.
			vm.vel = conf.GroundStick
		}
	}

	st.VerticalVelocity = vm.vel
	st.LastAirborneDownSpeed = vm.fallSpeed
}

// Reset hard-resets the simulated velocity and fall tracking.
func (vm *VerticalMotionComponent) Reset() {
	vm.vel = 0
	vm.fallSpeed = 0
	vm.airborne = false
}

// ResetFallTracking zeroes only the fall-speed accumulator.
func (vm *VerticalMotionComponent) ResetFallTracking() {
	vm.fallSpeed = 0
}

// Velocity returns the simulated vertical velocity.
func (vm *VerticalMotionComponent) Velocity() float32 {
	return vm.vel
}

// FallSpeed returns the most negative velocity observed while falling.
func (vm *VerticalMotionComponent) FallSpeed() float32 {
	return vm.fallSpeed
}
