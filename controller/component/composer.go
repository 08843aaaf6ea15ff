package component

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vantage-gg/stride/controller"
	"github.com/vantage-gg/stride/game"
)

// MotionComposerComponent merges the frame's animation-authored translation
// with the simulated vertical channel and commits the blend to the kinematic
// mover. It runs once per frame from the pose callback, against the snapshot
// the tick pipeline produced earlier in the frame.
type MotionComposerComponent struct {
	mController *controller.Controller
}

// NewMotionComposerComponent returns a new motion composer.
func NewMotionComposerComponent(c *controller.Controller) *MotionComposerComponent {
	return &MotionComposerComponent{mController: c}
}

// Compose applies the frame's displacement and orientation update.
func (mc *MotionComposerComponent) Compose(st *controller.MotionState, translation mgl32.Vec3, yawDelta float32, dt float32) {
	c := mc.mController
	mover := c.Mover()
	inAction := st.Phase.InAction()

	horizontal := game.HorizontalVec(translation)
	if st.Grounded && !st.ForcedFall && !inAction {
		// Keep movement tangent to the slope instead of pushing into it or
		// floating off it.
		horizontal = game.ProjectOnPlane(horizontal, st.GroundNormal)
	}

	var vertical mgl32.Vec3
	if inAction {
		// A climb or vault's height change is entirely animation-authored.
		vertical = game.VerticalVec(translation)
		st.VerticalVelocity = 0
	} else {
		vertical = mgl32.Vec3{0, st.VerticalVelocity * dt, 0}
	}

	mover.Move(horizontal.Add(vertical))

	// Animation-authored yaw (in-place turns baked into action clips) is
	// pre-composed; the locomotion heading then advances from the continuous
	// turn value. The epsilon floor keeps the observed minimum turn rate for
	// arbitrarily small nonzero inputs.
	yaw := mover.Yaw() + yawDelta
	turn := st.TurnValue
	yaw += game.Sign(turn) * math32.Max(math32.Abs(turn), game.MinTurnEpsilon) *
		c.Conf().Composer.RotationRate * dt
	mover.SetYaw(wrapYaw(yaw))
}

func wrapYaw(yaw float32) float32 {
	return game.WrapYawDelta(math32.Mod(yaw, 360))
}
