package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vantage-gg/stride/controller"
	"github.com/vantage-gg/stride/game"
	"github.com/vantage-gg/stride/world"
)

var up = mgl32.Vec3{0, 1, 0}
var down = mgl32.Vec3{0, -1, 0}

// GroundSensorComponent recomputes the ground state every tick from a downward
// swept sphere and, on contact, a forward ledge probe. A failed ledge probe
// while the character carries forward intent forces a fall even though direct
// contact exists.
type GroundSensorComponent struct {
	mController *controller.Controller
	mask        world.Mask
}

// NewGroundSensorComponent returns a ground sensor querying the given layers.
func NewGroundSensorComponent(c *controller.Controller, mask world.Mask) *GroundSensorComponent {
	return &GroundSensorComponent{mController: c, mask: mask}
}

// Sense writes this tick's ground state.
func (gs *GroundSensorComponent) Sense(st *controller.MotionState) {
	c := gs.mController
	caps := c.Mover().Capsule()
	conf := c.Conf().Ground
	pos := c.Mover().Position()

	center := pos.Add(mgl32.Vec3{0, caps.CenterOffset, 0})
	castDist := caps.Height/2 - caps.Radius + conf.Clearance + conf.StepDown

	hit, ok := c.Sweeper().SweepSphere(center, caps.Radius, down, castDist, gs.mask)
	if !ok {
		// Absence of a hit is the defined airborne signal, not an error.
		st.Grounded = false
		st.GroundNormal = up
		st.ForcedFall = true
		return
	}

	normal := hit.Normal
	slope := game.SlopeAngle(normal)
	forcedFall := false

	// Forward ledge probe: a downward cast starting above and ahead of the
	// feet. No walkable surface there while moving forward means the
	// character is stepping off an edge.
	if st.MoveValue > 0 {
		forward := game.DirectionVector(c.Mover().Yaw())
		ledgeOrigin := pos.
			Add(forward.Mul(caps.Radius + conf.LedgeAhead)).
			Add(mgl32.Vec3{0, conf.LedgeHeight, 0})
		ledgeRadius := caps.Radius * conf.LedgeRadiusScale

		ledgeHit, ledgeOK := c.Sweeper().SweepSphere(ledgeOrigin, ledgeRadius, down, conf.LedgeHeight+conf.LedgeDepth, gs.mask)
		if !ledgeOK || game.SlopeAngle(ledgeHit.Normal) > caps.SlopeLimit {
			forcedFall = true
			c.StatsRef().ForcedFalls++
		}
	}

	st.GroundNormal = normal
	st.ForcedFall = forcedFall
	st.Grounded = slope <= caps.SlopeLimit+game.SlopeEpsilon && !forcedFall
}
