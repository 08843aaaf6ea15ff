package controller

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vantage-gg/stride/world"
)

// Capsule describes the character's collision volume and the contact limits
// the sensors derive their casts from.
type Capsule struct {
	Radius float32
	Height float32
	// CenterOffset is the height of the capsule center above the mover
	// position (the feet).
	CenterOffset float32
	// SlopeLimit is the maximum walkable slope angle in degrees.
	SlopeLimit float32
	// StepOffset is the maximum ledge height the mover climbs implicitly.
	StepOffset float32
}

// KinematicMover is the collide-and-slide primitive the composer commits
// displacement to. The mover position is at the bottom of the capsule.
type KinematicMover interface {
	Capsule() Capsule
	Position() mgl32.Vec3
	// Move displaces the volume by the given vector, sliding along anything
	// it collides with.
	Move(delta mgl32.Vec3)
	// Yaw is the locomotion heading in degrees.
	Yaw() float32
	SetYaw(yaw float32)
}

// Sweeper is the spatial collision-query service. All queries are synchronous
// point-in-time evaluations.
type Sweeper interface {
	SweepSphere(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDist float32, mask world.Mask) (world.Hit, bool)
}
