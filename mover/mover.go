// Package mover provides the reference KinematicMover: an axis-aligned
// capsule displaced with axis-separated collide-and-slide clipping against a
// world of static box colliders.
package mover

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vantage-gg/stride/assert"
	"github.com/vantage-gg/stride/controller"
	"github.com/vantage-gg/stride/game"
	"github.com/vantage-gg/stride/internal"
	"github.com/vantage-gg/stride/world"
)

// CapsuleMover implements controller.KinematicMover against a world.World.
// The capsule is approximated by its bounding box for clipping, the way most
// grid collision passes do.
type CapsuleMover struct {
	w    *world.World
	mask world.Mask
	caps controller.Capsule

	pos mgl32.Vec3
	yaw float32

	collideX, collideY, collideZ bool
}

// New returns a capsule mover standing at pos.
func New(w *world.World, caps controller.Capsule, pos mgl32.Vec3, mask world.Mask) *CapsuleMover {
	assert.IsTrue(w != nil, "mover requires a collider world")
	assert.IsTrue(caps.Radius > 0 && caps.Height > caps.Radius*2, "invalid capsule dimensions %v/%v", caps.Radius, caps.Height)
	return &CapsuleMover{w: w, mask: mask, caps: caps, pos: pos}
}

// Capsule returns the mover's capsule geometry.
func (m *CapsuleMover) Capsule() controller.Capsule {
	return m.caps
}

// Position returns the mover position (bottom of the capsule).
func (m *CapsuleMover) Position() mgl32.Vec3 {
	return m.pos
}

// SetPosition teleports the mover without collision checks.
func (m *CapsuleMover) SetPosition(pos mgl32.Vec3) {
	m.pos = pos
}

// Yaw returns the locomotion heading in degrees.
func (m *CapsuleMover) Yaw() float32 {
	return m.yaw
}

// SetYaw sets the locomotion heading in degrees.
func (m *CapsuleMover) SetYaw(yaw float32) {
	m.yaw = yaw
}

// Collided reports per-axis collision flags of the most recent Move.
func (m *CapsuleMover) Collided() (x, y, z bool) {
	return m.collideX, m.collideY, m.collideZ
}

// BoundingBox returns the capsule bounds at the current position.
func (m *CapsuleMover) BoundingBox() cube.BBox {
	return game.CapsuleBox(m.pos, m.caps.Radius, m.caps.Height)
}

// Move displaces the capsule by delta, clipping per axis (Y first, then X and
// Z) against nearby colliders and attempting a step-up when a horizontal clip
// occurs against a ledge no taller than the step offset.
func (m *CapsuleMover) Move(delta mgl32.Vec3) {
	bb := m.BoundingBox()

	scratch := internal.BoxSlicePool.Get().(*[]cube.BBox)
	boxes := (*scratch)[:0]
	defer func() {
		*scratch = boxes[:0]
		internal.BoxSlicePool.Put(scratch)
	}()
	boxes = m.w.NearbyBoxes(bb.Extend(delta).Grow(m.caps.StepOffset+0.1), m.mask, boxes)

	moved := clipMove(bb, delta, boxes)

	m.collideX = moved.X() != delta.X()
	m.collideY = moved.Y() != delta.Y()
	m.collideZ = moved.Z() != delta.Z()

	if (m.collideX || m.collideZ) && delta.Y() <= 0 {
		if stepped, ok := m.tryStep(bb, delta, boxes); ok &&
			game.Vec3HzDistSqr(stepped) > game.Vec3HzDistSqr(moved) {
			moved = stepped
			m.collideX = false
			m.collideZ = false
		}
	}

	m.pos = m.pos.Add(moved)
}

// tryStep retries the horizontal displacement from step-offset height and
// settles back down, the way the reference collision pass resolves stairs.
func (m *CapsuleMover) tryStep(bb cube.BBox, delta mgl32.Vec3, boxes []cube.BBox) (mgl32.Vec3, bool) {
	upVel := clipAxis(bb, mgl32.Vec3{0, m.caps.StepOffset}, boxes)
	stepBB := bb.Translate(upVel)

	hz := clipMove(stepBB, game.HorizontalVec(delta), boxes)
	if game.Vec3HzDistSqr(hz) <= 1e-12 {
		return mgl32.Vec3{}, false
	}
	stepBB = stepBB.Translate(hz)

	downVel := clipAxis(stepBB, upVel.Mul(-1), boxes)
	return upVel.Add(hz).Add(downVel), true
}

// clipMove clips delta axis by axis, translating the box between axes so each
// later axis collides against the already-moved volume.
func clipMove(bb cube.BBox, delta mgl32.Vec3, boxes []cube.BBox) mgl32.Vec3 {
	yVel := clipAxis(bb, mgl32.Vec3{0, delta.Y()}, boxes)
	bb = bb.Translate(yVel)

	xVel := clipAxis(bb, mgl32.Vec3{delta.X()}, boxes)
	bb = bb.Translate(xVel)

	zVel := clipAxis(bb, mgl32.Vec3{0, 0, delta.Z()}, boxes)

	return yVel.Add(xVel).Add(zVel)
}

func clipAxis(bb cube.BBox, vel mgl32.Vec3, boxes []cube.BBox) mgl32.Vec3 {
	for index := len(boxes) - 1; index >= 0; index-- {
		vel = game.BBClipCollide(boxes[index], bb, vel, false, nil)
	}
	return vel
}
