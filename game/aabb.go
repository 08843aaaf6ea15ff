package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBFromDimensions returns a bounding box from the given dimensions, with the
// origin centered at the bottom face.
func AABBFromDimensions(width, height float32) cube.BBox {
	h := width / 2
	return cube.Box(
		-h, 0, -h,
		h, height, h,
	)
}

// CapsuleBox returns the axis-aligned bounds of a capsule of the given radius
// and height standing at pos.
func CapsuleBox(pos mgl32.Vec3, radius, height float32) cube.BBox {
	return AABBFromDimensions(radius*2, height).Translate(pos)
}

// BBHasZeroVolume reports whether the bounding box has no volume.
func BBHasZeroVolume(bb cube.BBox) bool {
	return bb.Min() == bb.Max()
}

type clipCollideResult struct {
	penetration           float32
	clippedVelocity       mgl32.Vec3
	depenetratingVelocity mgl32.Vec3
}

// BBClipCollide clips vel so that the moving box does not pass through the
// stationary box c. When depenetrate is set, an already-overlapping pair
// resolves along the axis of least penetration instead of only clipping.
func BBClipCollide(c, moving cube.BBox, vel mgl32.Vec3, depenetrate bool, penetration *float32) mgl32.Vec3 {
	result := doBBClipCollide(c, moving, vel)
	if penetration != nil {
		*penetration = result.penetration
	}

	if depenetrate {
		return result.depenetratingVelocity
	}
	return result.clippedVelocity
}

func doBBClipCollide(stationary, moving cube.BBox, velocity mgl32.Vec3) (result clipCollideResult) {
	result.clippedVelocity = velocity
	result.depenetratingVelocity = velocity

	if BBHasZeroVolume(stationary) {
		return
	}

	axisPenetrations := [3]float32{}
	axisPenetrationsSigned := [3]float32{}
	normalDirs := [3]float32{}
	separatingAxes, separatingAxis := 0, 0
	resultPenetration := float32(math32.MaxFloat32 - 1)

	for i := 0; i < 3; i++ {
		minPenetration := moving.Max()[i] - stationary.Min()[i]
		maxPenetration := stationary.Max()[i] - moving.Min()[i]

		if math32.Abs(minPenetration) <= 1e-7 {
			minPenetration = 0
		}
		if math32.Abs(maxPenetration) <= 1e-7 {
			maxPenetration = 0
		}

		minPositive := math32.Max(0, minPenetration)
		maxPositive := math32.Max(0, maxPenetration)

		if minPositive == 0 {
			axisPenetrations[i] = 0
			axisPenetrationsSigned[i] = minPenetration
			normalDirs[i] = -1
			separatingAxes++
			separatingAxis = i
		} else if maxPositive == 0 {
			axisPenetrations[i] = 0
			axisPenetrationsSigned[i] = maxPenetration
			normalDirs[i] = 1
			separatingAxes++
			separatingAxis = i
		} else if minPositive < maxPositive {
			axisPenetrations[i] = minPositive
			axisPenetrationsSigned[i] = minPositive
			normalDirs[i] = -1
		} else {
			axisPenetrations[i] = maxPositive
			axisPenetrationsSigned[i] = maxPositive
			normalDirs[i] = 1
		}

		if separatingAxes > 1 {
			return
		}
		resultPenetration = math32.Min(resultPenetration, axisPenetrations[i])
	}

	// No separating axes means a collision.
	if separatingAxes == 0 {
		result.penetration = resultPenetration
		bestAxis := 0
		for i := 1; i < 3; i++ {
			if axisPenetrations[i] < axisPenetrations[bestAxis] {
				bestAxis = i
			}
		}

		desiredVelocity := axisPenetrations[bestAxis] * normalDirs[bestAxis]
		if desiredVelocity > 0 {
			result.depenetratingVelocity[bestAxis] = math32.Max(desiredVelocity, velocity[bestAxis])
		} else {
			result.depenetratingVelocity[bestAxis] = math32.Min(desiredVelocity, velocity[bestAxis])
		}
		return
	}

	sweptPenetration := axisPenetrationsSigned[separatingAxis] - (normalDirs[separatingAxis] * velocity[separatingAxis])
	if sweptPenetration <= 0 {
		return
	}

	resolvedVelocity := axisPenetrationsSigned[separatingAxis] * normalDirs[separatingAxis]
	result.clippedVelocity[separatingAxis] = resolvedVelocity
	result.depenetratingVelocity[separatingAxis] = resolvedVelocity
	return
}
