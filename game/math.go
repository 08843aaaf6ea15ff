package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x float32) float32 {
	if x < 0 {
		return -1
	} else if x > 0 {
		return 1
	}
	return 0
}

// DirectionVector returns a flat forward direction vector from the given yaw in degrees.
func DirectionVector(yaw float32) mgl32.Vec3 {
	yawRad := mgl32.DegToRad(yaw)
	return mgl32.Vec3{
		-math32.Sin(yawRad),
		0,
		math32.Cos(yawRad),
	}
}

// WrapYawDelta ...
func WrapYawDelta(delta float32) float32 {
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	return delta
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// HorizontalVec returns the vector with its vertical component removed.
func HorizontalVec(vec mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{vec.X(), 0, vec.Z()}
}

// VerticalVec returns the vector with only its vertical component kept.
func VerticalVec(vec mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{0, vec.Y(), 0}
}

// ProjectOnPlane projects vec onto the plane described by the given unit normal.
func ProjectOnPlane(vec, normal mgl32.Vec3) mgl32.Vec3 {
	sqrLen := normal.LenSqr()
	if sqrLen <= 1e-12 {
		return vec
	}
	d := vec.Dot(normal) / sqrLen
	return vec.Sub(normal.Mul(d))
}

// SlopeAngle returns the angle in degrees between the given surface normal and
// the world up axis.
func SlopeAngle(normal mgl32.Vec3) float32 {
	d := ClampFloat(normal.Dot(mgl32.Vec3{0, 1, 0}), -1, 1)
	return mgl32.RadToDeg(math32.Acos(d))
}
