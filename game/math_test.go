package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRound32(t *testing.T) {
	tests := []struct {
		val       float32
		precision int
		want      float32
	}{
		{11.8472, 2, 11.85},
		{11.8472, 0, 12},
		{-9.1, 1, -9.1},
		{0.5, 0, 1},
	}
	for _, tt := range tests {
		if got := Round32(tt.val, tt.precision); !Float32ApproxEq(got, tt.want) {
			t.Errorf("Round32(%v, %d) = %v, want %v", tt.val, tt.precision, got, tt.want)
		}
	}
}

func TestWrapYawDelta(t *testing.T) {
	tests := []struct {
		delta, want float32
	}{
		{0, 0},
		{179, 179},
		{181, -179},
		{-181, 179},
		{180, 180},
		{-180, -180},
	}
	for _, tt := range tests {
		if got := WrapYawDelta(tt.delta); got != tt.want {
			t.Errorf("WrapYawDelta(%v) = %v, want %v", tt.delta, got, tt.want)
		}
	}
}

func TestDirectionVector(t *testing.T) {
	tests := []struct {
		yaw  float32
		want mgl32.Vec3
	}{
		{0, mgl32.Vec3{0, 0, 1}},
		{90, mgl32.Vec3{-1, 0, 0}},
		{-90, mgl32.Vec3{1, 0, 0}},
		{180, mgl32.Vec3{0, 0, -1}},
	}
	for _, tt := range tests {
		got := DirectionVector(tt.yaw)
		for i := 0; i < 3; i++ {
			if !Float32ApproxEq(got[i], tt.want[i]) {
				t.Errorf("DirectionVector(%v) = %v, want %v", tt.yaw, got, tt.want)
				break
			}
		}
	}
}

func TestSlopeAngle(t *testing.T) {
	if got := SlopeAngle(mgl32.Vec3{0, 1, 0}); !Float32ApproxEq(got, 0) {
		t.Errorf("flat normal slope = %v, want 0", got)
	}
	if got := SlopeAngle(mgl32.Vec3{1, 0, 0}); got < 89.99 || got > 90.01 {
		t.Errorf("vertical surface slope = %v, want 90", got)
	}
}

func TestProjectOnPlaneKeepsTangent(t *testing.T) {
	normal := mgl32.Vec3{0, 1, 0}
	v := mgl32.Vec3{3, 5, -2}
	got := ProjectOnPlane(v, normal)
	if !Float32ApproxEq(got.Dot(normal), 0) {
		t.Errorf("projection %v is not tangent to the plane", got)
	}
	if !Float32ApproxEq(got.X(), 3) || !Float32ApproxEq(got.Z(), -2) {
		t.Errorf("projection %v lost its tangential part", got)
	}
}
