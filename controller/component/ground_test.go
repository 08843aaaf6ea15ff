package component_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vantage-gg/stride/world"
)

func TestGroundSensorNoHitForcesFall(t *testing.T) {
	rig := newTestRig()
	rig.noGround()

	rig.c.Tick(1.0 / 60)

	st := rig.c.State()
	if st.Grounded {
		t.Error("grounded without any ground hit")
	}
	if !st.ForcedFall {
		t.Error("missing forced fall on absent ground hit")
	}
	if st.GroundNormal != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("ground normal = %v, want up", st.GroundNormal)
	}
	if !rig.c.IsFalling() {
		t.Error("IsFalling() = false while airborne")
	}
}

func TestGroundSensorFlatGround(t *testing.T) {
	rig := newTestRig()
	rig.groundAt(0)

	rig.c.Tick(1.0 / 60)

	st := rig.c.State()
	if !st.Grounded {
		t.Error("not grounded on flat ground")
	}
	if st.ForcedFall {
		t.Error("forced fall on flat ground with no intent")
	}
}

func TestGroundSensorLedgeOverridesContact(t *testing.T) {
	rig := newTestRig()
	conf := rig.c.Conf()

	// The direct downward cast hits, but the smaller-radius ledge probe finds
	// nothing ahead.
	ledgeRadius := conf.Capsule.Radius * conf.Ground.LedgeRadiusScale
	rig.sweeper.fn = func(origin mgl32.Vec3, rad float32, dir mgl32.Vec3, maxDist float32, _ world.Mask) (world.Hit, bool) {
		if approxEq(rad, ledgeRadius) {
			return world.Hit{}, false
		}
		return world.Hit{Normal: mgl32.Vec3{0, 1, 0}, Distance: 0.5}, true
	}

	// Without forward intent the direct contact stands.
	rig.c.SetMoveAndTurn(0, 0, false)
	rig.c.Tick(1.0 / 60)
	if st := rig.c.State(); !st.Grounded || st.ForcedFall {
		t.Fatalf("stationary character lost contact: grounded=%v forcedFall=%v", st.Grounded, st.ForcedFall)
	}

	// With forward intent the failed ledge probe forces a fall despite the
	// positive direct contact.
	rig.c.SetMoveAndTurn(1, 0, true)
	rig.c.Tick(1.0 / 60)
	st := rig.c.State()
	if st.Grounded {
		t.Error("grounded although the ledge probe failed while moving")
	}
	if !st.ForcedFall {
		t.Error("missing forced fall on failed ledge probe while moving")
	}
}

func TestGroundSensorSteepSlopeNotWalkable(t *testing.T) {
	rig := newTestRig()

	// 60 degree slope normal, beyond the 45 degree limit.
	angle := mgl32.DegToRad(60)
	normal := mgl32.Vec3{math32.Sin(angle), math32.Cos(angle), 0}
	rig.sweeper.fn = func(origin mgl32.Vec3, rad float32, dir mgl32.Vec3, maxDist float32, _ world.Mask) (world.Hit, bool) {
		return world.Hit{Normal: normal, Distance: 0.3}, true
	}

	rig.c.Tick(1.0 / 60)
	st := rig.c.State()
	if st.Grounded {
		t.Error("grounded on a slope beyond the limit")
	}
	if st.GroundNormal != normal {
		t.Errorf("ground normal = %v, want the surface normal %v", st.GroundNormal, normal)
	}
}

func TestGroundSensorSteepLedgeSurfaceForcesFall(t *testing.T) {
	rig := newTestRig()
	conf := rig.c.Conf()

	// The ledge probe hits, but the surface it finds is too steep to stand on.
	angle := mgl32.DegToRad(75)
	steep := mgl32.Vec3{math32.Sin(angle), math32.Cos(angle), 0}
	ledgeRadius := conf.Capsule.Radius * conf.Ground.LedgeRadiusScale
	rig.sweeper.fn = func(origin mgl32.Vec3, rad float32, dir mgl32.Vec3, maxDist float32, _ world.Mask) (world.Hit, bool) {
		if approxEq(rad, ledgeRadius) {
			return world.Hit{Normal: steep, Distance: 0.2}, true
		}
		return world.Hit{Normal: mgl32.Vec3{0, 1, 0}, Distance: 0.5}, true
	}

	rig.c.SetMoveAndTurn(1, 0, true)
	rig.c.Tick(1.0 / 60)
	if st := rig.c.State(); !st.ForcedFall {
		t.Error("steep ledge surface did not force a fall")
	}
}
