package world

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func TestSweepSphereNearestHit(t *testing.T) {
	w := New()
	w.AddBox(cube.Box(-1, 0, 3, 1, 1, 4), LayerTerrain)
	w.AddBox(cube.Box(-1, 0, 6, 1, 1, 7), LayerTerrain)

	// A non-unit direction must give the same world-space distance.
	hit, ok := w.SweepSphere(mgl32.Vec3{0, 0.5, 0}, 0.3, mgl32.Vec3{0, 0, 2}, 10, MaskAll)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !approx(hit.Distance, 2.7) {
		t.Errorf("distance = %v, want 2.7 (surface minus radius)", hit.Distance)
	}
	if hit.Normal != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("normal = %v, want the face opposing the sweep", hit.Normal)
	}
}

func TestSweepSphereMaskFiltering(t *testing.T) {
	w := New()
	w.AddBox(cube.Box(-1, 0, 2, 1, 1, 3), LayerClimbable)

	if _, ok := w.SweepSphere(mgl32.Vec3{0, 0.5, 0}, 0.2, mgl32.Vec3{0, 0, 1}, 10, LayerTerrain); ok {
		t.Error("query on a disjoint layer should miss")
	}
	if _, ok := w.SweepSphere(mgl32.Vec3{0, 0.5, 0}, 0.2, mgl32.Vec3{0, 0, 1}, 10, MaskAll); !ok {
		t.Error("query on all layers should hit")
	}
}

func TestSweepSphereRange(t *testing.T) {
	w := New()
	w.AddBox(cube.Box(-1, 0, 5, 1, 1, 6), LayerTerrain)

	if _, ok := w.SweepSphere(mgl32.Vec3{0, 0.5, 0}, 0.3, mgl32.Vec3{0, 0, 1}, 4, MaskAll); ok {
		t.Error("hit reported beyond the sweep range")
	}
	if _, ok := w.SweepSphere(mgl32.Vec3{0, 0.5, 0}, 0.3, mgl32.Vec3{0, 0, 1}, 5, MaskAll); !ok {
		t.Error("hit at 4.7 missed with range 5")
	}
}

func TestSweepSphereOriginInside(t *testing.T) {
	w := New()
	w.AddBox(cube.Box(-2, -2, -2, 2, 2, 2), LayerTerrain)

	hit, ok := w.SweepSphere(mgl32.Vec3{0, 0, 0}, 0.3, mgl32.Vec3{0, 0, 1}, 10, MaskAll)
	if !ok {
		t.Fatal("expected an immediate hit from inside the collider")
	}
	if hit.Distance != 0 {
		t.Errorf("distance = %v, want 0", hit.Distance)
	}
	if hit.Normal != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("normal = %v, want opposite of the sweep direction", hit.Normal)
	}
}

func TestSweepSphereDiagonalCornerMiss(t *testing.T) {
	w := New()
	w.AddBox(cube.Box(0, 0, 5, 1, 1, 6), LayerTerrain)

	// The diagonal ray leaves the z slab before it enters the x slab, so the
	// slabs never overlap and the sweep passes the corner.
	if _, ok := w.SweepSphere(mgl32.Vec3{-3, 0.5, 4}, 0.2, mgl32.Vec3{1, 0, 1}, 20, MaskAll); ok {
		t.Error("sweep past the box corner should miss")
	}

	// Starting on the diagonal toward the corner region, both slabs overlap.
	if _, ok := w.SweepSphere(mgl32.Vec3{-1, 0.5, 4}, 0.2, mgl32.Vec3{1, 0, 1}, 20, MaskAll); !ok {
		t.Error("diagonal sweep into the box should hit")
	}
}

func TestSweepSphereDegenerate(t *testing.T) {
	w := New()
	w.AddBox(cube.Box(-1, -1, -1, 1, 1, 1), LayerTerrain)

	if _, ok := w.SweepSphere(mgl32.Vec3{0, 0, -5}, 0.3, mgl32.Vec3{}, 10, MaskAll); ok {
		t.Error("zero direction should not hit")
	}
	if _, ok := w.SweepSphere(mgl32.Vec3{0, 0, -5}, 0.3, mgl32.Vec3{0, 0, 1}, 0, MaskAll); ok {
		t.Error("zero range should not hit")
	}
}

func TestAddBoxDedupe(t *testing.T) {
	w := New()
	box := cube.Box(0, 0, 0, 1, 1, 1)

	a := w.AddBox(box, LayerTerrain)
	b := w.AddBox(box, LayerTerrain)
	if a != b {
		t.Fatalf("identical geometry produced distinct IDs %v and %v", a, b)
	}
	if w.Len() != 1 {
		t.Fatalf("len = %d after duplicate insert, want 1", w.Len())
	}

	// Same box on a different layer is a distinct collider.
	c := w.AddBox(box, LayerClimbable)
	if c == a {
		t.Error("different masks should not share an ID")
	}
	if w.Len() != 2 {
		t.Fatalf("len = %d, want 2", w.Len())
	}

	// The shared entry survives until its last reference is dropped.
	w.RemoveBox(a)
	if w.Len() != 2 {
		t.Fatalf("len = %d after first remove, want 2", w.Len())
	}
	w.RemoveBox(a)
	if w.Len() != 1 {
		t.Fatalf("len = %d after second remove, want 1", w.Len())
	}
	w.RemoveBox(a)
	if w.Len() != 1 {
		t.Fatalf("len = %d after removing a dead ID, want 1", w.Len())
	}
}

func TestNearbyBoxes(t *testing.T) {
	w := New()
	w.AddBox(cube.Box(0, 0, 0, 1, 1, 1), LayerTerrain)
	w.AddBox(cube.Box(10, 0, 0, 11, 1, 1), LayerTerrain)
	w.AddBox(cube.Box(0.5, 0, 0, 1.5, 1, 1), LayerClimbable)

	got := w.NearbyBoxes(cube.Box(-1, -1, -1, 2, 2, 2), LayerTerrain, nil)
	if len(got) != 1 {
		t.Fatalf("nearby = %d boxes, want only the overlapping terrain box", len(got))
	}
	got = w.NearbyBoxes(cube.Box(-1, -1, -1, 2, 2, 2), MaskAll, got[:0])
	if len(got) != 2 {
		t.Fatalf("nearby = %d boxes with all layers, want 2", len(got))
	}
}

func approx(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= 1e-4
}
