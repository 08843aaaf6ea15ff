package world

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vantage-gg/stride/internal"
)

// Mask is a bit set of collision layers. A query only considers colliders
// whose mask intersects the query mask.
type Mask uint32

const (
	LayerDefault Mask = 1 << iota
	LayerTerrain
	LayerClimbable
)

// MaskAll matches every collision layer.
const MaskAll = ^Mask(0)

// Hit describes the nearest obstruction found by a swept query.
type Hit struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// World is a static set of axis-aligned box colliders that swept-sphere
// queries run against. Identical geometry added twice shares one cached entry.
type World struct {
	mu        sync.RWMutex
	colliders map[uint64]*cachedBox
}

// New returns an empty collider world.
func New() *World {
	return &World{colliders: make(map[uint64]*cachedBox)}
}

// AddBox inserts a static box collider on the given layers and returns its ID.
// The ID is a content hash of the geometry, so inserting the same box twice
// yields the same ID backed by a single reference-counted entry.
func (w *World) AddBox(box cube.BBox, mask Mask) uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := boxHash(box, mask)
	if c, ok := w.colliders[id]; ok {
		c.subscribe()
		return id
	}
	w.colliders[id] = newCachedBox(box, mask)
	return id
}

// RemoveBox drops one reference to the collider with the given ID, removing it
// once the last reference is gone.
func (w *World) RemoveBox(id uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.colliders[id]
	if !ok {
		return
	}
	if c.unsubscribe() == 0 {
		delete(w.colliders, id)
	}
}

// Len returns the number of unique colliders in the world.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.colliders)
}

// NearbyBoxes appends every collider box intersecting the given bounds to the
// slice passed and returns it.
func (w *World) NearbyBoxes(bounds cube.BBox, mask Mask, dst []cube.BBox) []cube.BBox {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, c := range w.colliders {
		if c.mask&mask == 0 {
			continue
		}
		if c.box.IntersectsWith(bounds) {
			dst = append(dst, c.box)
		}
	}
	return dst
}

// SweepSphere sweeps a sphere of the given radius from origin along dir
// (unit length not required) up to maxDist, returning the nearest obstruction
// on the queried layers. The second return value is false if nothing was hit.
func (w *World) SweepSphere(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDist float32, mask Mask) (Hit, bool) {
	if maxDist <= 0 || dir.LenSqr() <= 1e-12 {
		return Hit{}, false
	}
	dir = dir.Normalize()

	scratch := internal.BoxSlicePool.Get().(*[]cube.BBox)
	boxes := (*scratch)[:0]
	defer func() {
		*scratch = boxes[:0]
		internal.BoxSlicePool.Put(scratch)
	}()

	// Broad phase: every box near the swept segment, expanded by the sphere
	// radius on all sides.
	sweepBounds := segmentBounds(origin, origin.Add(dir.Mul(maxDist))).Grow(radius)
	boxes = w.NearbyBoxes(sweepBounds, mask, boxes)

	best := Hit{Distance: math32.MaxFloat32}
	found := false
	for _, box := range boxes {
		// Minkowski expansion turns the sphere sweep into a ray cast.
		expanded := box.Grow(radius)
		t, normal, ok := rayBox(origin, dir, expanded)
		if !ok || t > maxDist || t >= best.Distance {
			continue
		}
		best = Hit{
			Point:    origin.Add(dir.Mul(t)),
			Normal:   normal,
			Distance: t,
		}
		found = true
	}
	if !found {
		return Hit{}, false
	}
	return best, true
}

func segmentBounds(a, b mgl32.Vec3) cube.BBox {
	return cube.Box(
		math32.Min(a.X(), b.X()), math32.Min(a.Y(), b.Y()), math32.Min(a.Z(), b.Z()),
		math32.Max(a.X(), b.X()), math32.Max(a.Y(), b.Y()), math32.Max(a.Z(), b.Z()),
	)
}

// rayBox runs a slab test of the ray against the box, returning the entry
// distance and the normal of the face entered. A ray starting inside the box
// reports a zero-distance hit with a normal opposing the ray direction.
func rayBox(origin, dir mgl32.Vec3, box cube.BBox) (float32, mgl32.Vec3, bool) {
	tMin := float32(0)
	tMax := float32(math32.MaxFloat32)
	axis, axisDir := -1, float32(0)

	for i := 0; i < 3; i++ {
		if math32.Abs(dir[i]) <= 1e-8 {
			if origin[i] < box.Min()[i] || origin[i] > box.Max()[i] {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}

		inv := 1 / dir[i]
		t1 := (box.Min()[i] - origin[i]) * inv
		t2 := (box.Max()[i] - origin[i]) * inv
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tMin {
			tMin = t1
			axis, axisDir = i, sign
		}
		tMax = math32.Min(tMax, t2)
		if tMin > tMax {
			return 0, mgl32.Vec3{}, false
		}
	}

	if axis == -1 {
		// Ray origin inside the box.
		return 0, dir.Mul(-1), true
	}

	normal := mgl32.Vec3{}
	normal[axis] = axisDir
	return tMin, normal, true
}
