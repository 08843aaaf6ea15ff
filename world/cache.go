package world

import (
	"encoding/binary"
	"math"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/zeebo/xxh3"
)

// cachedBox is a reference-counted collider entry. Hosts that spawn many
// copies of the same prop end up sharing one entry per unique geometry.
type cachedBox struct {
	box  cube.BBox
	mask Mask
	subs int64
}

func newCachedBox(box cube.BBox, mask Mask) *cachedBox {
	return &cachedBox{box: box, mask: mask, subs: 1}
}

func (c *cachedBox) subscribe() {
	c.subs++
}

func (c *cachedBox) unsubscribe() int64 {
	c.subs--
	return c.subs
}

// boxHash returns a content hash of the collider geometry and layer mask,
// used as the collider's stable ID.
func boxHash(box cube.BBox, mask Mask) uint64 {
	var buf [28]byte
	min, max := box.Min(), box.Max()
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(min[i]))
		binary.LittleEndian.PutUint32(buf[12+i*4:], math.Float32bits(max[i]))
	}
	binary.LittleEndian.PutUint32(buf[24:], uint32(mask))
	return xxh3.Hash(buf[:])
}
