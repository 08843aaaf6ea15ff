package internal

import (
	"sync"

	"github.com/ethaniccc/float32-cube/cube"
)

// BoxSlicePool recycles scratch collider lists used by swept queries and the
// capsule mover. Stored as *[]cube.BBox so a Put does not allocate.
var BoxSlicePool = sync.Pool{
	New: func() interface{} {
		s := make([]cube.BBox, 0, 16)
		return &s
	},
}
