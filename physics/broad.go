// Copyright © 2024 Galvanized Logic Inc.

package physics

// broad.go implements the broad phase: a fixed-size spatial hash that
// maps bodies to the integer tile cells their AABBs overlap, replacing
// this package's former 3D distance-sweep-plus-union-find island
// collector. Tiles are hashed into a fixed bucket count with the same
// large-prime XOR scheme production spatial hashes use (credited in
// Teschner et al., "Optimized Spatial Hashing for Collision Detection
// of Deformable Objects").

const (
	hashPrimeX = 73856093
	hashPrimeY = 19349663
)

// spatialHash is a fixed-size array of B buckets, each holding the
// handles of bodies whose AABB overlaps a tile that hashes into that
// bucket. It is rebuilt from scratch every sub-step; Go's slices play
// the role of the source's per-bucket linked list of heap nodes.
type spatialHash struct {
	cellSize float64
	buckets  [][]Handle
}

func newSpatialHash(cellSize float64, bucketCount int) *spatialHash {
	return &spatialHash{
		cellSize: cellSize,
		buckets:  make([][]Handle, bucketCount),
	}
}

// tileHash hashes a tile coordinate into a bucket index, made
// non-negative as required by the key definition.
func (h *spatialHash) tileHash(tx, ty int) int {
	k := (tx * hashPrimeX) ^ (ty * hashPrimeY)
	k %= len(h.buckets)
	if k < 0 {
		k += len(h.buckets)
	}
	return k
}

// reset empties every bucket without releasing their backing arrays, so
// repeated Step calls do not churn the allocator once buckets reach a
// steady-state size.
func (h *spatialHash) reset() {
	for i := range h.buckets {
		h.buckets[i] = h.buckets[i][:0]
	}
}

// insert adds handle to every bucket whose tile the body's AABB
// overlaps. A body straddling several tiles appears in each of their
// buckets; pair-table dedup resolves the resulting duplicate candidate
// pairs.
func (h *spatialHash) insert(handle Handle, box Abox) {
	minTX, minTY := h.tileOf(box.SX, box.SY)
	maxTX, maxTY := h.tileOf(box.LX, box.LY)
	for tx := minTX; tx <= maxTX; tx++ {
		for ty := minTY; ty <= maxTY; ty++ {
			cell := h.tileBounds(tx, ty)
			if !cell.Overlaps(&box) {
				continue
			}
			b := h.tileHash(tx, ty)
			h.buckets[b] = append(h.buckets[b], handle)
		}
	}
}

func (h *spatialHash) tileOf(x, y float64) (int, int) {
	return int(floorDiv(x, h.cellSize)), int(floorDiv(y, h.cellSize))
}

func (h *spatialHash) tileBounds(tx, ty int) Abox {
	sx, sy := float64(tx)*h.cellSize, float64(ty)*h.cellSize
	return Abox{SX: sx, SY: sy, LX: sx + h.cellSize, LY: sy + h.cellSize}
}

// floorDiv divides x by size and rounds toward negative infinity, so
// tile indices are contiguous across the origin.
func floorDiv(x, size float64) float64 {
	q := x / size
	if q < 0 {
		f := float64(int(q))
		if f != q {
			return f - 1
		}
		return f
	}
	return float64(int(q))
}

// forEachOccupiedBucket calls fn with every bucket holding 2 or more
// handles — buckets with fewer can contain no candidate pair.
func (h *spatialHash) forEachOccupiedBucket(fn func(bucket []Handle)) {
	for _, bucket := range h.buckets {
		if len(bucket) >= 2 {
			fn(bucket)
		}
	}
}
