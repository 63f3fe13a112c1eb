// Copyright © 2024 Galvanized Logic Inc.

package physics

import "testing"

func TestFloorDivPositive(t *testing.T) {
	if got := floorDiv(9, 4); got != 2 {
		t.Errorf("got %f, wanted 2", got)
	}
}

func TestFloorDivNegativeRoundsTowardNegativeInfinity(t *testing.T) {
	if got := floorDiv(-1, 4); got != -1 {
		t.Errorf("got %f, wanted -1", got)
	}
	if got := floorDiv(-4, 4); got != -1 {
		t.Errorf("got %f, wanted -1", got)
	}
	if got := floorDiv(-5, 4); got != -2 {
		t.Errorf("got %f, wanted -2", got)
	}
}

func TestTileHashIsNonNegative(t *testing.T) {
	h := newSpatialHash(1, 8)
	for tx := -20; tx <= 20; tx++ {
		for ty := -20; ty <= 20; ty++ {
			if k := h.tileHash(tx, ty); k < 0 || k >= 8 {
				t.Fatalf("tileHash(%d,%d) = %d, out of bucket range", tx, ty, k)
			}
		}
	}
}

func TestSpatialHashInsertSingleTile(t *testing.T) {
	h := newSpatialHash(4, 64)
	box := Abox{SX: 0, SY: 0, LX: 1, LY: 1}
	h.insert(Handle{index: 1, gen: 1}, box)
	found := 0
	h.forEachOccupiedBucket(func(bucket []Handle) { found += len(bucket) })
	if found != 0 {
		t.Errorf("a lone body's bucket has only one entry and should not be reported as occupied, got %d", found)
	}
}

func TestSpatialHashInsertStraddlingTilesAppearsInEach(t *testing.T) {
	h := newSpatialHash(4, 64)
	// straddles the boundary at x=4 between two tiles.
	box := Abox{SX: 2, SY: 0, LX: 6, LY: 2}
	h.insert(Handle{index: 1, gen: 1}, box)
	tx0, _ := h.tileOf(2, 0)
	tx1, _ := h.tileOf(6, 0)
	if tx0 == tx1 {
		t.Fatal("test fixture expected the box to straddle two distinct tiles")
	}
	b0 := h.tileHash(tx0, 0)
	b1 := h.tileHash(tx1, 0)
	if len(h.buckets[b0]) == 0 || len(h.buckets[b1]) == 0 {
		t.Errorf("expected the straddling body to appear in both tile buckets, got %v and %v",
			h.buckets[b0], h.buckets[b1])
	}
}

func TestSpatialHashResetClearsBuckets(t *testing.T) {
	h := newSpatialHash(4, 64)
	h.insert(Handle{index: 1, gen: 1}, Abox{SX: 0, SY: 0, LX: 1, LY: 1})
	h.insert(Handle{index: 2, gen: 1}, Abox{SX: 0, SY: 0, LX: 1, LY: 1})
	h.reset()
	count := 0
	h.forEachOccupiedBucket(func(bucket []Handle) { count += len(bucket) })
	if count != 0 {
		t.Errorf("expected reset to clear every bucket, found %d entries", count)
	}
}

func TestForEachOccupiedBucketSkipsSingletons(t *testing.T) {
	h := newSpatialHash(4, 64)
	h.insert(Handle{index: 1, gen: 1}, Abox{SX: 0, SY: 0, LX: 1, LY: 1})
	h.insert(Handle{index: 2, gen: 1}, Abox{SX: 0, SY: 0, LX: 1, LY: 1})
	h.insert(Handle{index: 3, gen: 1}, Abox{SX: 100, SY: 100, LX: 101, LY: 101})

	var occupied [][]Handle
	h.forEachOccupiedBucket(func(bucket []Handle) { occupied = append(occupied, bucket) })
	if len(occupied) != 1 {
		t.Fatalf("got %d occupied buckets, wanted 1 (the lone body's bucket should be skipped)", len(occupied))
	}
	if len(occupied[0]) != 2 {
		t.Errorf("got %d handles in the occupied bucket, wanted 2", len(occupied[0]))
	}
}
