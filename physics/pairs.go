// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

// pairs.go implements the pair table: a fixed-bucket-count chained hash
// of unordered body-Handle pairs, used to ensure a candidate pair is
// narrow-phase tested at most once per sub-step even though it may
// appear together in several spatial-hash buckets. The source keys on
// XOR of raw pointers; Handle is a value type here, so the key is
// formed from the (min, max) ordering of the two packed handle values
// instead, per the pointer-aliasing redesign note.

const pairTableBuckets = 256

// pairKey identifies an unordered pair of handles. Both packed handle
// values are kept in full: an earlier version combined them into a
// single uint64 with a shift, which silently truncated the first
// handle's index and let unrelated pairs collide.
type pairKey struct {
	lo, hi uint64
}

func makePairKey(a, b Handle) pairKey {
	ka, kb := packHandle(a), packHandle(b)
	if ka > kb {
		ka, kb = kb, ka
	}
	return pairKey{lo: ka, hi: kb}
}

func packHandle(h Handle) uint64 {
	return uint64(h.index)<<32 | uint64(h.gen)
}

// pairTable deduplicates unordered body pairs within one sub-step.
type pairTable struct {
	buckets [][]pairKey
}

func newPairTable() *pairTable {
	return &pairTable{buckets: make([][]pairKey, pairTableBuckets)}
}

func (t *pairTable) bucketOf(k pairKey) int {
	return int((k.lo ^ k.hi) % pairTableBuckets)
}

// reset clears every bucket, to be called once per sub-step.
func (t *pairTable) reset() {
	for i := range t.buckets {
		t.buckets[i] = t.buckets[i][:0]
	}
}

// seen reports whether the pair (a, b) was already marked this
// sub-step, independent of argument order.
func (t *pairTable) seen(a, b Handle) bool {
	k := makePairKey(a, b)
	bucket := t.buckets[t.bucketOf(k)]
	for _, existing := range bucket {
		if existing == k {
			return true
		}
	}
	return false
}

// mark records the pair (a, b) as seen for the remainder of the
// sub-step.
func (t *pairTable) mark(a, b Handle) {
	k := makePairKey(a, b)
	idx := t.bucketOf(k)
	t.buckets[idx] = append(t.buckets[idx], k)
}
