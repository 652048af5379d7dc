// Package bufpool provides size-classed sync.Pool instances for the
// scratch buffers the spectral transform allocates and releases once
// per channel: the spatial real buffer, the half-spectrum complex
// buffer, and the two decomposed real buffers.
//
// Grounded on the teacher's internal/pool package (bucketed sync.Pool
// by size class), generalized here from byte buckets to float64 and
// complex128 buckets sized by element count rather than byte count.
package bufpool

import "sync"

// sizeClasses are element-count buckets. Spectral sides are always
// even and typically small powers-of-two-adjacent numbers, so a
// handful of buckets covers the common cases without pathological
// waste.
var sizeClasses = []int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576}

func bucketFor(n int) int {
	for i, c := range sizeClasses {
		if n <= c {
			return i
		}
	}
	return len(sizeClasses) - 1
}

var float64Pools = make([]sync.Pool, len(sizeClasses))
var complex128Pools = make([]sync.Pool, len(sizeClasses))

func init() {
	for i := range sizeClasses {
		sz := sizeClasses[i]
		float64Pools[i] = sync.Pool{New: func() any {
			b := make([]float64, sz)
			return &b
		}}
		complex128Pools[i] = sync.Pool{New: func() any {
			b := make([]complex128, sz)
			return &b
		}}
	}
}

// GetFloat64 returns a zeroed []float64 of exactly length n. The
// caller must call PutFloat64 when the buffer's scope (a single
// channel transform) ends, including on error paths.
func GetFloat64(n int) []float64 {
	idx := bucketFor(n)
	bp := float64Pools[idx].Get().(*[]float64)
	b := *bp
	if cap(b) < n {
		b = make([]float64, n)
	} else {
		b = b[:n]
		for i := range b {
			b[i] = 0
		}
	}
	return b
}

// PutFloat64 returns b to its size-class pool.
func PutFloat64(b []float64) {
	idx := bucketFor(cap(b))
	bb := b[:cap(b)]
	float64Pools[idx].Put(&bb)
}

// GetComplex128 returns a zeroed []complex128 of exactly length n. The
// caller must call PutComplex128 when done, including on error paths.
func GetComplex128(n int) []complex128 {
	idx := bucketFor(n)
	bp := complex128Pools[idx].Get().(*[]complex128)
	b := *bp
	if cap(b) < n {
		b = make([]complex128, n)
	} else {
		b = b[:n]
		for i := range b {
			b[i] = 0
		}
	}
	return b
}

// PutComplex128 returns b to its size-class pool.
func PutComplex128(b []complex128) {
	idx := bucketFor(cap(b))
	bb := b[:cap(b)]
	complex128Pools[idx].Put(&bb)
}
