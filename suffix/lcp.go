// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import (
	"fmt"
	"math"
	"math/bits"
)

// kasai computes the LCP array without the argument checks.
//
// The suffixes are visited in text order. If the suffix at i shares l bytes
// with its predecessor in the suffix array, the suffix at i+1 shares at least
// l-1 bytes with its own predecessor.
func kasai(t []byte, sa, sainv, lcp []int32) {
	l := int32(0)
	for i, k := range sainv {
		if k == 0 {
			lcp[0] = 0
			l = 0
			continue
		}
		j := sa[k-1]
		l += int32(matchLen(t[int32(i)+l:], t[j+l:]))
		lcp[k] = l
		if l > 0 {
			l--
		}
	}
}

// InvertSA computes the inverse of the suffix array. The inverse maps a text
// position to the rank of its suffix.
func InvertSA(sa, sainv []int32) {
	if len(sa) != len(sainv) {
		panic(fmt.Errorf("suffix: len(sa)=%d != len(sainv)=%d",
			len(sa), len(sainv)))
	}
	for j, i := range sa {
		sainv[i] = int32(j)
	}
}

// LCP computes the LCP table for t. The entry lcp[k] is the length of the
// longest common prefix of the suffixes sa[k-1] and sa[k]; lcp[0] is zero. If
// sa and sainv don't have the length of t, they will be temporarily computed.
func LCP(t []byte, sa, sainv, lcp []int32) {
	if len(t) > math.MaxInt32 {
		panic(fmt.Errorf("suffix: len(t)=%d > MaxInt32", len(t)))
	}
	if len(lcp) != len(t) {
		panic(fmt.Errorf("suffix: len(lcp)=%d != len(t)=%d",
			len(lcp), len(t)))
	}
	if len(t) == 0 {
		return
	}
	if len(sa) != len(t) {
		sa = New(t)
	}
	if len(sainv) != len(sa) {
		sainv = make([]int32, len(sa))
		InvertSA(sa, sainv)
	}
	kasai(t, sa, sainv, lcp)
}

// matchLen computes the length of the common prefix between p and q.
func matchLen(p, q []byte) int {
	if len(q) > len(p) {
		p, q = q, p
	}
	n := 0
	for len(q) >= 8 {
		x := _getLE64(p) ^ _getLE64(q)
		k := bits.TrailingZeros64(x) >> 3
		n += k
		if k < 8 {
			return n
		}
		q = q[8:]
		p = p[8:]
	}
	for i, b := range q {
		if p[i] != b {
			break
		}
		n++
	}
	return n
}

// _getLE64 loads a uint64 value from the p field. This function will be inlined
// and compiled into a simple move on little-endian 64 bit architectures.
//
// If p is too small the function will panic.
func _getLE64(p []byte) uint64 {
	_ = p[7]
	return uint64(p[0]) | uint64(p[1])<<8 | uint64(p[2])<<16 |
		uint64(p[3])<<24 | uint64(p[4])<<32 | uint64(p[5])<<40 |
		uint64(p[6])<<48 | uint64(p[7])<<56
}
