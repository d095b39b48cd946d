// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package suffix provides a suffix sort algorithm and the arrays that can be
// derived from a suffix array.
//
// The suffix array is computed by induced sorting as described in the paper
// [Two Efficient Algorithms for Linear Time Suffix Array Construction]. The
// implementation doesn't require a sentinel at the end of the text. A suffix
// that is a prefix of another suffix sorts before it.
//
// [Two Efficient Algorithms for Linear Time Suffix Array Construction]: https://doi.org/10.1109/TC.2010.188
package suffix

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// empty marks an unused entry in the suffix array under construction.
const empty = -1

// sufType describes the type of a suffix. The suffix at position i is S-type
// if it is smaller than the suffix at i+1 and L-type if it is larger.
type sufType uint8

const (
	typeL sufType = iota
	typeS
)

// Sort computes the suffix array for t. The slice sa must have the same
// length as t. The text must not be empty.
func Sort(t []byte, sa []int32) {
	checkArgs(len(t), len(sa))
	bkt := make([]int32, max(256, len(t)))
	types := make([]sufType, len(t))
	sais(t, sa, bkt, types)
}

// SortInts computes the suffix array for a text over the alphabet [0,k). All
// symbols of t must be in that range.
func SortInts[T constraints.Integer](t []T, sa []int32, k int) {
	checkArgs(len(t), len(sa))
	if k <= 0 {
		panic(fmt.Errorf("suffix: alphabet size k=%d must be positive", k))
	}
	for i, c := range t {
		if c < 0 || uint64(c) >= uint64(k) {
			panic(fmt.Errorf("suffix: t[%d]=%d out of alphabet range [0,%d)",
				i, c, k))
		}
	}
	bkt := make([]int32, max(k, len(t)))
	types := make([]sufType, len(t))
	sais(t, sa, bkt, types)
}

// New allocates and returns the suffix array for t.
func New(t []byte) []int32 {
	sa := make([]int32, len(t))
	Sort(t, sa)
	return sa
}

func checkArgs(n, m int) {
	if n == 0 {
		panic(fmt.Errorf("suffix: text is empty"))
	}
	if n != m {
		panic(fmt.Errorf("suffix: len(t)=%d is different from len(sa)=%d",
			n, m))
	}
	if n > math.MaxInt32 {
		panic(fmt.Errorf("suffix: len(t)=%d > MaxInt32", n))
	}
}

// classify computes the suffix types for t. The last suffix is always
// L-type because the empty suffix following it is smaller.
func classify[T constraints.Integer](t []T, types []sufType) {
	n := len(t)
	types[n-1] = typeL
	for i := n - 1; i > 0; i-- {
		switch {
		case t[i-1] < t[i]:
			types[i-1] = typeS
		case t[i-1] > t[i]:
			types[i-1] = typeL
		default:
			types[i-1] = types[i]
		}
	}
}

// isLMS reports whether position i is a left-most S-type position. Position
// 0 is never LMS.
func isLMS(types []sufType, i int) bool {
	return i > 0 && types[i] == typeS && types[i-1] == typeL
}

// buckets computes the bucket offsets for t. If head is set bkt[c] will count
// the symbols smaller than c, otherwise the symbols smaller or equal to c.
func buckets[T constraints.Integer](t []T, bkt []int32, head bool) {
	clear(bkt)
	for _, c := range t {
		bkt[c]++
	}
	if head {
		var sum int32
		for c, k := range bkt {
			bkt[c] = sum
			sum += k
		}
		return
	}
	for c := 1; c < len(bkt); c++ {
		bkt[c] += bkt[c-1]
	}
}

// induceL puts the L-type suffixes into place. The last suffix has no
// successor that could induce it, so it goes first into the head of its
// bucket.
func induceL[T constraints.Integer](t []T, sa, bkt []int32, types []sufType) {
	buckets(t, bkt, true)
	n := len(t)
	c := t[n-1]
	sa[bkt[c]] = int32(n - 1)
	bkt[c]++
	for i := 0; i < len(sa); i++ {
		j := sa[i] - 1
		if j < 0 || types[j] != typeL {
			continue
		}
		c = t[j]
		sa[bkt[c]] = j
		bkt[c]++
	}
}

// induceS puts the S-type suffixes into place scanning sa from right to
// left.
func induceS[T constraints.Integer](t []T, sa, bkt []int32, types []sufType) {
	buckets(t, bkt, false)
	for i := len(sa) - 1; i >= 0; i-- {
		j := sa[i] - 1
		if j < 0 || types[j] != typeS {
			continue
		}
		c := t[j]
		bkt[c]--
		sa[bkt[c]] = j
	}
}

// equalLMS reports whether the LMS substrings at p and q are equal. An LMS
// substring reaching the end of the text includes the virtual sentinel and is
// therefore unique.
func equalLMS[T constraints.Integer](t []T, types []sufType, p, q int) bool {
	n := len(t)
	for d := 0; ; d++ {
		if p+d >= n || q+d >= n {
			return false
		}
		if t[p+d] != t[q+d] || types[p+d] != types[q+d] {
			return false
		}
		if d > 0 && isLMS(types, p+d) {
			return true
		}
	}
}

// sais computes the suffix array sa of t. The bucket array bkt must be
// larger than the largest symbol in t and types must have the length of t.
//
// The reduced problem is sorted in the front of sa: sa[:m] receives the
// suffix array and sa[m:2*m] holds the reduced text. Both sub-slices are
// disjoint and the recursion uses only bkt[:m] and types[:m].
func sais[T constraints.Integer](t []T, sa, bkt []int32, types []sufType) {
	n := len(t)
	classify(t, types)
	for i := range sa {
		sa[i] = empty
	}

	// Put the LMS positions into the tails of their buckets and sort the
	// LMS substrings by induction.
	buckets(t, bkt, false)
	for i := 1; i < n; i++ {
		if isLMS(types, i) {
			c := t[i]
			bkt[c]--
			sa[bkt[c]] = int32(i)
		}
	}
	induceL(t, sa, bkt, types)
	induceS(t, sa, bkt, types)

	// Move the sorted LMS substrings to the front of sa.
	m := 0
	for i := 0; i < n; i++ {
		j := sa[i]
		sa[i] = empty
		if isLMS(types, int(j)) {
			sa[m] = j
			m++
		}
	}

	// Name the LMS substrings. The name for the substring at position p
	// is stored at sa[m+p/2]; LMS positions are at least two apart.
	names := 0
	if m > 0 {
		names = 1
		sa[m+int(sa[0])/2] = 0
	}
	for i := 1; i < m; i++ {
		p, q := int(sa[i]), int(sa[i-1])
		if !equalLMS(t, types, p, q) {
			names++
		}
		sa[m+p/2] = int32(names - 1)
	}

	// Compact the names into sa[m:2*m] keeping text order.
	k := m
	for i := m; i < n; i++ {
		if x := sa[i]; x != empty {
			sa[i] = empty
			sa[k] = x
			k++
		}
	}
	sa2, t2 := sa[:m], sa[m:2*m]

	// Sort the LMS suffixes.
	if names < m {
		sais(t2, sa2, bkt[:m], types[:m])
		classify(t, types)
	} else {
		for i, c := range t2 {
			sa2[c] = int32(i)
		}
	}

	// Translate the indexes of the reduced text into LMS positions.
	j := 0
	for i := 1; i < n; i++ {
		if isLMS(types, i) {
			t2[j] = int32(i)
			j++
		}
	}
	for i, r := range sa2 {
		sa2[i] = t2[r]
	}
	for i := range t2 {
		t2[i] = empty
	}

	// Seed the bucket tails with the sorted LMS suffixes and induce the
	// final order.
	buckets(t, bkt, false)
	for i := m - 1; i >= 0; i-- {
		j := sa[i]
		sa[i] = empty
		c := t[j]
		bkt[c]--
		sa[bkt[c]] = j
	}
	induceL(t, sa, bkt, types)
	induceS(t, sa, bkt, types)
}
