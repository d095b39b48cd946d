// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import (
	"fmt"
	"math"
)

// Interval describes an LCP interval. The suffixes sa[Lb:Rb] share a common
// prefix of length Lcp and the interval cannot be extended on either side
// without reducing the common prefix. At least one pair of neighbours inside
// the interval shares exactly Lcp bytes.
//
// The common prefixes of the LCP intervals are the right-maximal repeats of
// the text.
type Interval struct {
	Lcp int32
	Lb  int32
	Rb  int32
}

// Intervals calls f for all LCP intervals with a common prefix of at least
// minLen bytes. The intervals are reported bottom-up: an interval is reported
// after all intervals nested in it. An interval with an empty common prefix
// exists only if the suffixes don't all start with the same byte.
func Intervals(lcp []int32, minLen int, f func(iv Interval)) {
	if !(0 <= minLen && minLen <= math.MaxInt32) {
		panic(fmt.Errorf("suffix: minLen=%d out of range", minLen))
	}
	if len(lcp) > math.MaxInt32 {
		panic(fmt.Errorf("suffix: len(lcp)=%d > MaxInt32", len(lcp)))
	}
	if len(lcp) < 2 {
		return
	}
	type item struct {
		n  int32
		lb int32
		// lcp value n found inside the interval
		hit bool
	}
	stack := make([]item, 1, 16)
	m := int32(minLen)
	for j := int32(1); j <= int32(len(lcp)); j++ {
		n := int32(-1)
		if j < int32(len(lcp)) {
			n = lcp[j]
		}
		lb := j - 1
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if n >= top.n {
				if n == top.n {
					top.hit = true
				}
				break
			}
			stack = stack[:len(stack)-1]
			if top.hit && top.n >= m {
				f(Interval{Lcp: top.n, Lb: top.lb, Rb: j})
			}
			lb = top.lb
		}
		if len(stack) == 0 || n > stack[len(stack)-1].n {
			if n >= 0 {
				stack = append(stack, item{n, lb, true})
			}
		}
	}
}
