package suffix

import (
	"fmt"

	"github.com/viniciusth/rmq"
)

// LCE answers longest common extension queries: the length of the longest
// common prefix of two suffixes of the same text. The query is a range
// minimum query over the LCP array between the ranks of both suffixes.
type LCE struct {
	sainv []int32
	lcp   []int
	rmq   *rmq.RMQHybridNaive[int]
}

// NewLCE creates the LCE structure from the suffix array and LCP array of a
// text.
func NewLCE(sa, lcp []int32) *LCE {
	if len(sa) != len(lcp) {
		panic(fmt.Errorf("suffix: len(sa)=%d != len(lcp)=%d",
			len(sa), len(lcp)))
	}
	e := &LCE{
		sainv: make([]int32, len(sa)),
		lcp:   make([]int, len(lcp)),
	}
	InvertSA(sa, e.sainv)
	for i, l := range lcp {
		e.lcp[i] = int(l)
	}
	if len(e.lcp) > 0 {
		e.rmq = rmq.NewRMQHybridNaive(e.lcp)
	}
	return e
}

// Len returns the length of the longest common prefix of the suffixes at
// positions i and j.
func (e *LCE) Len(i, j int) int {
	n := len(e.sainv)
	if !(0 <= i && i < n) {
		panic(fmt.Errorf("suffix: LCE position i=%d out of range [0,%d)",
			i, n))
	}
	if !(0 <= j && j < n) {
		panic(fmt.Errorf("suffix: LCE position j=%d out of range [0,%d)",
			j, n))
	}
	if i == j {
		return n - i
	}
	r, s := int(e.sainv[i]), int(e.sainv[j])
	if r > s {
		r, s = s, r
	}
	return e.lcp[e.rmq.Query(r+1, s)]
}
