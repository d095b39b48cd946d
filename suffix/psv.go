package suffix

import "fmt"

// None marks the absence of a position in the PSV and NSV arrays.
const None = -1

// PSVNSV computes the previous and next smaller value arrays for the suffix
// array sa. Both arrays are indexed by text position. For the suffix at
// position p with rank r, psv[p] is the position sa[k] with the largest rank
// k < r and sa[k] < p and nsv[p] is the position sa[k] with the smallest rank
// k > r and sa[k] < p. Missing values are set to None.
//
// The two positions are the suffixes starting before p that are
// lexicographically closest to the suffix at p. One of them shares the
// longest prefix with it.
func PSVNSV(sa, psv, nsv []int32) {
	if len(psv) != len(sa) {
		panic(fmt.Errorf("suffix: len(psv)=%d != len(sa)=%d",
			len(psv), len(sa)))
	}
	if len(nsv) != len(sa) {
		panic(fmt.Errorf("suffix: len(nsv)=%d != len(sa)=%d",
			len(nsv), len(sa)))
	}
	for i := range nsv {
		nsv[i] = None
	}
	// The stack of increasing positions is linked through psv.
	top := int32(None)
	for _, p := range sa {
		for top > p {
			nsv[top] = p
			top = psv[top]
		}
		psv[p] = top
		top = p
	}
}
