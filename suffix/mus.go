package suffix

import "fmt"

// Substring describes the substring t[Pos:Pos+Len] of a text.
type Substring struct {
	Pos int32
	Len int32
}

// MUS returns the minimal unique substrings of t ordered by position. A
// substring is unique if it occurs exactly once in t; it is minimal if none
// of its proper substrings is unique. The arrays sa and lcp must be the
// suffix and LCP arrays of t.
func MUS(t []byte, sa, lcp []int32) []Substring {
	n := len(t)
	if len(sa) != n || len(lcp) != n {
		panic(fmt.Errorf("suffix: len(sa)=%d and len(lcp)=%d must be len(t)=%d",
			len(sa), len(lcp), n))
	}
	// The shortest unique prefix of a suffix is one byte longer than the
	// longest prefix it shares with a neighbour in the suffix array. The
	// ends of these prefixes don't decrease with the position, so a
	// candidate is minimal if it has the largest start for its end.
	start := make([]int32, n)
	for i := range start {
		start[i] = None
	}
	for k, p := range sa {
		l := lcp[k]
		if k+1 < n && lcp[k+1] > l {
			l = lcp[k+1]
		}
		e := p + l
		if int(e) < n && start[e] < p {
			start[e] = p
		}
	}
	var a []Substring
	for e, p := range start {
		if p == None {
			continue
		}
		a = append(a, Substring{Pos: p, Len: int32(e) - p + 1})
	}
	return a
}
