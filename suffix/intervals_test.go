// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import (
	"cmp"
	"math/rand"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/slices"
)

func logSuffixes(t *testing.T, p []byte, s []int32) {
	for _, i := range s {
		t.Logf("%3d %s", i, p[i:])
	}
}

func naiveIntervals(lcp []int32, minLen int) []Interval {
	n := len(lcp)
	var a []Interval
	for lb := 0; lb < n; lb++ {
		for rb := lb + 2; rb <= n; rb++ {
			m := slices.Min(lcp[lb+1 : rb])
			if int(m) < minLen {
				continue
			}
			if lb > 0 && lcp[lb] >= m {
				continue
			}
			if rb < n && lcp[rb] >= m {
				continue
			}
			a = append(a, Interval{Lcp: m, Lb: int32(lb), Rb: int32(rb)})
		}
	}
	return a
}

func sortIntervals(a []Interval) {
	slices.SortFunc(a, func(x, y Interval) int {
		if c := cmp.Compare(x.Lb, y.Lb); c != 0 {
			return c
		}
		return cmp.Compare(x.Rb, y.Rb)
	})
}

func TestIntervals(t *testing.T) {
	tests := []string{
		"abbababb",
		"mississippi",
		"=====foofoobarfoobar bartender====",
	}
	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			p := []byte(tc)
			sa := New(p)
			lcp := make([]int32, len(p))
			LCP(p, sa, nil, lcp)
			t.Log("## SuffixArray")
			logSALCP(t, p, sa, lcp)
			for _, minLen := range []int{0, 1, 2} {
				var got []Interval
				Intervals(lcp, minLen, func(iv Interval) {
					got = append(got, iv)
				})
				sortIntervals(got)
				if minLen == 2 {
					for _, iv := range got {
						t.Logf("## Interval lcp=%d", iv.Lcp)
						logSuffixes(t, p, sa[iv.Lb:iv.Rb])
					}
				}
				want := naiveIntervals(lcp, minLen)
				sortIntervals(want)
				if diff := gocmp.Diff(want, got,
					cmpopts.EquateEmpty()); diff != "" {
					t.Fatalf("minLen=%d mismatch (-want +got):\n%s",
						minLen, diff)
				}
			}
		})
	}
}

func TestIntervalsNested(t *testing.T) {
	// The interval with lcp 1 must start at the left bound of the
	// nested interval with lcp 2.
	lcp := []int32{0, 2, 1}
	var got []Interval
	Intervals(lcp, 0, func(iv Interval) { got = append(got, iv) })
	want := []Interval{{2, 0, 2}, {1, 0, 3}}
	if diff := gocmp.Diff(want, got); diff != "" {
		t.Fatalf("Intervals mismatch (-want +got):\n%s", diff)
	}
}

func TestIntervalsRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 30; i++ {
		p := make([]byte, 1+r.Intn(80))
		for j := range p {
			p[j] = 'a' + byte(r.Intn(2))
		}
		sa := New(p)
		lcp := make([]int32, len(p))
		LCP(p, sa, nil, lcp)
		var got []Interval
		Intervals(lcp, 0, func(iv Interval) { got = append(got, iv) })
		sortIntervals(got)
		want := naiveIntervals(lcp, 0)
		sortIntervals(want)
		if diff := gocmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("Intervals(%q) mismatch (-want +got):\n%s",
				p, diff)
		}
	}
}
