package factor

import (
	"fmt"
	"math"

	"github.com/ulikunitz/factor/suffix"
)

// WindowFactorizer computes the greedy LZ77 factorization with sources
// restricted to a sliding window. A factor at position i may only use
// sources in the range [i-WindowSize, i).
//
// The factorizer maintains the set of suffix ranks of all window positions.
// The window members nearest to the rank of the current position provide the
// longest match inside the window. The factorizer reuses its buffers for
// sequential calls of Factorize, but it must not be used concurrently.
type WindowFactorizer struct {
	// suffix array
	sa []int32
	// inverse suffix array
	isa []int32
	// bits marks the ranks of the positions in the window
	bits bitset

	windowSize  int
	minMatchLen int
}

// NewWindowFactorizer creates a new factorizer for the given window size and
// minimum match length.
func NewWindowFactorizer(windowSize, minMatchLen int) (*WindowFactorizer, error) {
	wf := new(WindowFactorizer)
	if err := wf.Init(windowSize, minMatchLen); err != nil {
		return nil, err
	}
	return wf, nil
}

// Init initializes the factorizer. A minMatchLen of zero is replaced by 1.
func (wf *WindowFactorizer) Init(windowSize, minMatchLen int) error {
	if minMatchLen == 0 {
		minMatchLen = 1
	}
	if !(1 <= windowSize && int64(windowSize) <= math.MaxInt32) {
		return fmt.Errorf(
			"factor: WindowSize=%d out of range [1..%d]",
			windowSize, math.MaxInt32)
	}
	if minMatchLen < 1 {
		return fmt.Errorf(
			"factor: MinMatchLen is %d; want >= 1", minMatchLen)
	}
	*wf = WindowFactorizer{
		sa:          wf.sa[:0],
		isa:         wf.isa[:0],
		bits:        wf.bits,
		windowSize:  windowSize,
		minMatchLen: minMatchLen,
	}
	return nil
}

// WindowSize returns the size of the window.
func (wf *WindowFactorizer) WindowSize() int { return wf.windowSize }

// sort computes the suffix array and its inverse for p.
func (wf *WindowFactorizer) sort(p []byte) {
	n := len(p)
	if n <= cap(wf.sa) {
		wf.sa = wf.sa[:n]
	} else {
		wf.sa = make([]int32, n)
	}
	suffix.Sort(p, wf.sa)
	if n <= cap(wf.isa) {
		wf.isa = wf.isa[:n]
	} else {
		wf.isa = make([]int32, n)
	}
	suffix.InvertSA(wf.sa, wf.isa)
	wf.bits.init(n)
}

// Factorize computes the factorization of p.
func (wf *WindowFactorizer) Factorize(p []byte) []Factor {
	if len(p) == 0 {
		return nil
	}
	if len(p) > math.MaxInt32 {
		panic(fmt.Errorf("factor: len(p)=%d > MaxInt32", len(p)))
	}
	wf.sort(p)

	var fs []Factor
	i := 0
	for i < len(p) {
		j := int(wf.isa[i])
		f1, f2 := suffix.None, suffix.None
		if k, ok := wf.bits.memberBefore(j); ok {
			f1 = int(wf.sa[k])
		}
		if k, ok := wf.bits.memberAfter(j); ok {
			f2 = int(wf.sa[k])
		}
		f, m := longestPrevious(p, i, f1, f2)
		k := i + 1
		if m < wf.minMatchLen {
			fs = append(fs, Lit(p[i]))
		} else {
			fs = append(fs, Factor{Len: uint32(m), Src: uint32(f)})
			k = i + m
		}
		for ; i < k; i++ {
			wf.bits.insert(int(wf.isa[i]))
			if d := i - wf.windowSize; d >= 0 {
				wf.bits.delete(int(wf.isa[d]))
			}
		}
	}
	return fs
}
