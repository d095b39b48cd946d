package factor

import (
	"fmt"
	"math"
	"sort"

	"github.com/ulikunitz/factor/suffix"
)

// RLZ supports the relative Lempel-Ziv factorization of texts against a
// reference. The sources of the factors are positions in the reference.
//
// The longest prefix of a text occurring in the reference is found by
// narrowing a range of the reference's suffix array one byte at a time.
type RLZ struct {
	ref []byte
	sa  []int32
}

// NewRLZ creates the index for the reference text. The function panics if
// the reference is empty.
func NewRLZ(ref []byte) *RLZ {
	if len(ref) == 0 {
		panic(fmt.Errorf("factor: RLZ reference is empty"))
	}
	if len(ref) > math.MaxInt32 {
		panic(fmt.Errorf("factor: len(ref)=%d > MaxInt32", len(ref)))
	}
	return &RLZ{ref: ref, sa: suffix.New(ref)}
}

// Ref returns the reference text.
func (r *RLZ) Ref() []byte { return r.ref }

// SuffixArray returns the suffix array of the reference.
func (r *RLZ) SuffixArray() []int32 { return r.sa }

func (r *RLZ) checkRange(beg, end, depth int) {
	if !(0 <= beg && beg <= end && end <= len(r.sa)) {
		panic(fmt.Errorf("factor: range [%d,%d) out of range [0,%d)",
			beg, end, len(r.sa)))
	}
	if depth < 0 {
		panic(fmt.Errorf("factor: negative depth %d", depth))
	}
}

// symbol returns the byte at offset depth of the suffix with rank k. The
// second return value is false if the suffix is shorter.
func (r *RLZ) symbol(k, depth int) (c byte, ok bool) {
	i := int(r.sa[k]) + depth
	if i >= len(r.ref) {
		return 0, false
	}
	return r.ref[i], true
}

// LowerBound returns the first rank in [beg,end) whose suffix has a byte of
// at least c at offset depth. All suffixes in the range must share a common
// prefix of depth bytes. Suffixes too short to have a byte at offset depth
// are smaller than all others. If no rank qualifies, end is returned.
func (r *RLZ) LowerBound(beg, end, depth int, c byte) int {
	r.checkRange(beg, end, depth)
	return beg + sort.Search(end-beg, func(k int) bool {
		d, ok := r.symbol(beg+k, depth)
		return ok && d >= c
	})
}

// UpperBound returns the first rank in [beg,end) whose suffix has a byte
// larger than c at offset depth. The conditions of LowerBound apply.
func (r *RLZ) UpperBound(beg, end, depth int, c byte) int {
	r.checkRange(beg, end, depth)
	return beg + sort.Search(end-beg, func(k int) bool {
		d, ok := r.symbol(beg+k, depth)
		return ok && d > c
	})
}

// LCPRange returns the range [beg,end) of the suffix array holding the
// suffixes of the reference that start with the longest prefix of p found in
// the reference. The length of that prefix is returned as n. If n is zero
// the range covers the complete suffix array.
func (r *RLZ) LCPRange(p []byte) (beg, end, n int) {
	beg, end = 0, len(r.sa)
	for n < len(p) {
		c := p[n]
		b := r.LowerBound(beg, end, n, c)
		e := r.UpperBound(b, end, n, c)
		if b == e {
			break
		}
		beg, end = b, e
		n++
	}
	return beg, end, n
}

// EncodeFactor returns the factor for the longest prefix of p found in the
// reference. If the first byte of p doesn't occur in the reference, the
// factor is a literal. The source is the smallest-ranked suffix of the
// range found by LCPRange. The slice p must not be empty.
func (r *RLZ) EncodeFactor(p []byte) Factor {
	if len(p) == 0 {
		panic(fmt.Errorf("factor: EncodeFactor called with empty slice"))
	}
	beg, _, n := r.LCPRange(p)
	if n == 0 {
		return Lit(p[0])
	}
	return Factor{Len: uint32(n), Src: uint32(r.sa[beg])}
}

// EncodeFactors computes the relative Lempel-Ziv factorization of p.
func (r *RLZ) EncodeFactors(p []byte) []Factor {
	var fs []Factor
	for i := 0; i < len(p); {
		f := r.EncodeFactor(p[i:])
		fs = append(fs, f)
		i += f.Size()
	}
	return fs
}

// Factorize computes the relative Lempel-Ziv factorization of p. It is the
// same as EncodeFactors.
func (r *RLZ) Factorize(p []byte) []Factor {
	return r.EncodeFactors(p)
}

// AppendFactor appends the bytes described by the factor to dst. A copy must
// lie completely inside the reference.
func (r *RLZ) AppendFactor(dst []byte, f Factor) ([]byte, error) {
	if f.Len == 0 {
		if f.Src > 0xff {
			return dst, errLiteral
		}
		return append(dst, byte(f.Src)), nil
	}
	if int64(f.Src)+int64(f.Len) > int64(len(r.ref)) {
		return dst, ErrSource
	}
	return append(dst, r.ref[f.Src:f.Src+f.Len]...), nil
}

// DecodeFactors reconstructs the text from its relative Lempel-Ziv
// factorization.
func (r *RLZ) DecodeFactors(fs []Factor) ([]byte, error) {
	var (
		p   []byte
		err error
	)
	for _, f := range fs {
		if p, err = r.AppendFactor(p, f); err != nil {
			return nil, err
		}
	}
	return p, nil
}
