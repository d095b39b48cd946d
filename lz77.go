package factor

import (
	"fmt"
	"math"

	"github.com/ulikunitz/factor/suffix"
)

// LZ77 computes the greedy LZ77 factorization of p. At each position the
// factor is the longest prefix of the remaining text that occurs at an
// earlier position. The occurrence may overlap the factor. If the prefix is
// empty, a literal factor is produced.
//
// If multiple earlier positions provide the longest prefix, the source is
// chosen from the two positions whose suffixes are lexicographically nearest
// to the suffix at the current position. The larger of both positions is
// preferred.
func LZ77(p []byte) []Factor {
	return LZ77Min(p, 1)
}

// LZ77Min computes the LZ77 factorization but replaces copies shorter than
// minMatchLen by literals. A minMatchLen less than 1 is treated as 1.
func LZ77Min(p []byte, minMatchLen int) []Factor {
	n := len(p)
	if n == 0 {
		return nil
	}
	if n > math.MaxInt32 {
		panic(fmt.Errorf("factor: len(p)=%d > MaxInt32", n))
	}
	minMatchLen = max(minMatchLen, 1)
	sa := suffix.New(p)
	psv := make([]int32, n)
	nsv := make([]int32, n)
	suffix.PSVNSV(sa, psv, nsv)

	var fs []Factor
	for i := 0; i < n; {
		f, m := longestPrevious(p, i, int(psv[i]), int(nsv[i]))
		if m < minMatchLen {
			fs = append(fs, Lit(p[i]))
			i++
			continue
		}
		fs = append(fs, Factor{Len: uint32(m), Src: uint32(f)})
		i += m
	}
	return fs
}

// longestPrevious compares the candidate sources f1 and f2 for position i
// and returns the source with the longer match. On equal match lengths the
// larger source wins. Candidates with value [suffix.None] are ignored.
func longestPrevious(p []byte, i, f1, f2 int) (f, m int) {
	if f1 != suffix.None {
		f, m = f1, matchLen(p[f1:], p[i:])
	}
	if f2 != suffix.None {
		m2 := matchLen(p[f2:], p[i:])
		if m2 > m || (m2 == m && f2 > f) {
			f, m = f2, m2
		}
	}
	return f, m
}

// Decode reconstructs the text from LZ77 factors. Copies may overlap the
// bytes they produce. A copy whose source isn't before its own position
// results in [ErrSource].
func Decode(fs []Factor) ([]byte, error) {
	var d Decoder
	if _, err := d.WriteFactors(fs); err != nil {
		return nil, err
	}
	return d.Data, nil
}
