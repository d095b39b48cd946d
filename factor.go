// Package factor computes factorizations of byte strings. A factorization
// splits a text into a sequence of factors, each being either a single
// literal byte or a copy of bytes found at a source position.
//
// [LZ77] computes the greedy Lempel-Ziv 77 factorization, where sources
// point into the text before the factor. The factorization uses the previous
// and next smaller value arrays of the suffix array and runs in linear time.
// A [WindowFactorizer] restricts the sources to a sliding window.
//
// The relative Lempel-Ziv factorization provided by [RLZ] uses sources in a
// separate reference text. It searches the longest prefixes using the
// suffix array of the reference.
//
// Factors can be converted into the sequences known from the zstd
// specification using [Sequences] and decoded with the [Decoder].
package factor

import (
	"errors"
	"fmt"
)

// Factor describes a single factor. If Len is zero, the factor is a literal
// and Src contains the byte value. Otherwise the factor is a copy of Len
// bytes starting at position Src. For LZ77 factors the source may overlap
// the factor itself.
type Factor struct {
	Len uint32
	Src uint32
}

// Lit returns the literal factor for byte c.
func Lit(c byte) Factor {
	return Factor{Src: uint32(c)}
}

// IsLiteral reports whether the factor is a literal.
func (f Factor) IsLiteral() bool { return f.Len == 0 }

// Size returns the number of bytes the factor covers.
func (f Factor) Size() int {
	if f.Len == 0 {
		return 1
	}
	return int(f.Len)
}

// String returns a human-readable representation of the factor.
func (f Factor) String() string {
	if f.Len == 0 {
		return fmt.Sprintf("%q", rune(f.Src))
	}
	return fmt.Sprintf("(%d,%d)", f.Len, f.Src)
}

// Seq represents a single Lempel-Ziv 77 Sequence describing a match,
// consisting of the offset, the length of the match and the number of
// literals preceding the match. The Aux field can be used on upper
// layers to store additional information.
type Seq struct {
	LitLen   uint32
	MatchLen uint32
	Offset   uint32
	Aux      uint32
}

// Block stores sequences and literals. Note that literals that are not consumed
// by the Sequences slice need to be added to the end of the reconstructed data.
type Block struct {
	Sequences []Seq
	Literals  []byte
}

// Len returns the complete length of the sequence.
func (s Seq) Len() int64 {
	return int64(s.MatchLen) + int64(s.LitLen)
}

// Len computes the length of the block in bytes. It assumes that the sum of the
// literal lengths in the sequences doesn't exceed that length of the Literals
// byte slice.
func (b *Block) Len() int64 {
	n := int64(len(b.Literals))
	for _, s := range b.Sequences {
		n += int64(s.MatchLen)
	}
	return n
}

// ErrSource indicates a factor whose source is not available. For LZ77
// factors the source must be before the position of the factor.
var ErrSource = errors.New("factor: source out of range")

// errLiteral indicates a literal factor that doesn't contain a byte value.
var errLiteral = errors.New("factor: literal out of byte range")

// Sequences converts LZ77 factors into a block of sequences. The offset of
// each sequence is the distance between the position of the factor and its
// source. Literals following the last copy are kept in the Literals slice
// without a sequence.
func Sequences(fs []Factor) (Block, error) {
	var (
		blk    Block
		pos    int64
		litLen uint32
	)
	for _, f := range fs {
		if f.Len == 0 {
			if f.Src > 0xff {
				return blk, errLiteral
			}
			blk.Literals = append(blk.Literals, byte(f.Src))
			litLen++
			pos++
			continue
		}
		if int64(f.Src) >= pos {
			return blk, ErrSource
		}
		blk.Sequences = append(blk.Sequences, Seq{
			LitLen:   litLen,
			MatchLen: f.Len,
			Offset:   uint32(pos - int64(f.Src)),
		})
		litLen = 0
		pos += int64(f.Len)
	}
	return blk, nil
}
