// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package factor

import (
	"errors"
	"io"
	"math"
)

// Decoder reconstructs text from factors or sequences. The decoded text is
// accumulated in Data. R tracks the read position in Data and must be less
// than or equal to the length of the Data slice.
//
// If WindowSize is positive, the decoder rejects offsets larger than the
// window size.
type Decoder struct {
	// Data contains the decoded text.
	Data []byte
	// R tracks the position of the reads from the Data slice.
	R int
	// WindowSize limits the offsets of matches if it is positive.
	WindowSize int
}

// Reset returns the Decoder to its initial state. The window size is kept.
func (d *Decoder) Reset() {
	*d = Decoder{
		Data:       d.Data[:0],
		WindowSize: d.WindowSize,
	}
}

// Read reads decoded data from the buffer.
func (d *Decoder) Read(p []byte) (n int, err error) {
	if d.R >= len(d.Data) && len(p) > 0 {
		return 0, io.EOF
	}
	n = copy(p, d.Data[d.R:])
	d.R += n
	return n, nil
}

// WriteTo writes the decoded data not read yet to the writer.
func (d *Decoder) WriteTo(w io.Writer) (n int64, err error) {
	k, err := w.Write(d.Data[d.R:])
	d.R += k
	return int64(k), err
}

// WriteByte appends a single byte.
func (d *Decoder) WriteByte(c byte) error {
	d.Data = append(d.Data, c)
	return nil
}

// Write appends the slice to the decoded text. It never fails.
func (d *Decoder) Write(p []byte) (n int, err error) {
	d.Data = append(d.Data, p...)
	return len(p), nil
}

// Errors for WriteMatch and WriteBlock.
var (
	errLitLen   = errors.New("factor: LitLen out of range")
	errMatchLen = errors.New("factor: MatchLen out of range")
	errOffset   = errors.New("factor: Offset out of range")
)

// winLen returns the number of bytes available for matches if the decoded
// text has length n.
func (d *Decoder) winLen(n int) int {
	if d.WindowSize > 0 {
		return min(n, d.WindowSize)
	}
	return n
}

// appendMatch appends a copy of m bytes starting o bytes before the end of
// the decoded text. The copy may overlap the bytes it produces.
func (d *Decoder) appendMatch(m, o int) {
	for m > o {
		d.Data = append(d.Data, d.Data[len(d.Data)-o:]...)
		m -= o
		if m <= o {
			break
		}
		o <<= 1
	}
	// m <= o
	i := len(d.Data) - o
	d.Data = append(d.Data, d.Data[i:i+m]...)
}

// WriteMatch appends the match with length mu and offset ou to the decoded
// text.
func (d *Decoder) WriteMatch(mu, ou uint32) (n int, err error) {
	if ou == 0 && mu > 0 {
		return 0, errOffset
	}
	if int64(ou) > int64(d.winLen(len(d.Data))) {
		return 0, errOffset
	}
	if int64(len(d.Data))+int64(mu) > math.MaxInt32 {
		return 0, errMatchLen
	}
	d.appendMatch(int(mu), int(ou))
	return int(mu), nil
}

// WriteBlock writes sequences from the block into the decoded text. Each
// sequence is written atomically. All written sequences and literals will be
// removed from the block.
//
// The function returns the number of bytes written.
func (d *Decoder) WriteBlock(blk *Block) (n int, err error) {
	var (
		k int
		s Seq
	)
	for k, s = range blk.Sequences {
		if int64(s.LitLen) > int64(len(blk.Literals)) {
			err = errLitLen
			goto end
		}
		l := int(s.LitLen)
		if int64(s.Offset) > int64(d.winLen(len(d.Data)+l)) {
			err = errOffset
			goto end
		}
		o := int(s.Offset)
		m := int(s.MatchLen)
		if m > 0 && o == 0 {
			err = errOffset
			goto end
		}
		if int64(len(d.Data))+int64(l)+int64(m) > math.MaxInt32 {
			err = errMatchLen
			goto end
		}
		n += l + m
		d.Data = append(d.Data, blk.Literals[:l]...)
		blk.Literals = blk.Literals[l:]
		d.appendMatch(m, o)
	}
	k = len(blk.Sequences)
	d.Data = append(d.Data, blk.Literals...)
	n += len(blk.Literals)
	blk.Literals = blk.Literals[:0]
end:
	blk.Sequences = blk.Sequences[k:]
	return n, err
}

// WriteFactors writes LZ77 factors into the decoded text. The sources of the
// factors are positions in Data; usually the decoder starts empty. The
// function returns the number of bytes written.
func (d *Decoder) WriteFactors(fs []Factor) (n int, err error) {
	for _, f := range fs {
		if f.Len == 0 {
			if f.Src > 0xff {
				return n, errLiteral
			}
			d.Data = append(d.Data, byte(f.Src))
			n++
			continue
		}
		if int64(f.Src) >= int64(len(d.Data)) {
			return n, ErrSource
		}
		k, err := d.WriteMatch(f.Len, uint32(len(d.Data)-int(f.Src)))
		n += k
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
