package factor

import "testing"

func simpleMatchLen(p, q []byte) int {
	if len(p) < len(q) {
		p, q = q, p
	}
	n := 0
	for i, b := range q {
		if p[i] != b {
			break
		}
		n++
	}
	return n
}

func TestMatchLen(t *testing.T) {
	tests := []struct {
		p, q []byte
		n    int
	}{
		{p: []byte("hello"), q: []byte("hello, world"), n: 5},
		{p: []byte("foobarfoobar"), q: []byte("foobarfoobaz"), n: 11},
		{p: nil, q: []byte("foo"), n: 0},
		{p: nil, q: nil, n: 0},
		{p: []byte("foo"), q: []byte("bar"), n: 0},
		{p: []byte("abcdefghijk"), q: []byte("abcdefgh"), n: 8},
	}
	for _, tc := range tests {
		n := matchLen(tc.p, tc.q)
		if n != tc.n {
			t.Fatalf("matchLen(%q, %q) is %d; want %d",
				tc.p, tc.q, n, tc.n)
		}
	}
}

func FuzzMatchLen(f *testing.F) {
	f.Add([]byte("Hello, universe!"), []byte("Hello, world!"))
	f.Add([]byte(""), []byte("abc"))
	f.Add([]byte(""), []byte(""))
	f.Fuzz(func(t *testing.T, p, q []byte) {
		g := matchLen(p, q)
		w := simpleMatchLen(p, q)
		if g != w {
			t.Fatalf("matchLen(%q, %q) = %d; want %d", p, q, g, w)
		}
	})
}
