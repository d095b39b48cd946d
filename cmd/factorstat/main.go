// Command factorstat prints factorization statistics for files. It
// computes the LZ77 or the relative Lempel-Ziv factorization, verifies that
// the factors reproduce the input and compares the number of factors with
// the sizes produced by general-purpose compressors.
//
// Usage:
//
//	factorstat [flags] file...
//
// Sizes may be given with SI or IEC prefixes, e.g. 64Ki or 1e6.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dsnet/golib/strconv"
	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"
	"golang.org/x/exp/slices"

	"github.com/ulikunitz/factor"
	"github.com/ulikunitz/factor/suffix"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"usage: factorstat [flags] file...\n")
	flag.PrintDefaults()
}

// parseSize parses a size with an optional prefix. The empty string
// returns zero.
func parseSize(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParsePrefix(s, strconv.AutoParse)
	if err != nil {
		return 0, err
	}
	if f < 0 || f > float64(1<<31-1) || f != float64(int(f)) {
		return 0, fmt.Errorf("size %q out of range", s)
	}
	return int(f), nil
}

func formatSize(n int64) string {
	s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
	return strings.Replace(s, ".00", "", -1)
}

// countWriter counts the bytes written.
type countWriter int64

func (w *countWriter) Write(p []byte) (n int, err error) {
	*w += countWriter(len(p))
	return len(p), nil
}

func deflateSize(p []byte) (int64, error) {
	var n countWriter
	w, err := flate.NewWriter(&n, flate.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err = w.Write(p); err != nil {
		return 0, err
	}
	if err = w.Close(); err != nil {
		return 0, err
	}
	return int64(n), nil
}

func xzSize(p []byte) (int64, error) {
	var n countWriter
	w, err := xz.NewWriter(&n)
	if err != nil {
		return 0, err
	}
	if _, err = io.Copy(w, bytes.NewReader(p)); err != nil {
		return 0, err
	}
	if err = w.Close(); err != nil {
		return 0, err
	}
	return int64(n), nil
}

// stats describes the factorization of a single file.
type stats struct {
	size      int
	factors   int
	literals  int
	longest   int
	repeat    int
	uniques   int
	deflate   int64
	xz        int64
	roundTrip bool
}

func decode(f factor.Factorizer, fs []factor.Factor) ([]byte, error) {
	if r, ok := f.(*factor.RLZ); ok {
		return r.DecodeFactors(fs)
	}
	return factor.Decode(fs)
}

func computeStats(f factor.Factorizer, p []byte) (s stats, err error) {
	s.size = len(p)
	fs := f.Factorize(p)
	s.factors = len(fs)
	for _, x := range fs {
		if x.IsLiteral() {
			s.literals++
		}
		s.longest = max(s.longest, int(x.Len))
	}
	q, err := decode(f, fs)
	if err != nil {
		return s, err
	}
	s.roundTrip = bytes.Equal(p, q)

	if len(p) > 0 {
		sa := suffix.New(p)
		lcp := make([]int32, len(p))
		suffix.LCP(p, sa, nil, lcp)
		s.repeat = int(slices.Max(lcp))
		s.uniques = len(suffix.MUS(p, sa, lcp))
	}

	if s.deflate, err = deflateSize(p); err != nil {
		return s, err
	}
	if s.xz, err = xzSize(p); err != nil {
		return s, err
	}
	return s, nil
}

func printStats(w io.Writer, name string, s stats) {
	fmt.Fprintf(w, "%s:\n", name)
	fmt.Fprintf(w, "  size:            %s\n", formatSize(int64(s.size)))
	fmt.Fprintf(w, "  factors:         %d\n", s.factors)
	fmt.Fprintf(w, "  literals:        %d\n", s.literals)
	if s.factors > 0 {
		fmt.Fprintf(w, "  avg factor len:  %.2f\n",
			float64(s.size)/float64(s.factors))
	}
	fmt.Fprintf(w, "  longest factor:  %d\n", s.longest)
	fmt.Fprintf(w, "  longest repeat:  %d\n", s.repeat)
	fmt.Fprintf(w, "  unique minimal:  %d\n", s.uniques)
	fmt.Fprintf(w, "  round trip:      %t\n", s.roundTrip)
	fmt.Fprintf(w, "  deflate:         %s\n", formatSize(s.deflate))
	fmt.Fprintf(w, "  xz:              %s\n", formatSize(s.xz))
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("factorstat: ")
	flag.Usage = usage

	var opts factor.Options
	flag.TextVar(&opts.Method, "method", factor.MethodLZ77,
		"factorization method (LZ77 or RLZ)")
	refFile := flag.String("ref", "", "reference file for RLZ")
	window := flag.String("window", "", "window size for LZ77 (0 is unbounded)")
	flag.IntVar(&opts.MinMatchLen, "min", 0, "minimum match length")
	sizeFlag := flag.String("size", "", "truncate inputs to size")
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	if opts.WindowSize, err = parseSize(*window); err != nil {
		log.Fatalf("-window: %s", err)
	}
	maxSize, err := parseSize(*sizeFlag)
	if err != nil {
		log.Fatalf("-size: %s", err)
	}
	if *refFile != "" {
		if opts.Reference, err = os.ReadFile(*refFile); err != nil {
			log.Fatal(err)
		}
	}

	f, err := factor.NewFactorizer(&opts)
	if err != nil {
		log.Fatal(err)
	}

	failed := false
	for _, name := range flag.Args() {
		p, err := os.ReadFile(name)
		if err != nil {
			log.Fatal(err)
		}
		if maxSize > 0 && len(p) > maxSize {
			p = p[:maxSize]
		}
		s, err := computeStats(f, p)
		if err != nil {
			log.Fatalf("%s: %s", name, err)
		}
		printStats(os.Stdout, name, s)
		if !s.roundTrip {
			failed = true
		}
	}
	if failed {
		log.Fatal("round trip failed")
	}
}
