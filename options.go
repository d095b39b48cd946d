package factor

import (
	"fmt"
	"math"
)

// Method selects the factorization method.
type Method int

const (
	// MethodLZ77 selects the LZ77 factorization. Sources are positions
	// in the text itself.
	MethodLZ77 Method = 1 + iota
	// MethodRLZ selects the relative Lempel-Ziv factorization. Sources
	// are positions in a reference text.
	MethodRLZ
)

// String returns the name of the method.
func (m Method) String() string {
	switch m {
	case MethodLZ77:
		return "LZ77"
	case MethodRLZ:
		return "RLZ"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// MarshalText returns the name of the method.
func (m Method) MarshalText() ([]byte, error) {
	switch m {
	case MethodLZ77, MethodRLZ:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("factor: unknown Method %d", m)
	}
}

// UnmarshalText parses the name of the method.
func (m *Method) UnmarshalText(text []byte) error {
	switch string(text) {
	case "LZ77":
		*m = MethodLZ77
	case "RLZ":
		*m = MethodRLZ
	default:
		return fmt.Errorf("factor: unknown Method %q", text)
	}
	return nil
}

// Options define the factorizer created by NewFactorizer.
type Options struct {
	// supported methods: LZ77, RLZ
	Method Method `json:",omitzero"`

	// WindowSize restricts the sources of LZ77 factors to the given
	// number of preceding bytes. Zero means that the window is
	// unbounded.
	WindowSize int `json:",omitzero"`
	// Shorter matches are replaced by literals.
	MinMatchLen int `json:",omitzero"`

	// Reference is the reference text required by RLZ.
	Reference []byte `json:"-"`
}

func (opts *Options) setDefaults() {
	if opts == nil {
		return
	}
	if opts.Method == 0 {
		opts.Method = MethodLZ77
	}
	if opts.MinMatchLen == 0 {
		opts.MinMatchLen = 1
	}
}

func (opts *Options) verify() error {
	if opts == nil {
		return fmt.Errorf("factor: options are nil")
	}
	if !(0 <= opts.WindowSize && int64(opts.WindowSize) <= math.MaxInt32) {
		return fmt.Errorf("factor: invalid WindowSize=%d; must be in range [0..%d]",
			opts.WindowSize, math.MaxInt32)
	}
	if opts.MinMatchLen < 1 {
		return fmt.Errorf("factor: invalid MinMatchLen=%d; must be >= 1",
			opts.MinMatchLen)
	}
	switch opts.Method {
	case MethodLZ77:
		// ok
	case MethodRLZ:
		if len(opts.Reference) == 0 {
			return fmt.Errorf("factor: RLZ requires a reference")
		}
		if opts.WindowSize != 0 {
			return fmt.Errorf("factor: RLZ doesn't support WindowSize=%d",
				opts.WindowSize)
		}
		if opts.MinMatchLen != 1 {
			return fmt.Errorf("factor: RLZ doesn't support MinMatchLen=%d",
				opts.MinMatchLen)
		}
	default:
		return fmt.Errorf("factor: unknown Method %d", opts.Method)
	}
	return nil
}

// Factorizer computes factorizations of byte slices.
type Factorizer interface {
	Factorize(p []byte) []Factor
}

type lz77Factorizer struct {
	minMatchLen int
}

func (f lz77Factorizer) Factorize(p []byte) []Factor {
	return LZ77Min(p, f.minMatchLen)
}

// NewFactorizer creates the factorizer described by the options. Zero values
// are replaced by defaults, which will be visible in opts after the call. A
// nil opts value selects the default LZ77 factorizer.
func NewFactorizer(opts *Options) (Factorizer, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.setDefaults()
	if err := opts.verify(); err != nil {
		return nil, err
	}

	switch opts.Method {
	case MethodLZ77:
		if opts.WindowSize > 0 {
			wf, err := NewWindowFactorizer(opts.WindowSize,
				opts.MinMatchLen)
			if err != nil {
				return nil, err
			}
			return wf, nil
		}
		return lz77Factorizer{minMatchLen: opts.MinMatchLen}, nil
	case MethodRLZ:
		return NewRLZ(opts.Reference), nil
	default:
		return nil, fmt.Errorf("factor: unknown Method %d", opts.Method)
	}
}
