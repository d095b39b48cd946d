package factor

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptionsJSON(t *testing.T) {
	opts := Options{
		Method:      MethodLZ77,
		WindowSize:  32768,
		MinMatchLen: 3,
		Reference:   []byte("ignored"),
	}
	data, err := json.MarshalIndent(opts, "", "  ")
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	t.Logf("Marshalled JSON:\n%s", data)

	var optsG Options
	if err := json.Unmarshal(data, &optsG); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	opts.Reference = nil
	if diff := cmp.Diff(opts, optsG); diff != "" {
		t.Fatalf("json.Unmarshal mismatch (-want +got):\n%s", diff)
	}
}

func TestMethodText(t *testing.T) {
	for _, m := range []Method{MethodLZ77, MethodRLZ} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() error %s", m, err)
		}
		var g Method
		if err = g.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error %s", text, err)
		}
		if g != m {
			t.Fatalf("UnmarshalText(%q) = %v; want %v", text, g, m)
		}
	}
	if _, err := Method(0).MarshalText(); err == nil {
		t.Fatalf("Method(0).MarshalText() succeeded; want error")
	}
	var m Method
	if err := m.UnmarshalText([]byte("LZ78")); err == nil {
		t.Fatalf("UnmarshalText(%q) succeeded; want error", "LZ78")
	}
}

func TestNewFactorizer(t *testing.T) {
	p := []byte("=====foofoobarfoobar bartender====")
	tests := []struct {
		name string
		opts *Options
		want []Factor
	}{
		{"nil", nil, LZ77(p)},
		{"default", &Options{}, LZ77(p)},
		{"min", &Options{MinMatchLen: 4}, LZ77Min(p, 4)},
		{"window", &Options{WindowSize: 1 << 16}, LZ77(p)},
		{"rlz", &Options{Method: MethodRLZ, Reference: p},
			[]Factor{{Len: uint32(len(p)), Src: 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewFactorizer(tc.opts)
			if err != nil {
				t.Fatalf("NewFactorizer error %s", err)
			}
			fs := f.Factorize(p)
			if diff := cmp.Diff(tc.want, fs); diff != "" {
				t.Fatalf("Factorize mismatch (-want +got):\n%s",
					diff)
			}
		})
	}
}

func TestNewFactorizerErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"window", Options{WindowSize: -1}},
		{"min", Options{MinMatchLen: -1}},
		{"method", Options{Method: 7}},
		{"reference", Options{Method: MethodRLZ}},
		{"rlz window", Options{Method: MethodRLZ, WindowSize: 8,
			Reference: []byte("a")}},
		{"rlz min", Options{Method: MethodRLZ, MinMatchLen: 3,
			Reference: []byte("a")}},
	}
	for _, tc := range tests {
		if _, err := NewFactorizer(&tc.opts); err == nil {
			t.Errorf("%s: NewFactorizer(%+v) succeeded; want error",
				tc.name, tc.opts)
		} else {
			t.Logf("%s: %s", tc.name, err)
		}
	}
}
