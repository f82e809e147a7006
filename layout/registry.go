package layout

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Standard layouts.
var (
	Float16       = Layout{sign: 1, exponent: 5, mantissa: 10, bias: 15}
	Float32       = Layout{sign: 1, exponent: 8, mantissa: 23, bias: 127}
	Float64       = Layout{sign: 1, exponent: 11, mantissa: 52, bias: 1023}
	Float128      = Layout{sign: 1, exponent: 15, mantissa: 112, bias: 16383}
	Float256      = Layout{sign: 1, exponent: 19, mantissa: 236, bias: 262143}
	FP8E4M3       = Layout{sign: 1, exponent: 4, mantissa: 3, bias: 7}
	FP8E5M2       = Layout{sign: 1, exponent: 5, mantissa: 2, bias: 15}
	BFloat16      = Layout{sign: 1, exponent: 8, mantissa: 7, bias: 127}
	TensorFloat32 = Layout{sign: 1, exponent: 8, mantissa: 10, bias: 127}
)

type entry struct {
	name    string
	layout  Layout
	aliases []string
}

var builtins = []entry{
	{"float16", Float16, []string{"half", "binary16", "fp16", "f16"}},
	{"float32", Float32, []string{"single", "binary32", "fp32", "f32"}},
	{"float64", Float64, []string{"double", "binary64", "fp64", "f64"}},
	{"float128", Float128, []string{"quad", "binary128", "fp128", "f128"}},
	{"float256", Float256, []string{"octuple", "binary256", "fp256", "f256"}},
	{"fp8-e4m3", FP8E4M3, []string{"e4m3"}},
	{"fp8-e5m2", FP8E5M2, []string{"e5m2"}},
	{"bfloat16", BFloat16, []string{"bf16"}},
	{"tensorfloat32", TensorFloat32, []string{"tf32"}},
}

// normalize folds case and drops separators so "FP8_E4M3", "fp8-e4m3" and
// "Fp8 E4M3" name the same layout.
func normalize(name string) string {
	name = cases.Fold().String(strings.TrimSpace(name))

	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '.':
			return -1
		}
		return r
	}, name)
}

// Registry maps layout names to layouts.
type Registry struct {
	names   []string
	layouts map[string]Layout
	index   map[string]string
}

// NewRegistry returns a registry holding the standard layouts.
func NewRegistry() *Registry {
	r := &Registry{
		layouts: map[string]Layout{},
		index:   map[string]string{},
	}

	for _, e := range builtins {
		r.add(e.name, e.layout)
		for _, alias := range e.aliases {
			r.index[normalize(alias)] = e.name
		}
	}

	return r
}

func (r *Registry) add(name string, l Layout) {
	if _, ok := r.layouts[name]; !ok {
		r.names = append(r.names, name)
	}

	r.layouts[name] = l
	r.index[normalize(name)] = name
}

// Add validates l and registers it under name, replacing any layout that
// already uses that name.
func (r *Registry) Add(name string, l Layout) (err error) {
	defer Error.WrapP(&err)

	if normalize(name) == "" {
		return Error.New("%w: empty name", ErrInvalid)
	}

	err = l.Validate()
	if err != nil {
		return err
	}

	r.add(name, l)

	return nil
}

// Lookup returns the layout registered under name or one of its aliases.
func (r *Registry) Lookup(name string) (Layout, bool) {
	canonical, ok := r.index[normalize(name)]
	if !ok {
		return Layout{}, false
	}

	l, ok := r.layouts[canonical]

	return l, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Aliases returns the alternate names of a standard layout, sorted.
func (r *Registry) Aliases(name string) (aliases []string) {
	canonical, ok := r.index[normalize(name)]
	if !ok {
		return nil
	}

	for _, e := range builtins {
		if e.name == canonical {
			aliases = append(aliases, e.aliases...)
		}
	}

	sort.Strings(aliases)

	return aliases
}

var standard = NewRegistry()

// Lookup returns the standard layout registered under name or an alias.
func Lookup(name string) (Layout, bool) {
	return standard.Lookup(name)
}

// Names returns the names of the standard layouts.
func Names() []string {
	return standard.Names()
}
