package layout

import (
	"os"

	"github.com/calebcase/oops"
	"gopkg.in/yaml.v3"
)

// Spec is the file representation of a custom layout.
type Spec struct {
	Name     string `yaml:"name"`
	Sign     *int   `yaml:"sign"`
	Exponent int    `yaml:"exponent"`
	Mantissa int    `yaml:"mantissa"`
	Bias     *int64 `yaml:"bias"`
}

// Layout validates the spec. A missing sign width means one sign bit and a
// missing bias means DefaultBias.
func (s Spec) Layout() (Layout, error) {
	sign := 1
	if s.Sign != nil {
		sign = *s.Sign
	}

	bias := DefaultBias(s.Exponent)
	if s.Bias != nil {
		bias = *s.Bias
	}

	return New(sign, s.Exponent, s.Mantissa, bias)
}

// File is the document format read by Parse.
type File struct {
	Layouts []Spec `yaml:"layouts"`
}

// Parse reads custom layouts from a YAML document and adds them to r.
func (r *Registry) Parse(data []byte) (names []string, err error) {
	defer Error.WrapP(&err)

	var f File

	err = yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, oops.Trace(err)
	}

	for i, s := range f.Layouts {
		l, err := s.Layout()
		if err != nil {
			return nil, Error.New("layouts[%d] %q: %w", i, s.Name, err)
		}

		err = r.Add(s.Name, l)
		if err != nil {
			return nil, Error.New("layouts[%d] %q: %w", i, s.Name, err)
		}

		names = append(names, s.Name)
	}

	return names, nil
}

// ParseFile reads custom layouts from the YAML file at path and adds them to
// r.
func (r *Registry) ParseFile(path string) (names []string, err error) {
	defer Error.WrapP(&err)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Trace(err)
	}

	return r.Parse(data)
}
