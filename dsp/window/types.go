package window

import (
	"fmt"
	"strings"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeFlatTop
	TypeKaiser
	TypeTukey
	TypeTriangle
	TypeCosine
	TypeWelch
	TypeGauss
)

// Metadata describes a window type. Spectral figures are the textbook
// large-N values and are zero for parametric windows, whose properties
// depend on the parameter; use [Analyze] for those.
type Metadata struct {
	Name            string
	Parametric      bool
	DefaultAlpha    float64
	ENBW            float64
	HighestSidelobe float64
	CoherentGain    float64
}

var metadata = [...]Metadata{
	TypeRectangular:         {Name: "Rectangular", ENBW: 1, HighestSidelobe: -13.3, CoherentGain: 1},
	TypeHann:                {Name: "Hann", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5},
	TypeHamming:             {Name: "Hamming", ENBW: 1.36, HighestSidelobe: -42.7, CoherentGain: 0.54},
	TypeBlackman:            {Name: "Blackman", ENBW: 1.73, HighestSidelobe: -58.1, CoherentGain: 0.42},
	TypeBlackmanHarris4Term: {Name: "Blackman-Harris", ENBW: 2.0, HighestSidelobe: -92, CoherentGain: 0.36},
	TypeFlatTop:             {Name: "Flat-top", ENBW: 3.77, HighestSidelobe: -93, CoherentGain: 0.22},
	TypeKaiser:              {Name: "Kaiser", Parametric: true, DefaultAlpha: 8.6},
	TypeTukey:               {Name: "Tukey", Parametric: true, DefaultAlpha: 0.5},
	TypeTriangle:            {Name: "Triangle", ENBW: 1.33, HighestSidelobe: -26.5, CoherentGain: 0.5},
	TypeCosine:              {Name: "Cosine", ENBW: 1.23, HighestSidelobe: -23, CoherentGain: 0.64},
	TypeWelch:               {Name: "Welch", ENBW: 1.2, HighestSidelobe: -21.3, CoherentGain: 0.67},
	TypeGauss:               {Name: "Gauss", Parametric: true, DefaultAlpha: 2.5},
}

// Types returns every supported window type in declaration order.
func Types() []Type {
	out := make([]Type, len(metadata))
	for i := range out {
		out[i] = Type(i)
	}

	return out
}

// Info returns the metadata of t, or the zero Metadata for unknown types.
func Info(t Type) Metadata {
	if t < 0 || int(t) >= len(metadata) {
		return Metadata{}
	}

	return metadata[t]
}

// String returns the display name of t.
func (t Type) String() string {
	if m := Info(t); m.Name != "" {
		return m.Name
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// Key returns the lower-case identifier accepted by ParseType.
func (t Type) Key() string {
	return strings.ToLower(t.String())
}

// ParseType resolves a case-insensitive window name such as "hann" or
// "Blackman-Harris". "bartlett" and "sine" are accepted as aliases of
// Triangle and Cosine.
func ParseType(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	switch key {
	case "bartlett":
		return TypeTriangle, nil
	case "sine":
		return TypeCosine, nil
	case "hanning":
		return TypeHann, nil
	}

	for _, t := range Types() {
		if t.Key() == key {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}
