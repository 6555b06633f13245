package window

import (
	"iter"
	"math"

	"github.com/cwbudde/algo-rtdsp/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha    float64
	alphaSet bool
	periodic bool
	bartlett bool
}

// WithAlpha sets the shape parameter of Kaiser (beta), Tukey (taper
// ratio) and Gauss windows. Negative values are ignored.
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.alpha = v
			c.alphaSet = true
		}
	}
}

// WithPeriodic selects the DFT-even form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// WithBartlett makes Triangle reach zero at both ends.
func WithBartlett() Option {
	return func(c *config) {
		c.bartlett = true
	}
}

func newConfig(t Type, opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !cfg.alphaSet {
		cfg.alpha = Info(t).DefaultAlpha
	}

	return cfg
}

// Generate returns length coefficients of window t, or nil for length < 1.
func Generate(t Type, length int, opts ...Option) []float64 {
	return GenerateT[float64](t, length, opts...)
}

// GenerateT is Generate for any sample type.
func GenerateT[T core.Sample](t Type, length int, opts ...Option) []T {
	if length <= 0 {
		return nil
	}

	out := make([]T, length)
	for i, v := range Values[T](t, length, opts...) {
		out[i] = v
	}

	return out
}

// Values yields the coefficients of window t one at a time without
// allocating the whole window.
func Values[T core.Sample](t Type, length int, opts ...Option) iter.Seq2[int, T] {
	cfg := newConfig(t, opts)

	return func(yield func(int, T) bool) {
		sp := span(length, cfg.periodic)
		for i := range max(length, 0) {
			if !yield(i, T(eval(t, i, sp, cfg))) {
				return
			}
		}
	}
}

// Bartlett returns the triangular window with zero endpoints:
// w[n] = 1 - |(n-a)/a| with a = (N-1)/2. A single-sample window is [1].
func Bartlett[T core.Sample](length int) []T {
	return GenerateT[T](TypeTriangle, length, WithBartlett())
}

// Apply multiplies buf in place by window t.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// ApplyCoefficients returns samples multiplied by coeffs.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, ErrMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples by coeffs in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return ErrMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// EquivalentNoiseBandwidth returns N*sum(w^2)/sum(w)^2 in bins.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, ErrEmptyCoeffs
	}

	var sum, sumSq float64
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	if sum == 0 {
		return 0, ErrZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSq / (sum * sum), nil
}

// Hann returns a Hann window.
func Hann(size int, opts ...Option) ([]float64, error) {
	return generateChecked(TypeHann, size, nil, opts)
}

// Hamming returns a Hamming window.
func Hamming(size int, opts ...Option) ([]float64, error) {
	return generateChecked(TypeHamming, size, nil, opts)
}

// Blackman returns a Blackman window.
func Blackman(size int, opts ...Option) ([]float64, error) {
	return generateChecked(TypeBlackman, size, nil, opts)
}

// Kaiser returns a Kaiser window with shape beta >= 0.
func Kaiser(size int, beta float64, opts ...Option) ([]float64, error) {
	return generateChecked(TypeKaiser, size, validateRange("kaiser beta", beta, 0, math.MaxFloat64, false), withAlpha(opts, beta))
}

// Tukey returns a Tukey window whose tapered fraction alpha is in [0, 1].
func Tukey(size int, alpha float64, opts ...Option) ([]float64, error) {
	return generateChecked(TypeTukey, size, validateRange("tukey alpha", alpha, 0, 1, false), withAlpha(opts, alpha))
}

// Gaussian returns a Gauss window with alpha > 0.
func Gaussian(size int, alpha float64, opts ...Option) ([]float64, error) {
	return generateChecked(TypeGauss, size, validateRange("gauss alpha", alpha, 0, math.MaxFloat64, true), withAlpha(opts, alpha))
}

// withAlpha appends WithAlpha(v) without touching the caller's slice.
func withAlpha(opts []Option, v float64) []Option {
	return append(opts[:len(opts):len(opts)], WithAlpha(v))
}

func generateChecked(t Type, size int, paramErr error, opts []Option) ([]float64, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	if paramErr != nil {
		return nil, paramErr
	}

	return Generate(t, size, opts...), nil
}

// span is the distance in samples between the window's end points.
func span(length int, periodic bool) float64 {
	if periodic {
		return float64(length)
	}

	return float64(length - 1)
}

var (
	hannTerms     = []float64{0.5, -0.5}
	hammingTerms  = []float64{0.54, -0.46}
	blackmanTerms = []float64{0.42, -0.5, 0.08}
	bh4Terms      = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopTerms  = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

func eval(t Type, i int, span float64, cfg config) float64 {
	if span <= 0 {
		return 1
	}

	n := float64(i)
	x := n / span

	switch t {
	case TypeRectangular:
		return 1
	case TypeHann:
		return cosineSum(x, hannTerms)
	case TypeHamming:
		return cosineSum(x, hammingTerms)
	case TypeBlackman:
		return cosineSum(x, blackmanTerms)
	case TypeBlackmanHarris4Term:
		return cosineSum(x, bh4Terms)
	case TypeFlatTop:
		return cosineSum(x, flatTopTerms)
	case TypeKaiser:
		return kaiser(x, cfg.alpha)
	case TypeTukey:
		return tukey(x, cfg.alpha)
	case TypeTriangle:
		a := span / 2
		if cfg.bartlett {
			return 1 - math.Abs((n-a)/a)
		}

		return 1 - math.Abs(n-a)/(a+1)
	case TypeCosine:
		return math.Sin(math.Pi * x)
	case TypeWelch:
		d := 2*x - 1
		return 1 - d*d
	case TypeGauss:
		d := (2*x - 1) * cfg.alpha
		return math.Exp(-0.5 * d * d)
	default:
		return 1
	}
}

func cosineSum(x float64, terms []float64) float64 {
	phase := 2 * math.Pi * x

	var sum float64
	for k, c := range terms {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func kaiser(x, beta float64) float64 {
	if beta == 0 {
		return 1
	}

	r := 2*x - 1

	return besselI0(beta*math.Sqrt(max(0, 1-r*r))) / besselI0(beta)
}

func tukey(x, alpha float64) float64 {
	switch {
	case alpha <= 0:
		return 1
	case alpha >= 1:
		return cosineSum(x, hannTerms)
	}

	edge := min(x, 1-x)
	if edge >= alpha/2 {
		return 1
	}

	return 0.5 * (1 - math.Cos(2*math.Pi*edge/alpha))
}

// besselI0 evaluates the zeroth-order modified Bessel function of the
// first kind by its power series.
func besselI0(x float64) float64 {
	q := x * x / 4
	term, sum := 1.0, 1.0

	for k := 1.0; k < 500; k++ {
		term *= q / (k * k)
		sum += term

		if term < sum*1e-17 {
			break
		}
	}

	return sum
}
