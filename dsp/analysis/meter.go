package analysis

import (
	"math"

	"github.com/cwbudde/algo-rtdsp/dsp/core"
	"github.com/cwbudde/algo-rtdsp/dsp/gain"
)

const (
	defaultIntegrationTime = 0.3
	defaultPeakRelease     = 1.5
)

// MeterOption configures a [LevelMeter].
type MeterOption func(*meterConfig)

type meterConfig struct {
	integration float64
	release     float64
}

// WithIntegrationTime sets the RMS time constant in seconds.
func WithIntegrationTime(seconds float64) MeterOption {
	return func(c *meterConfig) {
		if seconds > 0 && !math.IsInf(seconds, 0) {
			c.integration = seconds
		}
	}
}

// WithPeakRelease sets the time constant in seconds of the peak decay.
func WithPeakRelease(seconds float64) MeterOption {
	return func(c *meterConfig) {
		if seconds > 0 && !math.IsInf(seconds, 0) {
			c.release = seconds
		}
	}
}

// LevelMeter tracks smoothed RMS and decaying peak levels. It passes its
// input through unchanged so it can sit anywhere in a processing chain.
type LevelMeter[T core.Sample] struct {
	ms    LeakyIntegrator[T]
	decay T
	peak  T
	last  T
}

var _ core.Processor[float64] = (*LevelMeter[float64])(nil)

// NewLevelMeter returns a meter running at cfg.SampleRate.
func NewLevelMeter[T core.Sample](cfg core.ProcessorConfig, opts ...MeterOption) *LevelMeter[T] {
	mc := meterConfig{integration: defaultIntegrationTime, release: defaultPeakRelease}
	for _, opt := range opts {
		if opt != nil {
			opt(&mc)
		}
	}

	sr := cfg.SampleRate
	if !(sr > 0) {
		sr = core.DefaultProcessorConfig().SampleRate
	}

	m := &LevelMeter[T]{decay: T(AlphaForTime(mc.release, sr))}
	m.ms.SetAlpha(T(AlphaForTime(mc.integration, sr)))

	return m
}

// Process measures x and returns it unchanged.
func (m *LevelMeter[T]) Process(x T) T {
	m.ms.Process(x * x)

	a := x
	if a < 0 {
		a = -a
	}

	m.peak = max(a, core.FlushDenormals(m.peak*m.decay))
	m.last = x

	return x
}

// LastOut returns the most recent sample passed through.
func (m *LevelMeter[T]) LastOut() T {
	return m.last
}

// Clear resets both detectors.
func (m *LevelMeter[T]) Clear() {
	m.ms.Clear()
	m.peak = 0
	m.last = 0
}

// RMS returns the smoothed root-mean-square level.
func (m *LevelMeter[T]) RMS() float64 {
	return math.Sqrt(max(float64(m.ms.LastOut()), 0))
}

// Peak returns the decaying absolute peak.
func (m *LevelMeter[T]) Peak() float64 {
	return float64(m.peak)
}

// RMSDB returns [LevelMeter.RMS] in dBFS with a -120 dB floor.
func (m *LevelMeter[T]) RMSDB() float64 {
	return gain.FastToDB(m.RMS())
}

// PeakDB returns [LevelMeter.Peak] in dBFS with a -120 dB floor.
func (m *LevelMeter[T]) PeakDB() float64 {
	return gain.FastToDB(m.Peak())
}
