package core

import "math"

// ProcessorConfig carries the host settings shared by rate-dependent
// constructors such as analysis.NewLevelMeter.
//
// BlockSize is not used by any processor, since every Processor works one
// sample at a time. It is the buffer length a host or tool should hand to
// ProcessBlock; cmd/wininfo takes its default window length from it.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns 48 kHz and 1024-sample blocks.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{SampleRate: 48000, BlockSize: 1024}
}

// WithSampleRate sets the sample rate. Non-positive and non-finite values
// keep the current rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && !math.IsInf(sampleRate, 1) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the host block length. Non-positive values are ignored.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions starts from DefaultProcessorConfig and applies opts
// in order, skipping nil entries.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Samples converts a duration in seconds to a whole number of samples at the
// configured rate, rounding to nearest. Negative durations yield 0.
func (cfg ProcessorConfig) Samples(seconds float64) int {
	if seconds <= 0 || cfg.SampleRate <= 0 {
		return 0
	}

	return int(seconds*cfg.SampleRate + 0.5)
}
