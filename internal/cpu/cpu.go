// Package cpu detects the SIMD extensions used to select block kernels.
//
// Detection runs once on first use and is cached. Tests can override the
// result with SetForcedFeatures.
package cpu

import "sync"

// SIMDLevel identifies an instruction set extension a kernel requires.
type SIMDLevel int

const (
	// SIMDNone is the portable Go fallback.
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDAVX2
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric disables every accelerated kernel.
	ForceGeneric bool

	Architecture string
}

var (
	detectOnce       sync.Once
	detectedFeatures Features

	forcedMu       sync.RWMutex
	forcedFeatures *Features
)

// DetectFeatures returns the features of the running CPU. Safe for
// concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	forced := forcedFeatures
	forcedMu.RUnlock()

	if forced != nil {
		return *forced
	}

	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})

	return detectedFeatures
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()

	forcedFeatures = &f
}

// ResetDetection drops any forced features.
func ResetDetection() {
	forcedMu.Lock()
	defer forcedMu.Unlock()

	forcedFeatures = nil
}

// Supports reports whether features allow a kernel requiring level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
