// Package gain converts between linear amplitude and decibels and applies
// gain to samples and blocks.
//
// Conversions clamp to a -120 dBFS floor: amplitudes at or below 1e-6 and
// non-finite inputs map to [FloorDB], and levels at or below the floor
// map to silence.
package gain
