// Package delay provides a time-varying tapped delay line and blocks built
// on top of it.
//
// [Line] stores capacity+1 samples in a circular buffer. A primary
// read/write cursor pair implements the configured delay through
// [Line.Process]; taps ([Line.TapOut], [Line.TapIn], [Line.AddTo]) address
// the buffer relative to the write cursor and never move the primary cursors.
//
// All operations are allocation free except [Line.SetMaxDelay] when it grows
// the buffer. Out-of-range lengths and offsets are clipped, never rejected.
// A Line performs no locking and must be driven from a single goroutine.
package delay
