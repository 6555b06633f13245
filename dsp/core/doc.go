// Package core holds the contracts and small numeric helpers shared by every
// processing block in this module.
//
// [Sample] constrains the element type of all generic blocks to single or
// double precision floating point. [Processor] is the per-sample contract
// implemented by delay lines, filters and integrators so that they can be
// composed in a [Chain] or driven block-wise with [ProcessBlock].
package core
