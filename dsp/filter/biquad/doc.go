// Package biquad implements second-order IIR sections in transposed
// direct form II and cascades of them.
//
// [Section] and [Chain] are generic over [core.Sample] and satisfy
// [core.Processor]. Coefficients are always designed in float64 (see
// package design) and narrowed on assignment. Block processing of
// float64 buffers is dispatched to the fastest kernel the host CPU
// supports.
package biquad
