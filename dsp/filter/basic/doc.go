// Package basic provides the elementary one- and two-coefficient IIR and
// FIR filters: [OnePole], [OneZero], [TwoPole] and [TwoZero].
//
// Every filter is generic over [core.Sample] and implements
// [core.Processor]. Coefficient setters never fail; out-of-range
// arguments leave the filter unchanged.
package basic
