// Package window generates analysis and tapering window functions and
// measures their spectral properties.
//
// Windows are evaluated on a normalized position in [0, 1]. The default
// symmetric form places the last sample at 1; [WithPeriodic] yields the
// DFT-even form used for spectral framing.
package window
