// Package analysis provides signal smoothers and level measurement.
package analysis
