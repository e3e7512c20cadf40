// SPDX-License-Identifier: MIT

package analysis

import "math"

// Grade is a coarse encryption quality label.
type Grade string

const (
	Excellent Grade = "Excellent"
	Good      Grade = "Good"
	Fair      Grade = "Fair"
)

// Grading thresholds.
const (
	CorrelationExcellent = 0.1 // |r| below this is Excellent
	CorrelationGood      = 0.3 // |r| below this is Good
	EntropyExcellent     = 7.5 // bits above this is Excellent
	EntropyGood          = 7.0 // bits above this is Good
)

// GradeCorrelation grades a plaintext/ciphertext correlation coefficient.
// NaN grades as Fair.
func GradeCorrelation(r float64) Grade {
	a := math.Abs(r)
	switch {
	case a < CorrelationExcellent:
		return Excellent
	case a < CorrelationGood:
		return Good
	default:
		return Fair
	}
}

// GradeEntropy grades the entropy of a ciphertext in bits.
func GradeEntropy(e float64) Grade {
	switch {
	case e > EntropyExcellent:
		return Excellent
	case e > EntropyGood:
		return Good
	default:
		return Fair
	}
}
