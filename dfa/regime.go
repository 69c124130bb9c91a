package dfa

import "math"

// RegimeTolerance is the half-width of the bands around 0.5, 1 and 1.5 used by Classify.
const RegimeTolerance = 0.05

// Regime is the conventional reading of a DFA scaling exponent.
type Regime int

const (
	AntiPersistent Regime = iota // alpha < 0.5
	Uncorrelated                 // alpha ~ 0.5, white noise
	Persistent                   // 0.5 < alpha < 1, long-range correlated
	PinkNoise                    // alpha ~ 1, 1/f noise
	NonStationary                // 1 < alpha < 1.5
	BrownNoise                   // alpha ~ 1.5, random walk
	Unknown                      // NaN
)

// Classify maps a scaling exponent onto its regime.
func Classify(alpha float64) Regime {
	switch {
	case math.IsNaN(alpha):
		return Unknown
	case math.Abs(alpha-0.5) <= RegimeTolerance:
		return Uncorrelated
	case math.Abs(alpha-1) <= RegimeTolerance:
		return PinkNoise
	case math.Abs(alpha-1.5) <= RegimeTolerance:
		return BrownNoise
	case alpha < 0.5:
		return AntiPersistent
	case alpha < 1:
		return Persistent
	default:
		return NonStationary
	}
}

func (r Regime) String() string {
	switch r {
	case AntiPersistent:
		return "anti-persistent"
	case Uncorrelated:
		return "uncorrelated"
	case Persistent:
		return "persistent"
	case PinkNoise:
		return "1/f noise"
	case NonStationary:
		return "non-stationary"
	case BrownNoise:
		return "brown noise"
	}
	return "unknown"
}
