package main

import "math"

// Input holds the five vote share ratios. Values outside [0, 1] are kept as is.
type Input struct {
	HouseDem  float64
	HouseRep  float64
	SenateRep float64
	SenateInd float64
	SenateDem float64
}

// Value returns the ratio that drives the given category.
func (in Input) Value(c Category) float64 {
	switch c {
	case HouseDem:
		return in.HouseDem
	case HouseRep:
		return in.HouseRep
	case SenateRep:
		return in.SenateRep
	case SenateInd:
		return in.SenateInd
	case SenateDem:
		return in.SenateDem
	}
	return 0
}

// ComputedAngle is the pair of angles handed to the compositor, in degrees.
type ComputedAngle struct {
	Category Category
	Sweep    float64
	Theta1   float64
	Theta2   float64
}

// Angle computes the angle pair for a single wedge.
func (w WedgeSpec) Angle(value float64) ComputedAngle {
	sweep := value * w.MaxSweep
	a := ComputedAngle{Category: w.Category, Sweep: sweep}
	switch w.Ordering {
	case FixedEnd:
		a.Theta1, a.Theta2 = w.FixedTheta+sweep, w.FixedTheta
	default:
		a.Theta1, a.Theta2 = w.FixedTheta, w.FixedTheta+sweep
	}
	return a
}

// ComputeAngles returns one pair per wedge, in the layout's draw order.
func (l Layout) ComputeAngles(in Input) [5]ComputedAngle {
	var out [5]ComputedAngle
	for i, w := range l.Wedges {
		out[i] = w.Angle(in.Value(w.Category))
	}
	return out
}

// arcSpan normalizes a pair the way the arc is traced: counterclockwise from
// theta1, with theta2 unwrapped into (theta1, theta1+360]. Equal angles stay
// equal. full is set when the pair spans exactly one turn.
func arcSpan(theta1, theta2 float64) (start, end float64, full bool) {
	if math.Abs((theta2-theta1)-360) <= 1e-12 {
		return theta1, theta1 + 360, true
	}
	end = theta2 - 360*math.Floor((theta2-theta1)/360)
	if theta2 != theta1 && end <= theta1 {
		end += 360
	}
	return theta1, end, false
}
