package core

import "math"

// Faraway is the "effectively infinite" cost bound. It is finite so that
// sums of a few Faraway values stay representable and comparable; weights
// are clamped back to Faraway after accumulation.
const Faraway = 1e15

// Eps is the tolerance of all cost comparisons. Rule-out certificates
// distinguish "strictly less" from "equal within tolerance", so every
// comparison in the engine goes through the helpers below.
const Eps = 1e-9

// EQ reports a == b within Eps.
func EQ(a, b float64) bool { return math.Abs(a-b) < Eps }

// LT reports a < b by more than Eps.
func LT(a, b float64) bool { return a < b-Eps }

// LE reports a <= b within Eps.
func LE(a, b float64) bool { return a < b+Eps }

// GT reports a > b by more than Eps.
func GT(a, b float64) bool { return a > b+Eps }

// GE reports a >= b within Eps.
func GE(a, b float64) bool { return a > b-Eps }

// Distance is an optional special-distance value: either a known
// non-negative cost or "unknown". It replaces raw -1.0 sentinels.
type Distance struct {
	// Value is the distance; meaningful only when Known is true.
	Value float64

	// Known reports whether the oracle produced an answer at all.
	Known bool
}

// KnownDistance wraps a concrete distance value.
func KnownDistance(v float64) Distance { return Distance{Value: v, Known: true} }

// UnknownDistance is the absent answer.
func UnknownDistance() Distance { return Distance{} }

// OrFaraway flattens the option into a plain float64 for storage in
// distance slots: unknown becomes Faraway (no usable bound).
func (d Distance) OrFaraway() float64 {
	if !d.Known {
		return Faraway
	}

	return d.Value
}

// DistanceFromStored is the inverse of OrFaraway: a stored Faraway entry
// means the distance is unknown.
func DistanceFromStored(v float64) Distance {
	if EQ(v, Faraway) {
		return UnknownDistance()
	}

	return KnownDistance(v)
}
