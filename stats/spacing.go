package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogSpacedSizes returns up to count integer sizes between lo and hi inclusive,
// evenly spaced in log space. Sizes are rounded to the nearest integer and
// duplicates are collapsed, so fewer than count sizes may be returned.
// A count of 1 returns just lo.
func LogSpacedSizes(lo, hi, count int) []int {
	if !validRange(lo, hi, count) {
		return nil
	}
	if count == 1 || lo == hi {
		return []int{lo}
	}
	return roundUnique(floats.LogSpan(make([]float64, count), float64(lo), float64(hi)))
}

// LinearSpacedSizes is LogSpacedSizes with even spacing on a linear scale.
func LinearSpacedSizes(lo, hi, count int) []int {
	if !validRange(lo, hi, count) {
		return nil
	}
	if count == 1 || lo == hi {
		return []int{lo}
	}
	return roundUnique(floats.Span(make([]float64, count), float64(lo), float64(hi)))
}

func validRange(lo, hi, count int) bool {
	return lo > 0 && hi >= lo && count > 0
}

// roundUnique rounds an ascending span and drops repeats.
func roundUnique(span []float64) []int {
	sizes := make([]int, 0, len(span))
	for _, v := range span {
		s := int(math.Round(v))
		if len(sizes) > 0 && sizes[len(sizes)-1] == s {
			continue
		}
		sizes = append(sizes, s)
	}
	return sizes
}
