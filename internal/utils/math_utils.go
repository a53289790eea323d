package utils

import (
	"math"
	"strconv"
	"strings"
)

// SafeRatio divides numerator by denominator, mapping a zero (or NaN)
// denominator to 0 instead of an undefined result, rounded to 3 decimals.
func SafeRatio(numerator, denominator float64) float64 {
	if denominator == 0 || math.IsNaN(denominator) || math.IsNaN(numerator) {
		return 0
	}
	return Round(numerator/denominator, 3)
}

// Round rounds to the given number of decimal places. NaN stays NaN so a
// missing duration is never turned into a number by rounding.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) {
		return v
	}
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

// CompareVersions compares two dotted version strings component-wise
// (numeric, not lexicographic). Returns -1, 0 or 1. Missing components count
// as zero, so "1.2" == "1.2.0". Non-numeric components compare as strings.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av, bv := "0", "0"
		if i < len(as) {
			av = as[i]
		}
		if i < len(bs) {
			bv = bs[i]
		}
		ai, aerr := strconv.Atoi(av)
		bi, berr := strconv.Atoi(bv)
		if aerr == nil && berr == nil {
			if ai != bi {
				if ai < bi {
					return -1
				}
				return 1
			}
			continue
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}
