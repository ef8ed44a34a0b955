package locus

import "github.com/chewxy/math32"

// epsilon is the 32-bit float machine epsilon. Ranges narrower than this
// are treated as degenerate throughout the package.
const epsilon float32 = 1.1920929e-07

// minPositive is the smallest positive normal 32-bit float. Log scales
// clamp their lower bound to it before taking logarithms.
const minPositive float32 = 1.1754944e-38

// NiceNumber rounds value to a "nice" number: 1, 2, 5 or 10 times a power
// of ten. With round set, value snaps to the nearest nice mantissa; without
// it, to the smallest nice mantissa not below it, so the result never
// undershoots. Non-positive or non-finite values are returned unchanged.
func NiceNumber(value float32, round bool) float32 {
	if value <= 0 || math32.IsNaN(value) || math32.IsInf(value, 0) {
		return value
	}
	exp := math32.Floor(math32.Log10(value))
	frac := value / math32.Pow(10, exp)

	var nice float32
	if round {
		switch {
		case frac < 1.5:
			nice = 1
		case frac < 3:
			nice = 2
		case frac < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case frac <= 1:
			nice = 1
		case frac <= 2:
			nice = 2
		case frac <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * math32.Pow(10, exp)
}

// NiceRange expands [min, max] to a range with nice endpoints: the data is
// padded by paddingPct of its span on each end, a nice step is chosen so
// roughly targetTicks ticks fit, and the endpoints snap outward to
// multiples of that step. A degenerate input range is widened to
// (min-1, max+1) first. The returned bounds always cover the padded data.
func NiceRange(min, max, paddingPct float32, targetTicks int) (lo, hi, step float32) {
	if max < min {
		min, max = max, min
	}
	if math32.Abs(max-min) < epsilon {
		min, max = min-1, max+1
	}
	pad := (max - min) * paddingPct
	min -= pad
	max += pad

	if targetTicks < 1 {
		targetTicks = 1
	}
	step = NiceNumber((max-min)/float32(targetTicks), true)
	lo = math32.Floor(min/step) * step
	hi = math32.Ceil(max/step) * step
	return lo, hi, step
}
