package artgen

import "math/rand"

// Scheme selects how colors are sampled across a pattern.
type Scheme string

// Available color schemes.
const (
	SchemeGradient      Scheme = "gradient"
	SchemeMonochrome    Scheme = "monochrome"
	SchemeComplementary Scheme = "complementary"
	SchemeAnalogous     Scheme = "analogous"
	SchemeTriadic       Scheme = "triadic"
	SchemeRandom        Scheme = "random"
)

// Schemes lists every supported scheme in display order.
func Schemes() []Scheme {
	return []Scheme{
		SchemeGradient,
		SchemeMonochrome,
		SchemeComplementary,
		SchemeAnalogous,
		SchemeTriadic,
		SchemeRandom,
	}
}

// schemeSteps is the discrete index resolution used by the parity-keyed
// schemes (complementary, triadic). A position t in [0,1] maps to
// floor(t*schemeSteps).
const schemeSteps = 12

// SampleScheme derives a color from base according to scheme.
//
// t is a position indicator in [0,1] (element index over total, or depth over
// max depth) that drives gradient sweeps and parity-keyed alternation.
// variation in [0,100] scales how far the scheme strays from the base color.
// rng is consulted only by SchemeRandom; it may be nil for any other scheme,
// in which case SchemeRandom falls back to the base color.
//
// All schemes preserve the base saturation and value except SchemeMonochrome,
// which varies value only.
func SampleScheme(base RGB, scheme Scheme, variation, t float64, rng *rand.Rand) RGB {
	t = clamp01(t)
	spread := clamp(variation, 0, 100) / 100

	hsv := base.HSV()
	switch scheme {
	case SchemeMonochrome:
		span := spread
		hsv.V = clamp01(hsv.V * (1 - span/2 + span*t))
	case SchemeComplementary:
		if int(t*schemeSteps)%2 == 1 {
			hsv.H += 180
		}
	case SchemeAnalogous:
		hsv.H += (2*t - 1) * 60 * spread
	case SchemeTriadic:
		hsv.H += 120 * float64(int(t*schemeSteps)%3)
	case SchemeRandom:
		if rng == nil {
			return base
		}
		hsv.H += (rng.Float64()*2 - 1) * 180 * spread
	default: // SchemeGradient
		hsv.H += t * 360 * spread
	}
	hsv.H = normHue(hsv.H)
	return hsv.RGB()
}
