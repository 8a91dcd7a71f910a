package anim

// Easing maps normalized time in [0,1] to normalized progress in [0,1]
type Easing func(t float64) float64

// Linear progresses at a constant rate
func Linear(t float64) float64 { return t }

// FastOutSlowIn is the standard material curve, cubic-bezier(0.4, 0, 0.2, 1).
// It is also the default easing for tweens that don't name one.
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// CubicBezier builds a CSS-style timing curve through (0,0), (x1,y1),
// (x2,y2), (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		// x(s) is monotonic for x1, x2 in [0,1], so bisect for s
		lo, hi := 0.0, 1.0
		s := t
		for i := 0; i < 32; i++ {
			x := bezier(s, x1, x2)
			if x < t {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return bezier(s, y1, y2)
	}
}

func bezier(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
