package animation

import (
	"fmt"
	"math"
	"strings"
)

// Interpolation selects how a cyclic sequence of samples is blended
type Interpolation int

const (
	Nearest Interpolation = iota
	Linear
	CatmullRom
	BSpline // Uniform cubic B-spline; approximates rather than passes through samples
)

func (i Interpolation) String() string {
	switch i {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	case CatmullRom:
		return "catmull-rom"
	case BSpline:
		return "b-spline"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

// ParseInterpolation parses the name returned by String
func ParseInterpolation(name string) (Interpolation, error) {
	for _, i := range []Interpolation{Nearest, Linear, CatmullRom, BSpline} {
		if strings.EqualFold(name, i.String()) {
			return i, nil
		}
	}
	return Nearest, fmt.Errorf("unknown interpolation %q", name)
}

// weights returns the indices of up to four cyclic samples and their blending weights
// at normalized time u in [0, 1). Sample i sits at time i/n.
func (i Interpolation) weights(n int, u float64) ([4]int, [4]float64) {
	x := u * float64(n)
	seg := int(math.Floor(x))
	t := x - float64(seg)
	at := func(offset int) int {
		return ((seg+offset)%n + n) % n
	}
	indices := [4]int{at(-1), at(0), at(1), at(2)}

	var w [4]float64
	switch i {
	case Nearest:
		if t < 0.5 {
			w[1] = 1
		} else {
			w[2] = 1
		}
	case Linear:
		w[1], w[2] = 1-t, t
	case CatmullRom:
		t2, t3 := t*t, t*t*t
		w[0] = 0.5 * (-t3 + 2*t2 - t)
		w[1] = 0.5 * (3*t3 - 5*t2 + 2)
		w[2] = 0.5 * (-3*t3 + 4*t2 + t)
		w[3] = 0.5 * (t3 - t2)
	case BSpline:
		t2, t3 := t*t, t*t*t
		s := 1 - t
		w[0] = s * s * s / 6
		w[1] = (3*t3 - 6*t2 + 4) / 6
		w[2] = (-3*t3 + 3*t2 + 3*t + 1) / 6
		w[3] = t3 / 6
	}
	return indices, w
}
