package core

import (
	"math"
	"sort"
)

const polyEpsilon = 1e-9

func isZero(x float64) bool {
	return x > -polyEpsilon && x < polyEpsilon
}

// SolveLinear returns the root of c1*x + c0 = 0. A degenerate equation has no roots.
func SolveLinear(c0, c1 float64) []float64 {
	if c1 == 0 {
		return nil
	}
	return []float64{-c0 / c1}
}

// SolveQuadratic returns the real roots of c2*x² + c1*x + c0 = 0 in ascending order.
// It falls back to the linear solve when c2 is zero.
func SolveQuadratic(c0, c1, c2 float64) []float64 {
	if c2 == 0 {
		return SolveLinear(c0, c1)
	}

	discriminant := c1*c1 - 4*c2*c0
	if discriminant < 0 {
		return nil
	}
	if discriminant == 0 {
		return []float64{-c1 / (2 * c2)}
	}

	// Numerically stable form avoids cancellation when c1 dominates
	sqrtD := math.Sqrt(discriminant)
	var q float64
	if c1 < 0 {
		q = -0.5 * (c1 - sqrtD)
	} else {
		q = -0.5 * (c1 + sqrtD)
	}
	r0 := q / c2
	var r1 float64
	if q != 0 {
		r1 = c0 / q
	} else {
		r1 = -r0
	}
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	return []float64{r0, r1}
}

// normalized quadratic x² + 2p x + q = 0
func solveNormalizedQuadratic(p, q float64) []float64 {
	d := p*p - q
	if isZero(d) {
		return []float64{-p}
	}
	if d < 0 {
		return nil
	}
	sqrtD := math.Sqrt(d)
	return []float64{sqrtD - p, -sqrtD - p}
}

// SolveCubic returns the real roots of c3*x³ + c2*x² + c1*x + c0 = 0 in ascending order
func SolveCubic(c0, c1, c2, c3 float64) []float64 {
	if c3 == 0 {
		return SolveQuadratic(c0, c1, c2)
	}

	// Normal form x³ + Ax² + Bx + C = 0
	a := c2 / c3
	b := c1 / c3
	c := c0 / c3

	// Substitute x = y - A/3 to eliminate the quadric term: y³ + 3py + 2q = 0
	sqA := a * a
	p := 1.0 / 3 * (-1.0/3*sqA + b)
	q := 1.0 / 2 * (2.0/27*a*sqA - 1.0/3*a*b + c)

	cbP := p * p * p
	d := q*q + cbP

	var roots []float64
	switch {
	case isZero(d):
		if isZero(q) {
			roots = []float64{0}
		} else {
			u := math.Cbrt(-q)
			roots = []float64{2 * u, -u}
		}
	case d < 0:
		// Casus irreducibilis: three real roots
		phi := 1.0 / 3 * math.Acos(math.Max(-1, math.Min(1, -q/math.Sqrt(-cbP))))
		t := 2 * math.Sqrt(-p)
		roots = []float64{
			t * math.Cos(phi),
			-t * math.Cos(phi+math.Pi/3),
			-t * math.Cos(phi-math.Pi/3),
		}
	default:
		sqrtD := math.Sqrt(d)
		u := math.Cbrt(sqrtD - q)
		v := -math.Cbrt(sqrtD + q)
		roots = []float64{u + v}
	}

	sub := 1.0 / 3 * a
	for i := range roots {
		roots[i] -= sub
	}
	sort.Float64s(roots)
	return roots
}

// SolveQuartic returns the real roots of c4*x⁴ + c3*x³ + c2*x² + c1*x + c0 = 0 in
// ascending order, using Ferrari's method followed by Newton refinement
func SolveQuartic(c0, c1, c2, c3, c4 float64) []float64 {
	if c4 == 0 {
		return SolveCubic(c0, c1, c2, c3)
	}

	// Normal form x⁴ + Ax³ + Bx² + Cx + D = 0
	a := c3 / c4
	b := c2 / c4
	c := c1 / c4
	d := c0 / c4

	// Substitute x = y - A/4 to eliminate the cubic term: y⁴ + py² + qy + r = 0
	sqA := a * a
	p := -3.0/8*sqA + b
	q := 1.0/8*sqA*a - 1.0/2*a*b + c
	r := -3.0/256*sqA*sqA + 1.0/16*sqA*b - 1.0/4*a*c + d

	var roots []float64
	if isZero(r) {
		// y(y³ + py + q) = 0
		roots = append(SolveCubic(q, p, 0, 1), 0)
	} else {
		// Solve the resolvent cubic and take one real root
		resolvent := SolveCubic(1.0/2*r*p-1.0/8*q*q, -r, -1.0/2*p, 1)
		if len(resolvent) == 0 {
			return nil
		}
		z := resolvent[len(resolvent)-1]

		u := z*z - r
		v := 2*z - p
		switch {
		case isZero(u):
			u = 0
		case u > 0:
			u = math.Sqrt(u)
		default:
			return nil
		}
		switch {
		case isZero(v):
			v = 0
		case v > 0:
			v = math.Sqrt(v)
		default:
			return nil
		}

		qv := v
		if q < 0 {
			qv = -v
		}
		roots = append(roots, solveNormalizedQuadratic(qv/2, z-u)...)
		roots = append(roots, solveNormalizedQuadratic(-qv/2, z+u)...)
	}

	sub := 1.0 / 4 * a
	for i := range roots {
		roots[i] = polishQuarticRoot(roots[i]-sub, c0, c1, c2, c3, c4)
	}
	sort.Float64s(roots)
	return roots
}

func polishQuarticRoot(x, c0, c1, c2, c3, c4 float64) float64 {
	for i := 0; i < 4; i++ {
		f := (((c4*x+c3)*x+c2)*x+c1)*x + c0
		df := ((4*c4*x+3*c3)*x+2*c2)*x + c1
		if df == 0 {
			break
		}
		next := x - f/df
		if math.IsNaN(next) || math.IsInf(next, 0) {
			break
		}
		x = next
	}
	return x
}
