package mvwallenius

import "math"

// gl12Nodes and gl12Weights are the 12-point Gauss-Legendre quadrature
// nodes and weights on [-1, 1], the same panel rule wallenius.Dist uses
// (spec.md §4.4: "adaptive Gauss-Legendre with at least 12 nodes per
// panel"), duplicated here since the outcome-vector integrand differs from
// the two-color one.
var gl12Nodes = [12]float64{
	-0.9815606342467192, -0.9041172563704749, -0.7699026741943047,
	-0.5873179542866175, -0.3678314989981802, -0.1252334085114689,
	0.1252334085114689, 0.3678314989981802, 0.5873179542866175,
	0.7699026741943047, 0.9041172563704749, 0.9815606342467192,
}

var gl12Weights = [12]float64{
	0.0471753363865118, 0.1069393259953184, 0.1600783285433462,
	0.2031674267230659, 0.2334925365383548, 0.2491470458134028,
	0.2491470458134028, 0.2334925365383548, 0.2031674267230659,
	0.1600783285433462, 0.1069393259953184, 0.0471753363865118,
}

func gl12Panel(f func(float64) float64, a, b float64) float64 {
	half := (b - a) / 2
	mid := (a + b) / 2
	sum := 0.0
	for i := range gl12Nodes {
		x := mid + half*gl12Nodes[i]
		sum += gl12Weights[i] * f(x)
	}
	return sum * half
}

func adaptiveIntegrate(f func(float64) float64, tol float64) float64 {
	return adaptiveIntegrateRange(f, 0, 1, tol, 20)
}

func adaptiveIntegrateRange(f func(float64) float64, a, b, tol float64, maxDepth int) float64 {
	whole := gl12Panel(f, a, b)
	if maxDepth <= 0 {
		return whole
	}
	mid := (a + b) / 2
	left := gl12Panel(f, a, mid)
	right := gl12Panel(f, mid, b)
	split := left + right
	if math.Abs(split-whole) < tol {
		return split
	}
	return adaptiveIntegrateRange(f, a, mid, tol/2, maxDepth-1) +
		adaptiveIntegrateRange(f, mid, b, tol/2, maxDepth-1)
}
