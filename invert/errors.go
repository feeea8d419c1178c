package invert

import "errors"

// ErrMeanOutOfRange indicates the target mean lies outside the support
// [max(0, n-m2), min(n, m1)], makes the closed-form denominator
// (m1-mean)*(n-mean) zero, or lies outside the bisection bracket, so that no
// odds (or urn composition) can reproduce it.
var ErrMeanOutOfRange = errors.New("invert: target mean out of achievable range")

// ErrNoConvergence indicates a bisection search exceeded its iteration
// budget without bracketing the target mean tightly enough.
var ErrNoConvergence = errors.New("invert: search did not converge")
