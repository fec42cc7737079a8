// Package asymptotic provides companion estimates around H_t that do
// not go through the full adaptive evaluation: the zero-counting
// estimate N_t, a closed-form large-|z| approximation, and the
// contour-shifted evaluation of H_t scaled by exp(pi*x/8), whose
// integrand decays instead of oscillating for large real z.
//
// Everything here is fixed-width float64/complex128: this is an
// approximation layer, the rigorous path is package transform.
package asymptotic
