// Package transform evaluates the integral transform
//
//	H_t(z) = integral_0^inf Phi(u) * exp(t*u^2) * cos(u*z) du
//
// for real t and real or complex z, using adaptive Gauss–Kronrod
// quadrature over the integrand built from the kernel series.
//
// For complex z = x + iy the cosine splits as
//
//	cos(u*(x+iy)) = cos(ux)*cosh(uy) - i*sin(ux)*sinh(uy),
//
// and the real and imaginary parts are integrated as two real
// quadratures whose error estimates add up to the reported bound. For
// real z the imaginary quadrature is skipped and the imaginary part is
// exactly zero. Evenness H_t(-z) = H_t(z) and conjugate symmetry
// H_t(conj z) = conj(H_t(z)) hold by construction.
//
// The integration domain is truncated at a configurable upper limit
// (default 10). Phi decays like exp(-pi*e^{4u}), so for t <= 0 the tail
// beyond the default limit is far below the returned error estimate.
// For t > 0 the integrand carries the growing factor exp(t*u^2); the
// truncation is sound only while Phi's decay dominates over the chosen
// range, which holds for the moderate t this transform is studied at
// but is a precondition the caller owns, not something the evaluator
// can verify.
//
// The returned error estimate bounds the quadrature error alone. The
// truncation error of the inner series is a separate quantity
// controlled by the truncation length and is sub-dominant by
// construction (see package series).
package transform
