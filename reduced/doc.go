// Package reduced transforms 1-D reduced-intensity and PDF profiles:
// normalization, background masking, and the standard damping windows used
// ahead of the PDF Fourier transform.
//
// What:
//
//   - NormalizeToMax scales a profile by its maximum beyond a cutoff index.
//   - MaskFromPattern zeroes masked detector regions via a 0/1 pattern.
//   - DampExponential, DampLorch, DampUpdatedLorch suppress high-s noise.
//   - DampLowQErf rolls off the low-q region affected by the central beam.
//
// Why:
//
//   - Raw reduced intensities oscillate strongly near s=0 and are noisy at
//     high s; damping windows trade resolution for a usable PDF.
//
// Every function is pure: the input slice is never modified, the result is
// a fresh slice of the same length, and there is no shared state, so the
// functions are safe to map concurrently over independent frames (they are
// designed as per-frame callables for an external map-over-signal driver).
//
// Non-finite values produced at the s=0 singularity of the Lorch windows
// are replaced with 0 by policy, never propagated as NaN/Inf.
//
// Errors:
//
//   - ErrIndexRange: normalization cutoff outside the profile.
//   - ErrPatternLength: mask pattern length differs from the profile.
//   - ErrNonPositiveSMax: Lorch delta = pi/sMax requires sMax > 0.
package reduced
