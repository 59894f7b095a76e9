// Package scatter synthesizes atomic scattering-factor curves for a sample
// composition, broadcast over a per-pixel two-parameter fit grid.
//
// What:
//
//   - Two closed-form factor models, each parameterized by five tabulated
//     (amplitude, decay) pairs per element:
//     Lobato   — f(s) = sum a*(2+b*(2s)^2) / (1+b*(2s)^2)^2
//     (Lobato & Van Dyck, Acta Cryst. A70, 2014)
//     XTables  — f(s) = sum a*exp(-b*s^2)
//     (International Tables Vol. C, table 4.3.2.3)
//   - FitSignal evaluates, for every scan pixel (x,y) with fitted slope
//     N[x,y] and intercept C[x,y]:
//     signal[x,y,:] = N * sum_i frac_i * f_i(s)^2 + C
//     sum[x,y,:]    = N * sum_i frac_i * f_i(s)
//     over the axis s = sScale * [0..sSize).
//
// Why:
//
//   - Reduced-intensity generation needs the mean squared scattering factor
//     <f^2> and squared mean <f>^2 of the sample composition at every scan
//     position; evaluating the closed form directly scales to large scans
//     where a generic fitting framework does not.
//
// The per-pixel computation is independent (no cross-pixel interaction), so
// results are deterministic regardless of evaluation order.
//
// Fractions are expected to sum to 1 but are deliberately not validated,
// matching established practice; only structural errors are rejected.
//
// Errors:
//
//   - ErrUnknownElement: no tabulated parameters for a symbol.
//   - ErrUnknownModel: model is neither Lobato nor XTables.
//   - ErrLengthMismatch: element and fraction lists differ in length.
//   - ErrGridShape: N and C grids have different dimensions.
//   - ErrCurveSize: requested curve length is not positive.
//   - ErrCubeShape: invalid cube dimensions.
package scatter
