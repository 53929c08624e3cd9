// Package rayleigh computes Rayleigh scattering opacity from neutral
// hydrogen and neutral helium over a depth × wavelength grid.
//
// The cross-sections are the ATLAS9 fits: a polynomial in 1/λ² for H I and
// a resonance-corrected form for He I, each evaluated at its ionization
// threshold frequency for shorter wavelengths. They scale ground-state
// number densities derived from neutral-stage populations and two-point
// partition functions.
//
// Units are cgs. Wavelengths are in cm, temperatures in K, populations and
// results are natural logarithms.
//
// Layout conventions follow the surrounding model-atmosphere code:
//
//   - temp[0][depth]                  kinetic temperature
//   - stagePops[species][stage][depth] species 0 = H, 1 = He; stage 0 = neutral
//   - result[wavelength][depth]
//
// Numeric hazards are reported instead of propagated: a wavelength at the
// He I pole or a non-positive summed opacity returns a [*DomainError].
//
// Molecular hydrogen scattering is not included. [CrossSection] accepts
// [partition.MolecularHydrogen] and returns a zero contribution.
package rayleigh
