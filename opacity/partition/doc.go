// Package partition provides log10 partition functions for the atomic
// species that enter continuum scattering opacities.
//
// Values are tabulated at two reference temperatures, θ = 5040/T = 1.0
// (5040 K) and θ = 0.5 (10080 K), following Allen's Astrophysical
// Quantities. [TwoPoint.AtTheta] interpolates between them.
//
// Species are identified by the [Species] enum. Spectroscopic strings such
// as "HI" or "HeI" are only accepted at the boundary ([ParseSpecies],
// [Lookup]).
//
// Two [Model] implementations turn a species and a temperature into a log
// statistical weight:
//
//   - [ThetaModel]: two-point θ interpolation over a [Source] (default)
//   - [KnotModel]:  piecewise-linear interpolation over temperature knots
package partition
