// Package phys holds the cgs physical constants shared by the opacity
// kernels.
package phys

const (
	// SpeedOfLight is c in cm/s.
	SpeedOfLight = 2.9979249e10
	// Boltzmann is k in erg/K.
	Boltzmann = 1.3806488e-16
)
