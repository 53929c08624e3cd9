package partition

import (
	"errors"
	"fmt"
)

// ErrUnknownSpecies is returned for species identifiers or table entries
// that are not known.
var ErrUnknownSpecies = errors.New("partition: unknown species")

// Species identifies an absorber by element and ionization stage.
type Species int

const (
	HydrogenI Species = iota
	HeliumI
	HydrogenII
	HeliumII
	// MolecularHydrogen has no partition entry. It exists so scattering
	// code can name the H2 term.
	MolecularHydrogen
)

var speciesNames = [...]string{
	HydrogenI:         "HI",
	HeliumI:           "HeI",
	HydrogenII:        "HII",
	HeliumII:          "HeII",
	MolecularHydrogen: "H2",
}

// String returns the spectroscopic identifier, e.g. "HeI".
func (s Species) String() string {
	if s < 0 || int(s) >= len(speciesNames) {
		return fmt.Sprintf("Species(%d)", int(s))
	}
	return speciesNames[s]
}

// ParseSpecies maps a spectroscopic identifier to a Species.
// Matching is exact ("HeI", not "hei").
func ParseSpecies(id string) (Species, error) {
	for i, name := range speciesNames {
		if name == id {
			return Species(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSpecies, id)
}
