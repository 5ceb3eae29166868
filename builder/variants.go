package builder

import (
	"fmt"
	"strings"
)

// Chord represents an unordered connection between two local offsets of one
// cluster. Chord{U,V} is equivalent to Chord{V,U}.
type Chord struct {
	U, V int
}

// Family enumerates the supported cluster topologies.
type Family int

const (
	// Star is the 6-node star-of-clusters family.
	Star Family = iota
	// Ring is the 7-node ring-of-clusters family.
	Ring
	// Grid is the 9-node grid-of-clusters family.
	Grid
)

// familyNames maps each Family to its canonical lower-case name.
var familyNames = map[Family]string{
	Star: "star",
	Ring: "ring",
	Grid: "grid",
}

// familyMethods maps each Family to the method tag used in errors.
var familyMethods = map[Family]string{
	Star: MethodStar,
	Ring: MethodRing,
	Grid: MethodGrid,
}

// clusterSizes holds the number of processors per cluster for each Family.
var clusterSizes = map[Family]int{
	Star: StarClusterSize,
	Ring: RingClusterSize,
	Grid: GridClusterSize,
}

// internalChords defines the fixed intra-cluster pattern for each Family,
// listed with U < V in emission order.
var internalChords = map[Family][]Chord{
	// hub offsets 2 and 3; leaves 0,1 hang off 2 and 4,5 hang off 3.
	Star: {{0, 2}, {1, 2}, {2, 3}, {3, 4}, {3, 5}},
	// offset 3 is the cluster centre.
	Ring: {{0, 1}, {1, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 4}, {3, 5}, {3, 6}},
	// 3×3 block, row-major offsets.
	Grid: {
		{0, 1}, {0, 3}, {0, 4}, {1, 2}, {2, 4}, {2, 5},
		{3, 6}, {4, 6}, {4, 8}, {5, 8}, {6, 7}, {7, 8},
	},
}

// Families returns all supported families in declaration order.
func Families() []Family {
	return []Family{Star, Ring, Grid}
}

// String returns the canonical lower-case family name.
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}

	return fmt.Sprintf("family(%d)", int(f))
}

// Valid reports whether f is one of Star, Ring, Grid.
func (f Family) Valid() bool {
	_, ok := familyNames[f]

	return ok
}

// ClusterSize returns the number of processors per cluster, or 0 for an
// unknown family.
func (f Family) ClusterSize() int {
	return clusterSizes[f]
}

// InternalEdges returns a copy of the intra-cluster chord set.
func (f Family) InternalEdges() []Chord {
	src := internalChords[f]
	out := make([]Chord, len(src))
	copy(out, src)

	return out
}

// method returns the error tag for f.
func (f Family) method() string {
	if m, ok := familyMethods[f]; ok {
		return m
	}

	return MethodGenerate
}

// ParseFamily resolves a case-insensitive family name.
// Returns ErrUnknownFamily for anything but "star", "ring" or "grid".
func ParseFamily(name string) (Family, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Families() {
		if familyNames[f] == key {
			return f, nil
		}
	}

	return 0, fmt.Errorf("%s: %q: %w", MethodGenerate, name, ErrUnknownFamily)
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%s: %d: %w", MethodGenerate, int(f), ErrUnknownFamily)
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so a Family can be
// decoded directly from YAML or flag values.
func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed

	return nil
}
