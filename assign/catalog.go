package assign

import "slices"

// Direction is the data flow direction of a port in the audio graph.
type Direction int

const (
	// DirectionIn is a sink port that consumes audio.
	DirectionIn Direction = iota
	// DirectionOut is a source port that produces audio.
	DirectionOut
)

func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "in"
	case DirectionOut:
		return "out"
	default:
		return "unknown"
	}
}

// Port is a routable endpoint reported by the port registry.
type Port struct {
	Path      string
	Direction Direction
	NodeID    uint32
}

// PortCatalog holds the port paths grouped by direction, in registry order.
type PortCatalog struct {
	In  []string
	Out []string
}

// NewPortCatalog partitions ports by their direction tag. Ports with an
// unrecognised direction are dropped.
func NewPortCatalog(ports []Port) PortCatalog {
	c := PortCatalog{
		In:  make([]string, 0, len(ports)),
		Out: make([]string, 0, len(ports)),
	}
	for _, p := range ports {
		switch p.Direction {
		case DirectionIn:
			c.In = append(c.In, p.Path)
		case DirectionOut:
			c.Out = append(c.Out, p.Path)
		}
	}
	return c
}

// Clone returns a deep copy of the catalog.
func (c PortCatalog) Clone() PortCatalog {
	return PortCatalog{
		In:  slices.Clone(c.In),
		Out: slices.Clone(c.Out),
	}
}
