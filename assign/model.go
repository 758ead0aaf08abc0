// Package assign holds the local, editable view of mixer output port
// assignments and the rules for merging remote registry data into it.
package assign

// OutputID identifies a logical mixer output. Ids are assigned by the mixer
// registry and are stable across reloads.
type OutputID uint32

// Side selects one of the two channels of a logical output.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// LogicalOutput is a mixer output as persisted by the mixer registry.
// An empty port path means no source is assigned.
type LogicalOutput struct {
	ID            OutputID
	Name          string
	LeftPortPath  string
	RightPortPath string
}

// Selection is the pair of source port paths chosen for an output.
// An empty path means the channel is unassigned.
type Selection struct {
	Left  string
	Right string
}

// Get returns the path selected for side.
func (s Selection) Get(side Side) string {
	if side == SideRight {
		return s.Right
	}
	return s.Left
}

// Status is the synchronisation state of a single output.
type Status int

const (
	// StatusSynced means no commit is outstanding.
	StatusSynced Status = iota
	// StatusCommitting means a commit for the output is in flight.
	StatusCommitting
	// StatusOutOfSync means the last commit failed and the local selection
	// differs from what the registry holds.
	StatusOutOfSync
)

func (s Status) String() string {
	switch s {
	case StatusSynced:
		return "synced"
	case StatusCommitting:
		return "committing"
	case StatusOutOfSync:
		return "out of sync"
	default:
		return "unknown"
	}
}

// MixerOutputState is the editable local state of one logical output.
type MixerOutputState struct {
	ID    OutputID
	Name  string
	Left  string
	Right string
	// Saved is true iff the local selection equals the last value the
	// registry confirmed.
	Saved     bool
	Status    Status
	LastError string

	persisted Selection
}

// Selection returns the current local selection.
func (s MixerOutputState) Selection() Selection {
	return Selection{Left: s.Left, Right: s.Right}
}

// Persisted returns the last selection confirmed by the registry.
func (s MixerOutputState) Persisted() Selection {
	return s.persisted
}

func (s *MixerOutputState) refreshSaved() {
	s.Saved = s.Selection() == s.persisted
}

// Model is the set of output states plus the port catalog they choose from.
// It is not safe for concurrent use; a single owner goroutine drives it.
type Model struct {
	outputs []MixerOutputState
	index   map[OutputID]int
	catalog PortCatalog
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{index: make(map[OutputID]int)}
}

// Initialize replaces all state with the given registry data. Every output
// starts saved, with its selection copied from the persisted paths. Later
// duplicates of an id are ignored.
func (m *Model) Initialize(outputs []LogicalOutput, catalog PortCatalog) {
	m.outputs = make([]MixerOutputState, 0, len(outputs))
	m.index = make(map[OutputID]int, len(outputs))
	for _, o := range outputs {
		if _, dup := m.index[o.ID]; dup {
			continue
		}
		persisted := Selection{Left: o.LeftPortPath, Right: o.RightPortPath}
		m.index[o.ID] = len(m.outputs)
		m.outputs = append(m.outputs, MixerOutputState{
			ID:        o.ID,
			Name:      o.Name,
			Left:      persisted.Left,
			Right:     persisted.Right,
			Saved:     true,
			Status:    StatusSynced,
			persisted: persisted,
		})
	}
	m.catalog = catalog.Clone()
}

func (m *Model) lookup(id OutputID) (*MixerOutputState, error) {
	i, ok := m.index[id]
	if !ok {
		return nil, notFound(id)
	}
	return &m.outputs[i], nil
}

// SelectLeft sets the left source path of an output and returns a copy of
// the updated state.
func (m *Model) SelectLeft(id OutputID, path string) (MixerOutputState, error) {
	return m.Select(id, SideLeft, path)
}

// SelectRight sets the right source path of an output and returns a copy of
// the updated state.
func (m *Model) SelectRight(id OutputID, path string) (MixerOutputState, error) {
	return m.Select(id, SideRight, path)
}

// Select sets one side of an output. An empty path clears it. The other
// side is left untouched.
func (m *Model) Select(id OutputID, side Side, path string) (MixerOutputState, error) {
	s, err := m.lookup(id)
	if err != nil {
		return MixerOutputState{}, err
	}
	if side == SideRight {
		s.Right = path
	} else {
		s.Left = path
	}
	s.refreshSaved()
	return *s, nil
}

// MarkCommitting records that a commit for the output has been issued.
func (m *Model) MarkCommitting(id OutputID) error {
	s, err := m.lookup(id)
	if err != nil {
		return err
	}
	s.Status = StatusCommitting
	return nil
}

// ApplyCommitResult acknowledges a successful commit of the given selection.
// The output is saved when the committed value still matches the local one;
// otherwise a newer edit is pending and the output stays committing.
func (m *Model) ApplyCommitResult(id OutputID, committed Selection) error {
	s, err := m.lookup(id)
	if err != nil {
		return err
	}
	s.persisted = committed
	s.LastError = ""
	s.refreshSaved()
	if s.Saved {
		s.Status = StatusSynced
	} else {
		s.Status = StatusCommitting
	}
	return nil
}

// MarkCommitFailed flags the output as out of sync with the registry.
func (m *Model) MarkCommitFailed(id OutputID, cause error) error {
	s, err := m.lookup(id)
	if err != nil {
		return err
	}
	s.Status = StatusOutOfSync
	if cause != nil {
		s.LastError = cause.Error()
	}
	s.refreshSaved()
	return nil
}

// Get returns a copy of one output state.
func (m *Model) Get(id OutputID) (MixerOutputState, error) {
	s, err := m.lookup(id)
	if err != nil {
		return MixerOutputState{}, err
	}
	return *s, nil
}

// Outputs returns a copy of all output states in registry order.
func (m *Model) Outputs() []MixerOutputState {
	out := make([]MixerOutputState, len(m.outputs))
	copy(out, m.outputs)
	return out
}

// Catalog returns a copy of the port catalog.
func (m *Model) Catalog() PortCatalog {
	return m.catalog.Clone()
}

// Len returns the number of outputs.
func (m *Model) Len() int { return len(m.outputs) }
