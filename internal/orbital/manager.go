package orbital

// Mode is the fill mode of a Manager.
type Mode int

const (
	ModeAuto Mode = iota
	ModeManual
)

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Direction is the kind of box edit.
type Direction int

const (
	Increment Direction = iota
	Decrement
)

// Manager owns the live occupancy for the selected element.
//
// Any box edit forces Manual mode; only ToggleMode and AutoFill move to Auto.
// Changing the element never touches the mode. Manager is not safe for
// concurrent use; it is driven by a single event loop.
type Manager struct {
	z    int
	mode Mode
	occ  Occupancy
}

// NewManager returns a manager in Auto mode, filled with the target for z.
func NewManager(z int) *Manager {
	return &Manager{
		z:    z,
		mode: ModeAuto,
		occ:  Target(z),
	}
}

// Mode returns the current fill mode.
func (m *Manager) Mode() Mode { return m.mode }

// AtomicNumber returns the element the manager currently tracks.
func (m *Manager) AtomicNumber() int { return m.z }

// Occupancy returns a copy of the live occupancy.
func (m *Manager) Occupancy() Occupancy { return m.occ.Clone() }

// Count returns the electrons in one box.
func (m *Manager) Count(id BoxID) int { return m.occ[id] }

// SubshellTotal returns the electrons held across a subshell's boxes.
func (m *Manager) SubshellTotal(s Subshell) int {
	return m.occ.Aggregate(s.N, s.Letter)
}

// OnElementChange switches to element z. In Auto mode the occupancy is replaced
// by the new target; in Manual mode it is cleared.
func (m *Manager) OnElementChange(z int) {
	m.z = z
	if m.mode == ModeAuto {
		m.occ = Target(z)
		return
	}
	m.occ = make(Occupancy)
}

// ToggleMode flips between Manual and Auto. Entering Auto fills the target;
// entering Manual keeps whatever is on screen.
func (m *Manager) ToggleMode() {
	if m.mode == ModeAuto {
		m.mode = ModeManual
		return
	}
	m.AutoFill()
}

// EditBox adds or removes one electron. It always forces Manual mode and
// reports whether the count actually changed; edits past 0 or 2 are ignored.
func (m *Manager) EditBox(id BoxID, dir Direction) bool {
	m.mode = ModeManual
	if !id.Valid() {
		return false
	}

	current := m.occ[id]
	switch dir {
	case Increment:
		if current >= MaxBoxElectrons {
			return false
		}
		m.occ[id] = current + 1
	case Decrement:
		if current <= 0 {
			return false
		}
		m.occ[id] = current - 1
	default:
		return false
	}
	return true
}

// AutoFill sets Auto mode and the target occupancy for the current element.
func (m *Manager) AutoFill() {
	m.mode = ModeAuto
	m.occ = Target(m.z)
}

// Reset sets Manual mode and empties every box.
func (m *Manager) Reset() {
	m.mode = ModeManual
	m.occ = make(Occupancy)
}
