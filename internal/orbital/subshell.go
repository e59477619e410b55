// Package orbital implements the orbital-filling engine for the Electron Underground.
//
// It covers the target configuration for an atomic number (Aufbau order plus the
// Cr/Cu exceptions), a live per-box occupancy state with Manual and Auto fill modes,
// and the configuration notation derived from that state.
package orbital

import "fmt"

// Letter is a subshell letter.
type Letter string

const (
	LetterS Letter = "s"
	LetterP Letter = "p"
	LetterD Letter = "d"
)

const (
	// MaxBoxElectrons is the Pauli limit for a single box.
	MaxBoxElectrons = 2

	// MaxAtomicNumber is the highest atomic number the subshell table covers.
	MaxAtomicNumber = 30
)

// Subshell describes one (n, letter) group of boxes.
type Subshell struct {
	N        int
	Letter   Letter
	Capacity int
	Boxes    int
}

// Key returns the subshell label, e.g. "3d".
func (s Subshell) Key() string {
	return fmt.Sprintf("%d%s", s.N, s.Letter)
}

// Box returns the identity of box i in this subshell.
func (s Subshell) Box(i int) BoxID {
	return BoxID{N: s.N, Letter: s.Letter, Index: i}
}

// aufbau is the fill order, lowest energy first.
var aufbau = [...]Subshell{
	{N: 1, Letter: LetterS, Capacity: 2, Boxes: 1},
	{N: 2, Letter: LetterS, Capacity: 2, Boxes: 1},
	{N: 2, Letter: LetterP, Capacity: 6, Boxes: 3},
	{N: 3, Letter: LetterS, Capacity: 2, Boxes: 1},
	{N: 3, Letter: LetterP, Capacity: 6, Boxes: 3},
	{N: 4, Letter: LetterS, Capacity: 2, Boxes: 1},
	{N: 3, Letter: LetterD, Capacity: 10, Boxes: 5},
}

// Subshells returns the subshell table in Aufbau order.
func Subshells() []Subshell {
	out := make([]Subshell, len(aufbau))
	copy(out, aufbau[:])
	return out
}

// Lookup finds the subshell for (n, letter).
func Lookup(n int, letter Letter) (Subshell, bool) {
	for _, s := range aufbau {
		if s.N == n && s.Letter == letter {
			return s, true
		}
	}
	return Subshell{}, false
}

// BoxID addresses a single box.
type BoxID struct {
	N      int
	Letter Letter
	Index  int
}

// String renders the box as "2p-1".
func (b BoxID) String() string {
	return fmt.Sprintf("%d%s-%d", b.N, b.Letter, b.Index)
}

// Valid reports whether the box exists in the subshell table.
func (b BoxID) Valid() bool {
	s, ok := Lookup(b.N, b.Letter)
	return ok && b.Index >= 0 && b.Index < s.Boxes
}

// Occupancy maps boxes to electron counts. A missing key means zero.
type Occupancy map[BoxID]int

// Get returns the count for a box.
func (o Occupancy) Get(id BoxID) int {
	return o[id]
}

// Total sums every box.
func (o Occupancy) Total() int {
	total := 0
	for _, c := range o {
		total += c
	}
	return total
}

// Aggregate sums the boxes of one subshell.
func (o Occupancy) Aggregate(n int, letter Letter) int {
	total := 0
	for id, c := range o {
		if id.N == n && id.Letter == letter {
			total += c
		}
	}
	return total
}

// Clone returns an independent copy.
func (o Occupancy) Clone() Occupancy {
	out := make(Occupancy, len(o))
	for id, c := range o {
		out[id] = c
	}
	return out
}

// Equal compares two occupancies, treating zero entries as absent.
func (o Occupancy) Equal(other Occupancy) bool {
	for id, c := range o {
		if other[id] != c {
			return false
		}
	}
	for id, c := range other {
		if o[id] != c {
			return false
		}
	}
	return true
}
