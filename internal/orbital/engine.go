package orbital

// allocation assigns a fixed electron count to one subshell.
type allocation struct {
	n      int
	letter Letter
	count  int
}

// recipe is a complete fill plan that replaces the Aufbau walk for one element.
type recipe []allocation

// argonCore is 1s2 2s2 2p6 3s2 3p6.
var argonCore = recipe{
	{1, LetterS, 2},
	{2, LetterS, 2},
	{2, LetterP, 6},
	{3, LetterS, 2},
	{3, LetterP, 6},
}

func withCore(tail ...allocation) recipe {
	r := make(recipe, 0, len(argonCore)+len(tail))
	r = append(r, argonCore...)
	return append(r, tail...)
}

// overrides holds the elements whose real configuration deviates from Aufbau.
// A half-filled or full 3d subshell wins over a full 4s.
var overrides = map[int]recipe{
	24: withCore(allocation{4, LetterS, 1}, allocation{3, LetterD, 5}),  // Cr
	29: withCore(allocation{4, LetterS, 1}, allocation{3, LetterD, 10}), // Cu
}

// IsException reports whether z uses an override recipe instead of Aufbau.
func IsException(z int) bool {
	_, ok := overrides[z]
	return ok
}

// Target computes the ground-state occupancy for atomic number z.
// Only boxes holding at least one electron appear in the result.
func Target(z int) Occupancy {
	occ := make(Occupancy)
	if r, ok := overrides[z]; ok {
		for _, a := range r {
			s, _ := Lookup(a.n, a.letter)
			fill(occ, s, a.count)
		}
		return occ
	}

	remaining := z
	for _, s := range aufbau {
		if remaining <= 0 {
			break
		}
		take := min(remaining, s.Capacity)
		fill(occ, s, take)
		remaining -= take
	}
	return occ
}

// fill distributes count electrons round-robin over the subshell's boxes, so every
// box is singly occupied before any is paired.
func fill(occ Occupancy, s Subshell, count int) {
	for i := 0; i < count; i++ {
		occ[s.Box(i%s.Boxes)]++
	}
}

// lastFilled returns the last subshell in Aufbau order that receives an electron
// under the plain Aufbau walk.
func lastFilled(z int) (Subshell, bool) {
	var last Subshell
	found := false
	remaining := z
	for _, s := range aufbau {
		if remaining <= 0 {
			break
		}
		last, found = s, true
		remaining -= min(remaining, s.Capacity)
	}
	return last, found
}

// BlockOf classifies an element into the s, p or d block.
//
// Within the table's range the block is the letter of the last subshell the Aufbau
// walk touches, so it always agrees with Target. Beyond it only Ga..Kr (31-36) are
// classified as p; anything else defaults to s.
func BlockOf(z int) Letter {
	if z >= 1 && z <= MaxAtomicNumber {
		if s, ok := lastFilled(z); ok {
			return s.Letter
		}
	}
	if z >= 31 && z <= 36 {
		return LetterP
	}
	return LetterS
}
