package orbital

import (
	"strconv"
	"strings"
)

const (
	// EmptyPit is shown when no box holds an electron.
	EmptyPit = "Empty Pit"

	// ArgonCore is the noble-gas prefix used by the shortcut notation.
	ArgonCore = "[Ar]"
)

// Format renders the occupancy as "1s2 2s2 2p4 ", one term per non-empty subshell,
// in Aufbau order. visible restricts the subshells considered; nil means all of them.
// The empty string is returned when nothing qualifies.
func Format(occ Occupancy, visible []Subshell) string {
	if visible == nil {
		visible = aufbau[:]
	}

	totals := make(map[string]int, len(aufbau))
	for id, c := range occ {
		s := Subshell{N: id.N, Letter: id.Letter}
		totals[s.Key()] += c
	}

	var sb strings.Builder
	for _, s := range visible {
		count := totals[s.Key()]
		if count <= 0 {
			continue
		}
		sb.WriteString(s.Key())
		sb.WriteString(strconv.Itoa(count))
		sb.WriteByte(' ')
	}
	return sb.String()
}

// NobleCoreVisible returns the subshells shown outside the argon core for z, or
// nil when the shortcut does not apply (z <= 18).
func NobleCoreVisible(z int) []Subshell {
	if z <= 18 {
		return nil
	}
	var out []Subshell
	for _, s := range aufbau {
		if s.N >= 4 || s.Letter == LetterD {
			out = append(out, s)
		}
	}
	return out
}

// Notation builds the display string for the pit header. With shortcut on and
// z beyond argon, the core is collapsed to "[Ar]".
func Notation(occ Occupancy, z int, shortcut bool) string {
	if shortcut {
		if visible := NobleCoreVisible(z); visible != nil {
			if tail := Format(occ, visible); tail != "" {
				return ArgonCore + " " + tail
			}
			return ArgonCore
		}
	}
	if s := Format(occ, nil); s != "" {
		return s
	}
	return EmptyPit
}
