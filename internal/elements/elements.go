// Package elements holds the curated list of elements the pit can play.
package elements

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"underground/internal/orbital"
)

// ErrUnknownElement is returned when a lookup matches nothing in the list.
var ErrUnknownElement = errors.New("unknown element")

// Element is one selectable track.
type Element struct {
	Number int
	Symbol string
	Name   string
}

// Rebellious reports whether the element breaks the Aufbau order.
func (e Element) Rebellious() bool {
	return orbital.IsException(e.Number)
}

// Block returns the element's periodic-table block.
func (e Element) Block() orbital.Letter {
	return orbital.BlockOf(e.Number)
}

func (e Element) String() string {
	return fmt.Sprintf("%s (%d)", e.Symbol, e.Number)
}

var curated = []Element{
	{1, "H", "Hydrogen"},
	{2, "He", "Helium"},
	{3, "Li", "Lithium"},
	{6, "C", "Carbon"},
	{7, "N", "Nitrogen"},
	{8, "O", "Oxygen"},
	{9, "F", "Fluorine"},
	{10, "Ne", "Neon"},
	{11, "Na", "Sodium"},
	{12, "Mg", "Magnesium"},
	{13, "Al", "Aluminium"},
	{15, "P", "Phosphorus"},
	{16, "S", "Sulfur"},
	{17, "Cl", "Chlorine"},
	{18, "Ar", "Argon"},
	{19, "K", "Potassium"},
	{20, "Ca", "Calcium"},
	{21, "Sc", "Scandium"},
	{22, "Ti", "Titanium"},
	{23, "V", "Vanadium"},
	{24, "Cr", "Chromium"},
	{25, "Mn", "Manganese"},
	{26, "Fe", "Iron"},
	{27, "Co", "Cobalt"},
	{28, "Ni", "Nickel"},
	{29, "Cu", "Copper"},
	{30, "Zn", "Zinc"},
}

// All returns the curated elements in ascending atomic number.
func All() []Element {
	out := make([]Element, len(curated))
	copy(out, curated)
	return out
}

// Default returns the element selected on start-up (Iron).
func Default() Element {
	if e, err := BySymbol("Fe"); err == nil {
		return e
	}
	return curated[0]
}

// ByNumber finds an element by atomic number.
func ByNumber(z int) (Element, error) {
	for _, e := range curated {
		if e.Number == z {
			return e, nil
		}
	}
	return Element{}, fmt.Errorf("%w: Z=%d", ErrUnknownElement, z)
}

// BySymbol finds an element by symbol, ignoring case.
func BySymbol(symbol string) (Element, error) {
	for _, e := range curated {
		if strings.EqualFold(e.Symbol, symbol) {
			return e, nil
		}
	}
	return Element{}, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
}

// Lookup accepts an atomic number, a symbol or a full name.
func Lookup(s string) (Element, error) {
	s = strings.TrimSpace(s)
	if z, err := strconv.Atoi(s); err == nil {
		return ByNumber(z)
	}
	if e, err := BySymbol(s); err == nil {
		return e, nil
	}
	for _, e := range curated {
		if strings.EqualFold(e.Name, s) {
			return e, nil
		}
	}
	return Element{}, fmt.Errorf("%w: %q", ErrUnknownElement, s)
}

// IndexOf returns the position of z in All, or -1.
func IndexOf(z int) int {
	for i, e := range curated {
		if e.Number == z {
			return i
		}
	}
	return -1
}
