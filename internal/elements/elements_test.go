package elements

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"underground/internal/orbital"
)

func TestAll_SortedAndInRange(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	prev := 0
	for _, e := range all {
		assert.Greater(t, e.Number, prev)
		assert.LessOrEqual(t, e.Number, orbital.MaxAtomicNumber)
		prev = e.Number
	}
}

func TestDefault_IsIron(t *testing.T) {
	e := Default()
	assert.Equal(t, 26, e.Number)
	assert.Equal(t, "Iron", e.Name)
}

func TestRebellious(t *testing.T) {
	var rebels []string
	for _, e := range All() {
		if e.Rebellious() {
			rebels = append(rebels, e.Symbol)
		}
	}
	assert.Equal(t, []string{"Cr", "Cu"}, rebels)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"29", 29},
		{"cu", 29},
		{"Copper", 29},
		{" o ", 8},
	}
	for _, tt := range tests {
		e, err := Lookup(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, e.Number, tt.in)
	}

	_, err := Lookup("Kr")
	assert.True(t, errors.Is(err, ErrUnknownElement))
	_, err = ByNumber(14)
	assert.ErrorIs(t, err, ErrUnknownElement)
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 0, IndexOf(1))
	assert.Equal(t, -1, IndexOf(4))
	assert.Equal(t, orbital.LetterD, All()[IndexOf(30)].Block())
}
