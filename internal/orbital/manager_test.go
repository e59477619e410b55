package orbital

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var box2p0 = BoxID{N: 2, Letter: LetterP, Index: 0}

func TestNewManager_StartsAuto(t *testing.T) {
	m := NewManager(26)
	assert.Equal(t, ModeAuto, m.Mode())
	assert.Equal(t, 26, m.AtomicNumber())
	assert.True(t, m.Occupancy().Equal(Target(26)))
}

func TestManager_AutoFillIdempotent(t *testing.T) {
	m := NewManager(8)
	m.Reset()
	m.AutoFill()
	first := m.Occupancy()
	m.AutoFill()
	assert.True(t, first.Equal(m.Occupancy()))
	assert.Equal(t, "1s2 2s2 2p4 ", Format(m.Occupancy(), nil))
}

func TestManager_IncrementClampsAtTwo(t *testing.T) {
	m := NewManager(8)
	m.Reset()

	assert.True(t, m.EditBox(box2p0, Increment))
	assert.True(t, m.EditBox(box2p0, Increment))
	assert.False(t, m.EditBox(box2p0, Increment))
	assert.False(t, m.EditBox(box2p0, Increment))
	assert.Equal(t, 2, m.Count(box2p0))
}

func TestManager_DecrementClampsAtZero(t *testing.T) {
	m := NewManager(1)
	m.Reset()
	assert.False(t, m.EditBox(box2p0, Decrement))
	assert.Equal(t, 0, m.Count(box2p0))
	assert.Equal(t, ModeManual, m.Mode())
}

func TestManager_EditForcesManualAndKeepsOtherBoxes(t *testing.T) {
	for _, dir := range []Direction{Increment, Decrement} {
		m := NewManager(8)
		before := m.Occupancy()

		m.EditBox(box2p0, dir)

		require.Equal(t, ModeManual, m.Mode())
		after := m.Occupancy()
		for id, c := range before {
			if id == box2p0 {
				continue
			}
			assert.Equal(t, c, after.Get(id), "box %s changed", id)
		}
		want := before.Get(box2p0)
		if dir == Increment {
			want = min(want+1, MaxBoxElectrons)
		} else {
			want = max(want-1, 0)
		}
		assert.Equal(t, want, after.Get(box2p0))
	}
}

func TestManager_EditUnknownBox(t *testing.T) {
	m := NewManager(8)
	assert.False(t, m.EditBox(BoxID{N: 5, Letter: LetterS}, Increment))
	assert.Equal(t, ModeManual, m.Mode())
	assert.True(t, m.Occupancy().Equal(Target(8)))
}

func TestManager_ElementChangeWhileManualClears(t *testing.T) {
	m := NewManager(8)
	m.EditBox(box2p0, Decrement)
	require.NotZero(t, m.Occupancy().Total())

	m.OnElementChange(10)

	assert.Equal(t, ModeManual, m.Mode())
	assert.Empty(t, m.Occupancy())
	assert.Equal(t, 10, m.AtomicNumber())
}

func TestManager_ElementChangeWhileAutoReplaces(t *testing.T) {
	m := NewManager(26)
	m.OnElementChange(3)

	occ := m.Occupancy()
	assert.True(t, occ.Equal(Target(3)))
	assert.Len(t, occ, 2)
	assert.Zero(t, occ.Aggregate(3, LetterD))
}

func TestManager_ToggleMode(t *testing.T) {
	m := NewManager(8)
	m.EditBox(box2p0, Decrement) // manual, 2p0 = 1
	edited := m.Occupancy()

	m.ToggleMode()
	assert.Equal(t, ModeAuto, m.Mode())
	assert.True(t, m.Occupancy().Equal(Target(8)))

	m.ToggleMode()
	assert.Equal(t, ModeManual, m.Mode())
	assert.True(t, m.Occupancy().Equal(Target(8)), "switching to manual must keep the boxes")
	assert.False(t, edited.Equal(m.Occupancy()))
}

func TestManager_ResetThenElementChangeStaysEmpty(t *testing.T) {
	m := NewManager(26)
	m.Reset()
	assert.Equal(t, ModeManual, m.Mode())
	assert.Empty(t, m.Occupancy())

	m.OnElementChange(29)
	assert.Empty(t, m.Occupancy())

	m.AutoFill()
	assert.Equal(t, 10, m.SubshellTotal(Subshell{N: 3, Letter: LetterD}))
}

func TestManager_OccupancyIsCopy(t *testing.T) {
	m := NewManager(2)
	occ := m.Occupancy()
	occ[BoxID{N: 1, Letter: LetterS}] = 0
	assert.Equal(t, 2, m.Count(BoxID{N: 1, Letter: LetterS}))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "auto", ModeAuto.String())
	assert.Equal(t, "manual", ModeManual.String())
	assert.Equal(t, "unknown", Mode(7).String())
}
