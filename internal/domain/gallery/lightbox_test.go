package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCyclicNavigation(t *testing.T) {
	lb := New(3)
	require.NoError(t, lb.OpenAt(0))

	lb.Next()
	lb.Next()
	lb.Next()
	assert.Equal(t, 0, lb.State().Index)

	lb.Previous()
	assert.Equal(t, 2, lb.State().Index)
	assert.Equal(t, "3 / 3", lb.Counter())
}

func TestOpenAtRejectsOutOfRange(t *testing.T) {
	require.ErrorIs(t, New(3).OpenAt(3), ErrOutOfRange)
	require.ErrorIs(t, New(3).OpenAt(-1), ErrOutOfRange)
	require.ErrorIs(t, New(0).OpenAt(0), ErrOutOfRange)
}

func TestInfoFlagSurvivesNavigationNotReopen(t *testing.T) {
	lb := New(2)
	require.NoError(t, lb.OpenAt(1))
	lb.ToggleInfo()
	lb.Next()
	assert.Equal(t, State{Open: true, Index: 0, InfoVisible: true}, lb.State())

	lb.Close()
	require.NoError(t, lb.OpenAt(1))
	assert.False(t, lb.State().InfoVisible)
}

func TestKeys(t *testing.T) {
	lb := New(4)
	require.NoError(t, lb.OpenAt(1))

	assert.True(t, lb.HandleKey("ArrowRight"))
	assert.Equal(t, 2, lb.State().Index)
	assert.True(t, lb.HandleKey("ArrowLeft"))
	assert.Equal(t, 1, lb.State().Index)
	assert.True(t, lb.HandleKey("I"))
	assert.True(t, lb.State().InfoVisible)
	assert.False(t, lb.HandleKey("Enter"))
	assert.True(t, lb.HandleKey("Escape"))
	assert.False(t, lb.State().Open)
	assert.False(t, lb.HandleKey("ArrowRight"))
}

func TestPointerImageNeverCloses(t *testing.T) {
	lb := New(3)
	require.NoError(t, lb.OpenAt(2))

	lb.HandlePointer(TargetImage)
	lb.HandlePointer(TargetInfoPanel)
	assert.True(t, lb.State().Open)

	lb.HandlePointer(TargetNext)
	assert.Equal(t, 0, lb.State().Index)
	lb.HandlePointer(TargetPrev)
	assert.Equal(t, 2, lb.State().Index)

	lb.HandlePointer(TargetOverlay)
	assert.False(t, lb.State().Open)

	require.NoError(t, lb.OpenAt(0))
	lb.HandlePointer(TargetCloseButton)
	assert.Equal(t, State{}, lb.State())
	assert.Equal(t, "", lb.Counter())
}

func TestClosedIgnoresNavigation(t *testing.T) {
	lb := New(3)
	lb.Next()
	lb.Previous()
	lb.ToggleInfo()
	assert.Equal(t, State{}, lb.State())
}
