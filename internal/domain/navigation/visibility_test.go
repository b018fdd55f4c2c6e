package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	v := NewVisibility()
	assert.True(t, v.Visible())

	assert.True(t, v.Observe(80))
	assert.False(t, v.Observe(150))
	assert.False(t, v.Observe(400))
	assert.True(t, v.Observe(390))
	assert.True(t, v.Visible())
}

func TestSubscribersSeeChangesOnly(t *testing.T) {
	v := NewVisibility()
	var got []bool
	unsubscribe := v.Subscribe(func(visible bool) { got = append(got, visible) })

	v.Observe(50)
	v.Observe(200)
	v.Observe(300)
	v.Observe(10)
	unsubscribe()
	v.Observe(500)

	assert.Equal(t, []bool{false, true}, got)
}

func TestVisibleAfter(t *testing.T) {
	assert.False(t, VisibleAfter(120, 200))
	assert.True(t, VisibleAfter(200, 120))
	assert.True(t, VisibleAfter(0, 90))
}
