// Package navigation holds the nav bar visibility shared by the layout and
// its children.
package navigation

import "sync"

// HideAfter is the scroll offset below which the nav is always shown.
const HideAfter = 100

// Visibility hides the nav while scrolling down past HideAfter and shows it
// on any upward scroll. Subscribers are told only about changes.
type Visibility struct {
	mu      sync.Mutex
	visible bool
	lastY   int
	nextID  int
	subs    map[int]func(bool)
}

func NewVisibility() *Visibility {
	return &Visibility{visible: true, subs: map[int]func(bool){}}
}

func (v *Visibility) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible
}

// Observe records a scroll position and returns the resulting visibility.
func (v *Visibility) Observe(y int) bool {
	v.mu.Lock()
	next := !(y > v.lastY && y > HideAfter)
	changed := next != v.visible
	v.visible = next
	v.lastY = y
	var notify []func(bool)
	if changed {
		for _, fn := range v.subs {
			notify = append(notify, fn)
		}
	}
	v.mu.Unlock()

	for _, fn := range notify {
		fn(next)
	}
	return next
}

// Subscribe registers fn and returns a function that removes it.
func (v *Visibility) Subscribe(fn func(visible bool)) (unsubscribe func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subs, id)
	}
}

// VisibleAfter evaluates a single scroll step from prevY to y.
func VisibleAfter(prevY, y int) bool {
	v := NewVisibility()
	v.lastY = prevY
	return v.Observe(y)
}
