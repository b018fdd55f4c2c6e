// Package gallery is the lightbox state machine: Closed, or Open at an index
// with the info panel shown or hidden.
package gallery

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("image index out of range")

type Target string

const (
	TargetPrev        Target = "prev"
	TargetNext        Target = "next"
	TargetInfoToggle  Target = "info"
	TargetCloseButton Target = "close"
	TargetOverlay     Target = "overlay"
	TargetImage       Target = "image"
	TargetInfoPanel   Target = "panel"
)

type State struct {
	Open        bool `json:"open"`
	Index       int  `json:"index"`
	InfoVisible bool `json:"infoVisible"`
}

// Lightbox navigates a fixed list of n images.
type Lightbox struct {
	n     int
	state State
}

func New(n int) *Lightbox {
	return &Lightbox{n: n}
}

func (l *Lightbox) Len() int { return l.n }

func (l *Lightbox) State() State { return l.state }

// OpenAt opens on image k with the info panel hidden.
func (l *Lightbox) OpenAt(k int) error {
	if k < 0 || k >= l.n {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, k, l.n)
	}
	l.state = State{Open: true, Index: k}
	return nil
}

func (l *Lightbox) Close() {
	l.state = State{}
}

// Next and Previous wrap around and keep the info flag. Both are no-ops
// while closed.
func (l *Lightbox) Next() {
	if !l.state.Open {
		return
	}
	l.state.Index = (l.state.Index + 1) % l.n
}

func (l *Lightbox) Previous() {
	if !l.state.Open {
		return
	}
	l.state.Index = (l.state.Index - 1 + l.n) % l.n
}

func (l *Lightbox) ToggleInfo() {
	if !l.state.Open {
		return
	}
	l.state.InfoVisible = !l.state.InfoVisible
}

// HandleKey applies a keyboard key and reports whether it was bound.
func (l *Lightbox) HandleKey(key string) bool {
	if !l.state.Open {
		return false
	}
	switch key {
	case "Escape":
		l.Close()
	case "ArrowLeft":
		l.Previous()
	case "ArrowRight":
		l.Next()
	case "i", "I":
		l.ToggleInfo()
	default:
		return false
	}
	return true
}

// HandlePointer applies a click. Clicks on the image or the info panel stay
// there and never reach the overlay's close handler.
func (l *Lightbox) HandlePointer(t Target) bool {
	if !l.state.Open {
		return false
	}
	switch t {
	case TargetPrev:
		l.Previous()
	case TargetNext:
		l.Next()
	case TargetInfoToggle:
		l.ToggleInfo()
	case TargetCloseButton, TargetOverlay:
		l.Close()
	case TargetImage, TargetInfoPanel:
		return true
	default:
		return false
	}
	return true
}

// Counter renders "3 / 12" for the open image.
func (l *Lightbox) Counter() string {
	if !l.state.Open {
		return ""
	}
	return fmt.Sprintf("%d / %d", l.state.Index+1, l.n)
}
