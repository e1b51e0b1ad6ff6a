package sprite

import (
	"errors"
	"fmt"
)

// ErrNoFrames is returned when an animation is built without frames.
var ErrNoFrames = errors.New("sprite: animation needs at least one frame")

// Animation cycles through sheet regions, advancing one frame every rate+1 ticks.
//
// The index wraps back to zero as soon as it reaches len(frames)-1, so the last
// region of the list is never shown. Sheets are laid out with a trailing
// spacer frame to account for this.
type Animation struct {
	frames       []Region
	frameCounter int
	rate         int
	index        int
}

// NewAnimation creates an animation over a copy of frames.
func NewAnimation(frames []Region, rate int) (*Animation, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if rate < 0 {
		return nil, fmt.Errorf("sprite: negative frame rate %d", rate)
	}

	owned := make([]Region, len(frames))
	copy(owned, frames)

	return &Animation{
		frames: owned,
		rate:   rate,
	}, nil
}

// Tick advances the animation by one simulation tick.
func (a *Animation) Tick() {
	a.frameCounter++
	if a.frameCounter > a.rate {
		a.index++
		if a.index >= len(a.frames)-1 {
			a.index = 0
		}
		a.frameCounter = 0
	}
}

// Stop drives the animation back to its rest frame by ticking until the index
// is zero. Counter mechanics apply on the way, so frameCounter ends at zero
// whenever a wrap was needed.
func (a *Animation) Stop() {
	for a.index != 0 {
		a.Tick()
	}
}

// Frame returns the sheet region of the current frame.
func (a *Animation) Frame() Region {
	return a.frames[a.index]
}

// Index returns the current frame index.
func (a *Animation) Index() int {
	return a.index
}

// Counter returns the ticks elapsed in the current frame.
func (a *Animation) Counter() int {
	return a.frameCounter
}
