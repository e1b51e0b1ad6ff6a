package tui

import (
	"time"

	"github.com/jl-5/nut-wars/internal/core"
)

// keyHoldDuration is how long a direction stays held after its last press
// event. Terminals report key repeats but never releases, so a key counts as
// released once the repeats stop for this long.
const keyHoldDuration = 400 * time.Millisecond

// keyLatch turns terminal key presses into held and released keys.
type keyLatch struct {
	hold    int              // Ticks a press keeps a key held
	ttl     map[core.Key]int // Remaining ticks per held key
	dropped []core.Key       // Keys released by an opposite press
}

func newKeyLatch(tickRate int) *keyLatch {
	hold := int(keyHoldDuration * time.Duration(tickRate) / time.Second)
	return &keyLatch{
		hold: core.Max(hold, 1),
		ttl:  make(map[core.Key]int),
	}
}

// Press marks k as held. Any other held direction is released.
func (l *keyLatch) Press(k core.Key) {
	for other := range l.ttl {
		if other != k {
			delete(l.ttl, other)
			l.dropped = append(l.dropped, other)
		}
	}
	l.ttl[k] = l.hold
}

// Apply writes the held and released keys for the next tick into frame and
// ages every held key by one tick.
func (l *keyLatch) Apply(frame *core.InputFrame) {
	for k := range frame.HeldKeys {
		delete(frame.HeldKeys, k)
	}

	for _, k := range l.dropped {
		frame.Release(k)
	}
	l.dropped = l.dropped[:0]

	for k, n := range l.ttl {
		if n <= 0 {
			frame.Release(k)
			delete(l.ttl, k)
			continue
		}
		frame.Hold(k)
		l.ttl[k] = n - 1
	}
}

// Reset forgets every held key.
func (l *keyLatch) Reset() {
	for k := range l.ttl {
		delete(l.ttl, k)
	}
	l.dropped = l.dropped[:0]
}
