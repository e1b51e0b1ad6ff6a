// Package actor implements on-screen characters: a world rectangle, a facing
// direction, a movement speed and a frame animation.
package actor

import (
	"errors"
	"fmt"

	"github.com/jl-5/nut-wars/internal/core"
	"github.com/jl-5/nut-wars/internal/sprite"
)

// Construction errors.
var (
	ErrEmptyRect      = errors.New("actor: rectangle needs a non-zero width and height")
	ErrFacingMismatch = errors.New("actor: width sign does not match facing direction")
	ErrNoAnimation    = errors.New("actor: animation is required")
	ErrNoRand         = errors.New("actor: random source is required for respawn")
)

// Rand is the randomness source used for respawn positions.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Config describes an actor at creation time.
type Config struct {
	Rect        core.Rect
	FacingRight bool
	Speed       float64
	FlipOffset  float64 // x shift applied when the sprite is mirrored
	Slot        int     // index in the published draw list
	Animation   *sprite.Animation

	// Respawn bounds, used by Descend and ResetPosition.
	TopY float64
	MaxX int
	Rand Rand
}

// Actor is a sprite-backed character.
//
// Facing right is encoded as a negative Rect.W: the sheet art faces left and
// the renderer mirrors it. FaceLeft/FaceRight keep the sign in step with
// FacingRight.
type Actor struct {
	Rect        core.Rect
	Speed       float64
	FacingRight bool

	anim       *sprite.Animation
	flipOffset float64
	slot       int
	topY       float64
	maxX       int
	rng        Rand
}

// New creates an actor, rejecting configurations that break its invariants.
// A nil Rand is accepted only when MaxX is zero, for actors that never respawn.
func New(cfg Config) (*Actor, error) {
	if cfg.Rect.W == 0 || cfg.Rect.H == 0 {
		return nil, ErrEmptyRect
	}
	if cfg.FacingRight != (cfg.Rect.W < 0) {
		return nil, fmt.Errorf("%w: facing right=%v, width=%g", ErrFacingMismatch, cfg.FacingRight, cfg.Rect.W)
	}
	if cfg.Animation == nil {
		return nil, ErrNoAnimation
	}
	if cfg.FlipOffset < 0 {
		return nil, fmt.Errorf("actor: negative flip offset %g", cfg.FlipOffset)
	}
	if cfg.MaxX < 0 {
		return nil, fmt.Errorf("actor: negative respawn range %d", cfg.MaxX)
	}
	if cfg.Rand == nil && cfg.MaxX > 0 {
		return nil, ErrNoRand
	}

	return &Actor{
		Rect:        cfg.Rect,
		Speed:       cfg.Speed,
		FacingRight: cfg.FacingRight,
		anim:        cfg.Animation,
		flipOffset:  cfg.FlipOffset,
		slot:        cfg.Slot,
		topY:        cfg.TopY,
		maxX:        cfg.MaxX,
		rng:         cfg.Rand,
	}, nil
}

// Animation returns the actor's animation.
func (a *Actor) Animation() *sprite.Animation {
	return a.anim
}

// MoveHorizontal moves the actor by its speed in the facing direction.
// There is no bounds clamping.
func (a *Actor) MoveHorizontal() {
	if a.FacingRight {
		a.Rect.X += a.Speed
	} else {
		a.Rect.X -= a.Speed
	}
}

// FaceLeft turns the actor left. Idempotent.
func (a *Actor) FaceLeft() {
	a.FacingRight = false
	if a.Rect.W < 0 {
		a.Rect.W = -a.Rect.W
		a.Rect.X -= a.flipOffset
	}
}

// FaceRight turns the actor right. Idempotent.
func (a *Actor) FaceRight() {
	a.FacingRight = true
	if a.Rect.W > 0 {
		a.Rect.W = -a.Rect.W
		a.Rect.X += a.flipOffset
	}
}

// Descend moves the actor down by its speed and respawns it at the top once
// it reaches the bottom edge.
func (a *Actor) Descend() {
	a.Rect.Y -= a.Speed
	if a.Rect.Y <= 0 {
		a.ResetPosition()
	}
}

// ResetPosition puts the actor back at the top of the world at a random
// horizontal pixel in [0, MaxX].
func (a *Actor) ResetPosition() {
	a.Rect.Y = a.topY
	x := 0
	if a.rng != nil {
		x = a.rng.Intn(a.maxX + 1)
	}
	a.Rect.X = float64(x)
}

// Box returns the collision box with a positive width.
func (a *Actor) Box() core.Rect {
	if a.FacingRight {
		return core.Rect{X: a.Rect.X + a.Rect.W, Y: a.Rect.Y, W: -a.Rect.W, H: a.Rect.H}
	}
	return a.Rect
}

// DrawRecord returns the record the renderer draws for this actor.
func (a *Actor) DrawRecord() sprite.DrawRecord {
	return sprite.DrawRecord{
		Slot:   a.slot,
		Screen: a.Rect,
		Sheet:  a.anim.Frame(),
	}
}
