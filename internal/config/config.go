// Package config provides YAML-based game configuration loading and
// difficulty presets for Nut Wars.
package config

import (
	"errors"
	"fmt"

	"github.com/jl-5/nut-wars/internal/core"
	"github.com/jl-5/nut-wars/internal/sprite"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// NutWarsConfig contains all configuration for the Nut Wars game.
type NutWarsConfig struct {
	Screen     ScreenConfig  `yaml:"screen"`
	Player     ActorConfig   `yaml:"player"`
	Nut        NutConfig     `yaml:"nut"`
	Background sprite.Region `yaml:"background"`
}

// ScreenConfig is the size of the visible world in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RectConfig is a world rectangle. A negative width means mirrored.
type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Rect converts to a core.Rect.
func (r RectConfig) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// AnimationConfig lists the sheet regions of an animation.
type AnimationConfig struct {
	Rate   int             `yaml:"rate"` // ticks per frame, minus one
	Frames []sprite.Region `yaml:"frames"`
}

// ActorConfig defines one on-screen actor.
type ActorConfig struct {
	Rect        RectConfig      `yaml:"rect"`
	FacingRight bool            `yaml:"facing_right"`
	Speed       float64         `yaml:"speed"`
	FlipOffset  float64         `yaml:"flip_offset"`
	Animation   AnimationConfig `yaml:"animation"`
}

// NutConfig defines the falling nut.
type NutConfig struct {
	ActorConfig    `yaml:",inline"`
	SpeedIncrement float64 `yaml:"speed_increment"` // added to speed on every catch
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ApplyPreset modifies the nut's fall speed and catch increment for a preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *NutWarsConfig, preset DifficultyPreset) error {
	switch preset {
	case "", DifficultyNormal:
	case DifficultyEasy:
		cfg.Nut.Speed *= 0.75
		cfg.Nut.SpeedIncrement /= 2
	case DifficultyHard:
		cfg.Nut.Speed *= 1.5
		cfg.Nut.SpeedIncrement *= 2
	case DifficultyFixed:
		cfg.Nut.SpeedIncrement = 0
	default:
		return fmt.Errorf("config: unknown difficulty %q", preset)
	}
	return nil
}

// Validate checks the preconditions the game relies on at construction.
func (c NutWarsConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	}
	if err := c.Player.validate("player"); err != nil {
		return err
	}
	if err := c.Nut.validate("nut"); err != nil {
		return err
	}
	if c.Nut.FacingRight || c.Nut.Rect.W < 0 {
		return fmt.Errorf("%w: nut must not be mirrored", ErrInvalid)
	}
	if c.Nut.SpeedIncrement < 0 {
		return fmt.Errorf("%w: nut speed_increment must not be negative", ErrInvalid)
	}
	if !c.Background.Valid() {
		return fmt.Errorf("%w: background region %+v is outside the sheet", ErrInvalid, c.Background)
	}
	return nil
}

func (a ActorConfig) validate(name string) error {
	if a.Rect.W == 0 || a.Rect.H <= 0 {
		return fmt.Errorf("%w: %s rect needs a non-zero size", ErrInvalid, name)
	}
	if a.FacingRight != (a.Rect.W < 0) {
		return fmt.Errorf("%w: %s facing_right=%v does not match width %g", ErrInvalid, name, a.FacingRight, a.Rect.W)
	}
	if a.Speed < 0 {
		return fmt.Errorf("%w: %s speed must not be negative", ErrInvalid, name)
	}
	if a.FlipOffset < 0 {
		return fmt.Errorf("%w: %s flip_offset must not be negative", ErrInvalid, name)
	}
	if a.Animation.Rate < 0 {
		return fmt.Errorf("%w: %s animation rate must not be negative", ErrInvalid, name)
	}
	if len(a.Animation.Frames) == 0 {
		return fmt.Errorf("%w: %s animation has no frames", ErrInvalid, name)
	}
	for i, f := range a.Animation.Frames {
		if !f.Valid() {
			return fmt.Errorf("%w: %s frame %d %+v is outside the sheet", ErrInvalid, name, i, f)
		}
	}
	return nil
}
