package config

import (
	_ "embed"

	"github.com/jl-5/nut-wars/internal/sprite"
)

//go:embed defaults/nutwars.yaml
var defaultNutWarsYAML []byte

// Sheet layout: 4 columns by 2 rows of equal cells.
const (
	cellW = 0.25
	cellH = 0.5
)

func cell(col, row int) sprite.Region {
	return sprite.Region{X: float64(col) * cellW, Y: float64(row) * cellH, W: cellW, H: cellH}
}

// DefaultNutWarsConfig returns the default Nut Wars configuration.
// It mirrors defaults/nutwars.yaml.
func DefaultNutWarsConfig() NutWarsConfig {
	return NutWarsConfig{
		Screen: ScreenConfig{
			Width:  1024,
			Height: 768,
		},
		Player: ActorConfig{
			Rect:        RectConfig{X: 512, Y: 160, W: -96, H: 96},
			FacingRight: true,
			Speed:       4,
			FlipOffset:  96,
			Animation: AnimationConfig{
				Rate: 6,
				// Row 0: rest, two walk frames, spacer (never shown)
				Frames: []sprite.Region{cell(0, 0), cell(1, 0), cell(2, 0), cell(3, 0)},
			},
		},
		Nut: NutConfig{
			ActorConfig: ActorConfig{
				Rect:       RectConfig{X: 480, Y: 768, W: 32, H: 32},
				Speed:      2,
				FlipOffset: 0,
				Animation: AnimationConfig{
					Rate:   30,
					Frames: []sprite.Region{cell(0, 1)},
				},
			},
			SpeedIncrement: 0.1,
		},
		Background: cell(1, 1),
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultNutWarsYAML
}
