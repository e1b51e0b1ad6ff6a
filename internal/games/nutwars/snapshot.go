package nutwars

import "github.com/jl-5/nut-wars/internal/core"

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick             uint64
	Score            int
	ScoreJustChanged bool
	NutsCollected    int
	Paused           bool

	PlayerRect  core.Rect
	FacingRight bool
	PlayerFrame int
	PlayerSpeed float64
	NutRect     core.Rect
	NutSpeed    float64
	Mouse       core.Point
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:             g.tick,
		Score:            g.score.Score,
		ScoreJustChanged: g.score.ScoreJustChanged,
		NutsCollected:    g.score.NutsCollected,
		Paused:           g.paused,
		PlayerRect:       g.player.Rect,
		FacingRight:      g.player.FacingRight,
		PlayerFrame:      g.player.Animation().Index(),
		PlayerSpeed:      g.player.Speed,
		NutRect:          g.nut.Rect,
		NutSpeed:         g.nut.Speed,
		Mouse:            g.mouse,
	}
}
