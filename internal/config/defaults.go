package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: PlayfieldConfig{
			Width:     60,
			Height:    24,
			TopMargin: 2,
		},
		Bricks: BricksConfig{
			Columns: 10,
			Rows:    5,
		},
		Paddle: PaddleConfig{
			Width: 9,
			Speed: 2,
		},
		Ball: BallConfig{
			Throttle: 3,
			MaxDX:    2,
			StartDX:  1,
			StartDY:  -1,
		},
		Timing: TimingConfig{
			TickMS: 33, // ~30 FPS
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
