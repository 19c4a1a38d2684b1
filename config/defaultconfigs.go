package config

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		Colors: ColorsConfig{
			Self:     "Blue",
			Opponent: "Red",
		},
		Timing: TimingConfig{
			PollMs:          16,
			FrameMs:         0,
			ThinkingStep:    10,
			ThinkingDelayMs: 100,
		},
		Game: GameConfig{
			SelfMark: "X",
			First:    "self",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
