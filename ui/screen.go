// Package ui draws the termtac screens and translates terminal input.
package ui

import "termtac/types"

// Screen is one of the three views the controller can show. The set is
// closed: only MainMenu, SettingsScreen and GameScreen implement it.
type Screen interface {
	// Name identifies the view in logs.
	Name() string
	// Render paints the view. It never changes game state.
	Render(s Surface, settings types.Settings)
	// HandleKey turns one key press into a navigation action.
	HandleKey(key types.Key) types.Action
	// BackgroundStep runs once per frame between render and input.
	BackgroundStep()

	sealed()
}
