package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"termtac/art"
	"termtac/config"
	"termtac/engine"
	"termtac/types"
)

const (
	settingsSelfColor = iota
	settingsOpponentColor
	settingsBack
)

// SettingsScreen picks the display colour of each side from the palette.
type SettingsScreen struct {
	menu   *MenuList
	picker *MenuList
	open   bool
	target engine.Side
}

func NewSettingsScreen() *SettingsScreen {
	names := make([]string, len(config.Palette))
	for i, c := range config.Palette {
		names[i] = c.Name
	}
	return &SettingsScreen{
		menu:   NewMenuList("Change player color", "Change opponent color", "Go back"),
		picker: NewMenuList(names...),
	}
}

func (s *SettingsScreen) Name() string { return "settings" }

func (s *SettingsScreen) sealed() {}

// PickerOpen reports whether the colour modal is shown.
func (s *SettingsScreen) PickerOpen() bool { return s.open }

// Target is the side the open modal changes.
func (s *SettingsScreen) Target() engine.Side { return s.target }

// Selected returns the outer menu index.
func (s *SettingsScreen) Selected() int { return s.menu.Selected() }

// PickerSelected returns the modal cursor index.
func (s *SettingsScreen) PickerSelected() int { return s.picker.Selected() }

func (s *SettingsScreen) HandleKey(key types.Key) types.Action {
	if s.open {
		return s.handlePickerKey(key)
	}
	if s.menu.HandleKey(key) {
		return types.Nothing()
	}
	switch key {
	case types.KeyEnter:
		switch s.menu.Selected() {
		case settingsSelfColor:
			s.open, s.target = true, engine.Self
		case settingsOpponentColor:
			s.open, s.target = true, engine.Opponent
		case settingsBack:
			return types.GoToMain()
		}
	case types.KeyEscape:
		return types.GoToMain()
	}
	return types.Nothing()
}

func (s *SettingsScreen) handlePickerKey(key types.Key) types.Action {
	if s.picker.HandleKey(key) {
		return types.Nothing()
	}
	switch key {
	case types.KeyEnter:
		color := config.Palette[s.picker.Selected()].Color
		s.open = false
		s.picker.Reset()
		return types.ChangeColor(s.target, color)
	case types.KeyEscape:
		s.open = false
	}
	return types.Nothing()
}

func (s *SettingsScreen) BackgroundStep() {}

func (s *SettingsScreen) Render(surface Surface, settings types.Settings) {
	w, h := surface.Size()
	full := Rect{W: w, H: h}
	surface.Box(full, "Settings", MenuColors.Border)
	inner := full.Inner()

	title := art.SettingsTitle()
	_, body := inner.Take(1)
	titleRect, body := body.Take(len(title) + 2)
	drawBlock(surface, titleRect, title, MenuColors.Title)

	lines := s.menu.Lines()
	menuRect, body := body.Take(len(lines) + 1)
	s.menu.Draw(surface, menuRect.Center(art.Width(lines), len(lines)), AlignLeft)

	selfRow, body := body.Take(1)
	opponentRow, _ := body.Take(1)
	surface.Text(selfRow, []string{fmt.Sprintf("Player: %s", config.ColorName(settings.SelfColor))}, AlignCenter, settings.SelfColor)
	surface.Text(opponentRow, []string{fmt.Sprintf("Opponent: %s", config.ColorName(settings.OpponentColor))}, AlignCenter, settings.OpponentColor)

	if s.open {
		s.renderPicker(surface, full)
	}
}

func (s *SettingsScreen) renderPicker(surface Surface, full Rect) {
	modal := full.CenterPercent(50, 50)
	surface.Fill(modal, tcell.ColorDefault)
	surface.Box(modal, "Select color", MenuColors.Border)

	listRect, swatchRect := modal.Inner().SplitV(80)
	s.picker.Draw(surface, Rect{X: listRect.X + 1, Y: listRect.Y, W: listRect.W - 1, H: listRect.H}, AlignLeft)

	chosen := config.Palette[s.picker.Selected()]
	surface.Fill(swatchRect, chosen.Color)
	label := swatchRect.Center(swatchRect.W, 1)
	surface.Text(label, []string{chosen.Name}, AlignCenter, labelColor(chosen.Color))
}
