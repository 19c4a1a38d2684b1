package ui

import (
	"fmt"

	"termtac/art"
	"termtac/types"
)

// Terminal size the layouts are drawn for.
const (
	RecommendedWidth  = 97
	RecommendedHeight = 31
)

var mainMenuItems = []struct {
	label  string
	action types.Action
}{
	{"Start Game with Ai", types.StartGame(types.OpponentComputer)},
	{"Start Local Co-op game", types.StartGame(types.OpponentHuman)},
	{"Settings", types.GoToSettings()},
	{"Quit", types.Quit()},
}

// MainMenu is the start screen.
type MainMenu struct {
	menu *MenuList
}

func NewMainMenu() *MainMenu {
	labels := make([]string, len(mainMenuItems))
	for i, item := range mainMenuItems {
		labels[i] = item.label
	}
	return &MainMenu{menu: NewMenuList(labels...)}
}

func (m *MainMenu) Name() string { return "main_menu" }

func (m *MainMenu) sealed() {}

// Selected returns the highlighted item index.
func (m *MainMenu) Selected() int { return m.menu.Selected() }

func (m *MainMenu) HandleKey(key types.Key) types.Action {
	if m.menu.HandleKey(key) {
		return types.Nothing()
	}
	switch key {
	case types.KeyEnter:
		return mainMenuItems[m.menu.Selected()].action
	case types.KeyEscape:
		return types.Quit()
	}
	return types.Nothing()
}

func (m *MainMenu) BackgroundStep() {}

func (m *MainMenu) Render(s Surface, settings types.Settings) {
	w, h := s.Size()
	full := Rect{W: w, H: h}
	s.Box(full, "termtac", MenuColors.Border)
	inner := full.Inner()

	title := art.Title()
	_, body := inner.Take(1)
	titleRect, body := body.Take(len(title) + 2)
	drawBlock(s, titleRect, title, settings.SelfColor)

	menuRect := body.Center(inner.W, m.menu.Len())
	menuRect = menuRect.Center(art.Width(m.menu.Lines()), menuRect.H)
	m.menu.Draw(s, menuRect, AlignLeft)

	if w != RecommendedWidth || h != RecommendedHeight {
		hint := fmt.Sprintf("Terminal is %dx%d, recommended size is %dx%d", w, h, RecommendedWidth, RecommendedHeight)
		s.Text(Rect{X: inner.X, Y: inner.Y + inner.H - 1, W: inner.W, H: 1}, []string{hint}, AlignCenter, MenuColors.Warning)
	}
}
