// Package art holds the decorative text blocks drawn by the screens.
package art

import (
	"github.com/mattn/go-runewidth"

	"termtac/engine"
)

// Banner identifies a headline drawn above the board.
type Banner int

const (
	YourTurn Banner = iota
	EnemyTurn
	CrossTurn
	CircleTurn
	YouWon
	YouLost
	CrossWon
	CircleWon
	Draw
)

// Mood identifies the face shown in the computer status panel.
type Mood int

const (
	Smiley Mood = iota
	Thinking
	Happy
	Angry
)

var title = []string{
	" _____ _        _____            _____          ",
	"|_   _(_) ___  |_   _|_ _  ___  |_   _|__   ___ ",
	"  | | | |/ __|   | |/ _` |/ __|   | |/ _ \\ / _ \\",
	"  | | | | (__    | | (_| | (__    | | (_) |  __/",
	"  |_| |_|\\___|   |_|\\__,_|\\___|   |_|\\___/ \\___|",
}

var settingsTitle = []string{
	" ____       _   _   _                 ",
	"/ ___|  ___| |_| |_(_)_ __   __ _ ___ ",
	"\\___ \\ / _ \\ __| __| | '_ \\ / _` / __|",
	" ___) |  __/ |_| |_| | | | | (_| \\__ \\",
	"|____/ \\___|\\__|\\__|_|_| |_|\\__, |___/",
	"                            |___/     ",
}

var banners = map[Banner][]string{
	YourTurn: {
		"__   __                 _                    ",
		"\\ \\ / /__  _   _ _ __  | |_ _   _ _ __ _ __  ",
		" \\ V / _ \\| | | | '__| | __| | | | '__| '_ \\ ",
		"  | | (_) | |_| | |    | |_| |_| | |  | | | |",
		"  |_|\\___/ \\__,_|_|     \\__|\\__,_|_|  |_| |_|",
	},
	EnemyTurn: {
		" _____                              _                    ",
		"| ____|_ __   ___ _ __ ___  _   _  | |_ _   _ _ __ _ __  ",
		"|  _| | '_ \\ / _ \\ '_ ` _ \\| | | | | __| | | | '__| '_ \\ ",
		"| |___| | | |  __/ | | | | | |_| | | |_| |_| | |  | | | |",
		"|_____|_| |_|\\___|_| |_| |_|\\__, |  \\__|\\__,_|_|  |_| |_|",
		"                            |___/                        ",
	},
	CrossTurn: {
		"  ____                     _____                 ",
		" / ___|_ __ ___  ___ ___  |_   _|   _ _ __ _ __  ",
		"| |   | '__/ _ \\/ __/ __|   | || | | | '__| '_ \\ ",
		"| |___| | | (_) \\__ \\__ \\   | || |_| | |  | | | |",
		" \\____|_|  \\___/|___/___/   |_| \\__,_|_|  |_| |_|",
	},
	CircleTurn: {
		"  ____ _          _        _____                 ",
		" / ___(_)_ __ ___| | ___  |_   _|   _ _ __ _ __  ",
		"| |   | | '__/ __| |/ _ \\   | || | | | '__| '_ \\ ",
		"| |___| | | | (__| |  __/   | || |_| | |  | | | |",
		" \\____|_|_|  \\___|_|\\___|   |_| \\__,_|_|  |_| |_|",
	},
	YouWon: {
		"__   __                                ",
		"\\ \\ / /__  _   _  __      _____  _ __  ",
		" \\ V / _ \\| | | | \\ \\ /\\ / / _ \\| '_ \\ ",
		"  | | (_) | |_| |  \\ V  V / (_) | | | |",
		"  |_|\\___/ \\__,_|   \\_/\\_/ \\___/|_| |_|",
	},
	YouLost: {
		"__   __            _           _   ",
		"\\ \\ / /__  _   _  | | ___  ___| |_ ",
		" \\ V / _ \\| | | | | |/ _ \\/ __| __|",
		"  | | (_) | |_| | | | (_) \\__ \\ |_ ",
		"  |_|\\___/ \\__,_| |_|\\___/|___/\\__|",
	},
	CrossWon: {
		"  ____                    __        __          ",
		" / ___|_ __ ___  ___ ___  \\ \\      / /__  _ __  ",
		"| |   | '__/ _ \\/ __/ __|  \\ \\ /\\ / / _ \\| '_ \\ ",
		"| |___| | | (_) \\__ \\__ \\   \\ V  V / (_) | | | |",
		" \\____|_|  \\___/|___/___/    \\_/\\_/ \\___/|_| |_|",
	},
	CircleWon: {
		"  ____ _          _       __        __          ",
		" / ___(_)_ __ ___| | ___  \\ \\      / /__  _ __  ",
		"| |   | | '__/ __| |/ _ \\  \\ \\ /\\ / / _ \\| '_ \\ ",
		"| |___| | | | (__| |  __/   \\ V  V / (_) | | | |",
		" \\____|_|_|  \\___|_|\\___|    \\_/\\_/ \\___/|_| |_|",
	},
	Draw: {
		" ____  ____      ___        __",
		"|  _ \\|  _ \\    / \\ \\      / /",
		"| | | | |_) |  / _ \\ \\ /\\ / / ",
		"| |_| |  _ <  / ___ \\ V  V /",
		"|____/|_| \\_\\/_/   \\_\\_/\\_/   ",
	},
}

var glyphs = map[engine.Mark][]string{
	engine.X: {
		"__  __",
		"\\ \\/ /",
		" >  < ",
		"/_/\\_\\",
	},
	engine.O: {
		"  ___  ",
		" / _ \\ ",
		"| (_) |",
		" \\___/ ",
	},
}

var faces = map[Mood][]string{
	Smiley: {
		"     ██      ██     ",
		"     ██      ██     ",
		"                    ",
		"██                ██",
		" ██              ██ ",
		"  ████████████████  ",
	},
	Thinking: {
		"                 ███",
		"                   █",
		"    ██   ██      ███",
		"    ██   ██      █  ",
		"                    ",
		"                 █  ",
		"  ████████████      ",
	},
	Happy: {
		"   ███    ███   ",
		"   ███    ███   ",
		"                ",
		"█              █",
		"███          ███",
		"  ████████████  ",
	},
	Angry: {
		"    █      █    ",
		"     █    █     ",
		"   ██ █  █ ██   ",
		"   ██      ██   ",
		"                ",
		" ████ ██████  ██",
		"██  █████  ████ ",
	},
}

// Title returns the main menu headline.
func Title() []string { return title }

// SettingsTitle returns the settings screen headline.
func SettingsTitle() []string { return settingsTitle }

// BannerText returns the lines of a headline banner.
func BannerText(b Banner) []string { return banners[b] }

// Glyph returns the large drawing of a mark. Empty has no drawing.
func Glyph(m engine.Mark) []string { return glyphs[m] }

// Face returns the lines of a mood face.
func Face(m Mood) []string { return faces[m] }

// Width returns the display width of the widest line in a block.
func Width(lines []string) int {
	w := 0
	for _, l := range lines {
		if lw := runewidth.StringWidth(l); lw > w {
			w = lw
		}
	}
	return w
}
