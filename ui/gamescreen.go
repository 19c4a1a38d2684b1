package ui

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"termtac/art"
	"termtac/engine"
	"termtac/types"
)

const (
	gridWidth  = 33
	gridHeight = 18

	// Cursor start tile, bottom middle.
	defaultCursor = 7
	fullGauge     = 100
)

var controlsHelp = []string{
	"←,↑,↓,→ - select tile",
	"Enter - confirm selection",
	"ESC - exit the game",
}

// GameOptions configures a game screen. Nil hooks fall back to SleepPacer
// and LogReporter.
type GameOptions struct {
	Config engine.GameConfig
	// ThinkingStep is added to the computer gauge each frame.
	ThinkingStep int
	// ThinkingDelay is slept after every gauge step.
	ThinkingDelay time.Duration
	Pacer         Pacer
	Errors        MoveErrorReporter
	Logger        *slog.Logger
}

// GameScreen plays one game against a computer or a second local player.
type GameScreen struct {
	game     *engine.Game
	opponent types.OpponentKind
	cursor   int
	thinking int
	step     int
	delay    time.Duration
	pacer    Pacer
	errors   MoveErrorReporter
	logger   *slog.Logger
}

func NewGameScreen(opponent types.OpponentKind, opts GameOptions) *GameScreen {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "game", "session", uuid.NewString())
	if opts.Pacer == nil {
		opts.Pacer = SleepPacer{}
	}
	if opts.Errors == nil {
		opts.Errors = LogReporter{Logger: logger}
	}
	if opts.ThinkingStep <= 0 {
		opts.ThinkingStep = fullGauge
	}

	g := &GameScreen{
		game:     engine.NewGame(opts.Config),
		opponent: opponent,
		cursor:   defaultCursor,
		step:     opts.ThinkingStep,
		delay:    opts.ThinkingDelay,
		pacer:    opts.Pacer,
		errors:   opts.Errors,
		logger:   logger,
	}
	logger.Info("game started",
		"opponent", opponent,
		"self_mark", g.game.MarkOf(engine.Self),
		"first", g.game.Turn())
	return g
}

func (g *GameScreen) Name() string { return "game" }

func (g *GameScreen) sealed() {}

// Game returns the engine state of the running game.
func (g *GameScreen) Game() *engine.Game { return g.game }

// Opponent returns who plays the Opponent side.
func (g *GameScreen) Opponent() types.OpponentKind { return g.opponent }

// Cursor returns the selected cell index.
func (g *GameScreen) Cursor() int { return g.cursor }

// Thinking returns the computer gauge in [0,100].
func (g *GameScreen) Thinking() int { return g.thinking }

// computerToMove reports whether the next move comes from BackgroundStep.
func (g *GameScreen) computerToMove() bool {
	return g.opponent == types.OpponentComputer && !g.game.Over() && g.game.Turn() == engine.Opponent
}

func (g *GameScreen) HandleKey(key types.Key) types.Action {
	if key == types.KeyEscape {
		return types.GoToMain()
	}
	if g.game.Over() || g.computerToMove() {
		return types.Nothing()
	}

	switch key {
	case types.KeyUp:
		g.cursor = engine.Step(g.cursor, -1, 0)
	case types.KeyDown:
		g.cursor = engine.Step(g.cursor, 1, 0)
	case types.KeyLeft:
		g.cursor = engine.Step(g.cursor, 0, -1)
	case types.KeyRight:
		g.cursor = engine.Step(g.cursor, 0, 1)
	case types.KeyEnter:
		g.play(g.cursor)
	}
	return types.Nothing()
}

// BackgroundStep advances the computer gauge and moves once it is full.
func (g *GameScreen) BackgroundStep() {
	if !g.computerToMove() {
		return
	}
	g.thinking = min(g.thinking+g.step, fullGauge)
	g.pacer.Sleep(g.delay)
	if g.thinking < fullGauge {
		return
	}
	g.thinking = 0
	if index, ok := g.game.SelectAIMove(engine.Opponent); ok {
		g.play(index)
	}
}

func (g *GameScreen) play(index int) {
	side := g.game.Turn()
	if err := g.game.AttemptMove(index); err != nil {
		g.errors.ReportMoveError(err)
		return
	}
	g.logger.Debug("move", "side", side, "cell", engine.CellLabel(index))
	if !g.game.Over() {
		return
	}
	if g.game.IsDraw() {
		g.logger.Info("game finished", "result", "draw")
		return
	}
	winner, _ := g.game.Winner()
	g.logger.Info("game finished", "result", "win", "winner", side, "mark", winner)
}

func (g *GameScreen) Render(s Surface, settings types.Settings) {
	w, h := s.Size()
	full := Rect{W: w, H: h}
	board, side := full.SplitH(75)
	status, controls := side.SplitV(50)

	g.renderBoard(s, board, settings)
	g.renderStatus(s, status, settings)

	s.Box(controls, "Controls", MenuColors.Border)
	inner := controls.Inner()
	s.Text(Rect{X: inner.X + 1, Y: inner.Y + 1, W: inner.W - 1, H: inner.H - 1}, controlsHelp, AlignLeft, MenuColors.Label)
}

func (g *GameScreen) renderBoard(s Surface, r Rect, settings types.Settings) {
	s.Box(r, "Game", MenuColors.Border)
	inner := r.Inner()

	banner, color := g.banner(settings)
	lines := art.BannerText(banner)
	bannerRect, rest := inner.Take(len(lines) + 1)
	drawBlock(s, bannerRect, lines, color)

	board := g.game.Board()
	highlight := !g.game.Over() && (g.opponent == types.OpponentHuman || g.game.Turn() == engine.Self)
	for i, tile := range rest.Center(gridWidth, gridHeight).Grid(3, 3) {
		border := MenuColors.Tile
		if highlight && i == g.cursor {
			border = settings.Color(g.game.Turn())
		}
		s.Box(tile, "", border)

		mark := board[i]
		if mark == engine.Empty {
			continue
		}
		glyph := art.Glyph(mark)
		markColor := MenuColors.Label
		if owner, ok := g.game.SideOf(mark); ok {
			markColor = settings.Color(owner)
		}
		s.Text(tile.Inner().Center(art.Width(glyph), len(glyph)), glyph, AlignLeft, markColor)
	}
}

// banner picks the headline and its colour for the current game state.
func (g *GameScreen) banner(settings types.Settings) (art.Banner, tcell.Color) {
	if g.game.IsDraw() {
		return art.Draw, MenuColors.Label
	}
	turn := g.game.Turn()
	winner, won := g.game.Winner()

	if g.opponent == types.OpponentComputer {
		switch {
		case won && turn == engine.Self:
			return art.YouWon, MenuColors.Success
		case won:
			return art.YouLost, MenuColors.Warning
		case turn == engine.Self:
			return art.YourTurn, settings.Color(engine.Self)
		default:
			return art.EnemyTurn, settings.Color(engine.Opponent)
		}
	}

	// Turn freezes on the winner, so it names the winning side too.
	mark := g.game.MarkOf(turn)
	if won {
		mark = winner
	}
	switch {
	case won && mark == engine.X:
		return art.CrossWon, settings.Color(turn)
	case won:
		return art.CircleWon, settings.Color(turn)
	case mark == engine.X:
		return art.CrossTurn, settings.Color(turn)
	default:
		return art.CircleTurn, settings.Color(turn)
	}
}

// mood picks the computer face and its status line.
func (g *GameScreen) mood() (art.Mood, string) {
	switch {
	case g.game.IsDraw():
		return art.Angry, "You are as bad as me"
	case g.game.Over() && g.game.Turn() == engine.Opponent:
		return art.Happy, "Yay i won, you suck"
	case g.game.Over():
		return art.Angry, "I will remember that"
	case g.game.Turn() == engine.Opponent:
		return art.Thinking, "calculating move"
	default:
		return art.Smiley, "waiting for turn.."
	}
}

func (g *GameScreen) renderStatus(s Surface, r Rect, settings types.Settings) {
	s.Box(r, "AI Status", MenuColors.Border)
	inner := r.Inner()

	if g.opponent == types.OpponentHuman {
		s.Text(inner.Center(inner.W, 1), []string{"OFFLINE"}, AlignCenter, MenuColors.Hint)
		return
	}

	mood, text := g.mood()
	face := art.Face(mood)
	_, body := inner.Take(1)
	faceRect, body := body.Take(len(face) + 1)
	drawBlock(s, faceRect, face, settings.Color(engine.Opponent))
	textRect, body := body.Take(2)
	s.Text(textRect, []string{text}, AlignCenter, MenuColors.Label)

	if g.computerToMove() {
		gaugeRect, _ := body.Take(1)
		s.Gauge(Rect{X: gaugeRect.X + 1, Y: gaugeRect.Y, W: gaugeRect.W - 2, H: 1}, g.thinking, settings.Color(engine.Opponent))
	}
}
