package ui

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"termtac/art"
	"termtac/engine"
	"termtac/types"
)

func testGameOptions(ctrl *gomock.Controller) (GameOptions, *MockPacer, *MockMoveErrorReporter) {
	pacer := NewMockPacer(ctrl)
	reporter := NewMockMoveErrorReporter(ctrl)
	cfg := engine.DefaultConfig()
	cfg.Rand = rand.New(rand.NewPCG(1, 2))
	return GameOptions{
		Config:        cfg,
		ThinkingStep:  10,
		ThinkingDelay: 100 * time.Millisecond,
		Pacer:         pacer,
		Errors:        reporter,
	}, pacer, reporter
}

// moveCursor presses arrow keys until the cursor is on target.
func moveCursor(t *testing.T, g *GameScreen, target int) {
	t.Helper()
	row, col := engine.RowCol(target)
	for range 4 {
		r, c := engine.RowCol(g.Cursor())
		switch {
		case r > row:
			g.HandleKey(types.KeyUp)
		case r < row:
			g.HandleKey(types.KeyDown)
		case c > col:
			g.HandleKey(types.KeyLeft)
		case c < col:
			g.HandleKey(types.KeyRight)
		}
	}
	require.Equal(t, target, g.Cursor())
}

func playAt(t *testing.T, g *GameScreen, index int) {
	t.Helper()
	moveCursor(t, g, index)
	require.Equal(t, types.Nothing(), g.HandleKey(types.KeyEnter))
}

func TestGameScreenStartsOnBottomMiddle(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _ := testGameOptions(ctrl)
	g := NewGameScreen(types.OpponentComputer, opts)

	assert.Equal(t, 7, g.Cursor())
	assert.Equal(t, 0, g.Thinking())
	assert.Equal(t, types.OpponentComputer, g.Opponent())
	assert.Equal(t, engine.Self, g.Game().Turn())
}

func TestGameScreenCursorClamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _ := testGameOptions(ctrl)
	g := NewGameScreen(types.OpponentHuman, opts)

	tests := []struct {
		key  types.Key
		want int
	}{
		{types.KeyDown, 7},
		{types.KeyLeft, 6},
		{types.KeyLeft, 6},
		{types.KeyUp, 3},
		{types.KeyUp, 0},
		{types.KeyUp, 0},
		{types.KeyRight, 1},
		{types.KeyRight, 2},
		{types.KeyRight, 2},
		{types.KeyDown, 5},
		{types.KeyOther, 5},
	}
	for _, tc := range tests {
		assert.Equal(t, types.Nothing(), g.HandleKey(tc.key))
		assert.Equal(t, tc.want, g.Cursor(), "after %s", tc.key)
	}
	assert.Equal(t, engine.Board{}, g.Game().Board())
}

func TestGameScreenComputerThinksThenMoves(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, pacer, _ := testGameOptions(ctrl)
	g := NewGameScreen(types.OpponentComputer, opts)

	// Self turn: no thinking, no delay.
	g.BackgroundStep()
	assert.Equal(t, 0, g.Thinking())

	playAt(t, g, 0)
	require.Equal(t, engine.Opponent, g.Game().Turn())

	pacer.EXPECT().Sleep(100 * time.Millisecond).Times(10)
	for i := 1; i < 10; i++ {
		g.BackgroundStep()
		assert.Equal(t, i*10, g.Thinking())
		assert.Equal(t, 0, g.Game().Board().Count(engine.O), "moved early at step %d", i)
	}

	g.BackgroundStep()
	assert.Equal(t, 0, g.Thinking())
	assert.Equal(t, 1, g.Game().Board().Count(engine.O))
	assert.Equal(t, engine.Self, g.Game().Turn())

	// Back on the Self turn the gauge stays idle.
	g.BackgroundStep()
	assert.Equal(t, 0, g.Thinking())
}

func TestGameScreenComputerGaugeClampsAtFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, pacer, _ := testGameOptions(ctrl)
	opts.ThinkingStep = 30
	opts.Config.FirstTurn = engine.Opponent
	g := NewGameScreen(types.OpponentComputer, opts)

	pacer.EXPECT().Sleep(gomock.Any()).Times(4)
	for _, want := range []int{30, 60, 90} {
		g.BackgroundStep()
		assert.Equal(t, want, g.Thinking())
	}
	g.BackgroundStep()
	assert.Equal(t, 0, g.Thinking())
	assert.Equal(t, 1, g.Game().Board().Count(engine.O))
}

func TestGameScreenIgnoresKeysOnComputerTurn(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _ := testGameOptions(ctrl)
	g := NewGameScreen(types.OpponentComputer, opts)
	playAt(t, g, 4)

	before := g.Game().Board()
	for _, k := range []types.Key{types.KeyUp, types.KeyLeft, types.KeyEnter, types.KeyOther} {
		assert.Equal(t, types.Nothing(), g.HandleKey(k))
	}
	assert.Equal(t, 4, g.Cursor())
	assert.Equal(t, before, g.Game().Board())
	assert.Equal(t, types.GoToMain(), g.HandleKey(types.KeyEscape))
}

func TestGameScreenHumanOpponentUsesKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _ := testGameOptions(ctrl)
	g := NewGameScreen(types.OpponentHuman, opts)

	playAt(t, g, 4)
	require.Equal(t, engine.Opponent, g.Game().Turn())

	// Opponent turn takes the same keys and BackgroundStep does nothing.
	g.BackgroundStep()
	playAt(t, g, 0)
	assert.Equal(t, engine.O, g.Game().Board()[0])
	assert.Equal(t, engine.Self, g.Game().Turn())
	assert.Equal(t, 0, g.Thinking())
}

func TestGameScreenReportsRejectedMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, reporter := testGameOptions(ctrl)
	g := NewGameScreen(types.OpponentHuman, opts)
	playAt(t, g, 7)

	reporter.EXPECT().ReportMoveError(gomock.Any()).Do(func(err error) {
		assert.True(t, errors.Is(err, engine.ErrCellOccupied), "got %v", err)
	})
	assert.Equal(t, types.Nothing(), g.HandleKey(types.KeyEnter))
	assert.Equal(t, engine.Opponent, g.Game().Turn())
	assert.Equal(t, 1, g.Game().Board().Count(engine.X))
}

func TestGameScreenFinishedGameOnlyLeaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts, _, _ := testGameOptions(ctrl)
	g := NewGameScreen(types.OpponentHuman, opts)
	for _, i := range []int{6, 0, 7, 1, 8} {
		playAt(t, g, i)
	}
	require.True(t, g.Game().Over())

	cursor := g.Cursor()
	for _, k := range []types.Key{types.KeyUp, types.KeyLeft, types.KeyEnter} {
		assert.Equal(t, types.Nothing(), g.HandleKey(k))
	}
	assert.Equal(t, cursor, g.Cursor())
	assert.Equal(t, types.GoToMain(), g.HandleKey(types.KeyEscape))
}

var (
	selfWins     = []int{0, 3, 1, 4, 2}
	opponentWins = []int{0, 3, 1, 4, 8, 5}
	drawn        = []int{0, 1, 2, 4, 3, 5, 7, 6, 8}
)

func gameAfter(t *testing.T, opponent types.OpponentKind, moves []int) *GameScreen {
	t.Helper()
	ctrl := gomock.NewController(t)
	opts, pacer, _ := testGameOptions(ctrl)
	pacer.EXPECT().Sleep(gomock.Any()).AnyTimes()
	g := NewGameScreen(opponent, opts)
	for _, i := range moves {
		require.NoError(t, g.Game().AttemptMove(i))
	}
	return g
}

func TestGameScreenBanner(t *testing.T) {
	self, opp := testSettings.SelfColor, testSettings.OpponentColor
	tests := []struct {
		name      string
		opponent  types.OpponentKind
		moves     []int
		want      art.Banner
		wantColor tcell.Color
	}{
		{"computer your turn", types.OpponentComputer, nil, art.YourTurn, self},
		{"computer enemy turn", types.OpponentComputer, []int{0}, art.EnemyTurn, opp},
		{"computer you won", types.OpponentComputer, selfWins, art.YouWon, MenuColors.Success},
		{"computer you lost", types.OpponentComputer, opponentWins, art.YouLost, MenuColors.Warning},
		{"computer draw", types.OpponentComputer, drawn, art.Draw, MenuColors.Label},
		{"human cross turn", types.OpponentHuman, nil, art.CrossTurn, self},
		{"human circle turn", types.OpponentHuman, []int{0}, art.CircleTurn, opp},
		{"human cross won", types.OpponentHuman, selfWins, art.CrossWon, self},
		{"human circle won", types.OpponentHuman, opponentWins, art.CircleWon, opp},
		{"human draw", types.OpponentHuman, drawn, art.Draw, MenuColors.Label},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := gameAfter(t, tc.opponent, tc.moves)
			banner, color := g.banner(testSettings)
			assert.Equal(t, tc.want, banner)
			assert.Equal(t, tc.wantColor, color)
		})
	}
}

func TestGameScreenMood(t *testing.T) {
	tests := []struct {
		name     string
		moves    []int
		want     art.Mood
		wantText string
	}{
		{"waiting", nil, art.Smiley, "waiting for turn.."},
		{"thinking", []int{0}, art.Thinking, "calculating move"},
		{"computer won", opponentWins, art.Happy, "Yay i won, you suck"},
		{"human won", selfWins, art.Angry, "I will remember that"},
		{"draw", drawn, art.Angry, "You are as bad as me"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := gameAfter(t, types.OpponentComputer, tc.moves)
			mood, text := g.mood()
			assert.Equal(t, tc.want, mood)
			assert.Equal(t, tc.wantText, text)
		})
	}
}

func TestGameScreenRenderIsPure(t *testing.T) {
	g := gameAfter(t, types.OpponentComputer, []int{4})
	g.BackgroundStep()
	board, turn, thinking, cursor := g.Game().Board(), g.Game().Turn(), g.Thinking(), g.Cursor()

	for range 3 {
		g.Render(newRecordingSurface(RecommendedWidth, RecommendedHeight), testSettings)
	}
	assert.Equal(t, board, g.Game().Board())
	assert.Equal(t, turn, g.Game().Turn())
	assert.Equal(t, thinking, g.Thinking())
	assert.Equal(t, cursor, g.Cursor())
}

func TestGameScreenRenderComputerGame(t *testing.T) {
	g := gameAfter(t, types.OpponentComputer, nil)
	s := newRecordingSurface(RecommendedWidth, RecommendedHeight)
	g.Render(s, testSettings)

	for _, title := range []string{"Game", "AI Status", "Controls"} {
		assert.True(t, s.hasBox(title), title)
	}
	banner, ok := s.findText(art.BannerText(art.YourTurn)[0])
	require.True(t, ok)
	assert.Equal(t, testSettings.SelfColor, banner.color)
	_, ok = s.findText("waiting for turn..")
	assert.True(t, ok)
	_, ok = s.findText("Enter - confirm selection")
	assert.True(t, ok)
	assert.Empty(t, s.gauges)

	var highlighted []recordedBox
	for _, b := range s.boxes {
		if b.title == "" && b.color == testSettings.SelfColor {
			highlighted = append(highlighted, b)
		}
	}
	require.Len(t, highlighted, 1)
	assert.Equal(t, Rect{W: gridWidth / 3, H: gridHeight / 3}, Rect{W: highlighted[0].r.W, H: highlighted[0].r.H})

	require.NoError(t, g.Game().AttemptMove(0))
	g.BackgroundStep()
	s = newRecordingSurface(RecommendedWidth, RecommendedHeight)
	g.Render(s, testSettings)

	require.Len(t, s.gauges, 1)
	assert.Equal(t, 10, s.gauges[0].percent)
	glyph, ok := s.findText(art.Glyph(engine.X)[1])
	require.True(t, ok)
	assert.Equal(t, testSettings.SelfColor, glyph.color)
	for _, b := range s.boxes {
		if b.title == "" {
			assert.Equal(t, MenuColors.Tile, b.color, "no tile highlight on the computer turn")
		}
	}
}

func TestGameScreenRenderHumanGame(t *testing.T) {
	g := gameAfter(t, types.OpponentHuman, []int{0})
	s := newRecordingSurface(RecommendedWidth, RecommendedHeight)
	g.Render(s, testSettings)

	_, ok := s.findText("OFFLINE")
	assert.True(t, ok)
	assert.Empty(t, s.gauges)

	highlighted := 0
	for _, b := range s.boxes {
		if b.title == "" && b.color == testSettings.OpponentColor {
			highlighted++
		}
	}
	assert.Equal(t, 1, highlighted)
}
