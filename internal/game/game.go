// Package game ties the boards, input, sounds and screens together. Game is
// the single context object the ebiten loop drives.
package game

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"slidepuzzle/internal/assets"
	"slidepuzzle/internal/board"
	"slidepuzzle/internal/collision"
	"slidepuzzle/internal/config"
	"slidepuzzle/internal/input"
	"slidepuzzle/internal/mathutil"
	"slidepuzzle/internal/monitoring"
	"slidepuzzle/internal/sfx"

	"github.com/charmbracelet/log"
)

// UI hit box ids.
const (
	buttonPlay    = "play"
	buttonCredits = "credits"
	buttonBack    = "back"
)

func frameID(c board.Color) string {
	return "frame:" + string(c)
}

var boardTextures = map[board.Color]string{
	board.Red:   assets.RedBoard,
	board.Green: assets.GreenBoard,
	board.Blue:  assets.BlueBoard,
}

// Options are the collaborators a Game is built from. Only Atlas is
// required.
type Options struct {
	Config  *config.Config
	Atlas   *assets.Atlas
	Sounds  *sfx.Bank
	Logger  *log.Logger
	Rand    *rand.Rand
	Monitor *monitoring.FrameMonitor
}

// Game is the puzzle's state across screens.
type Game struct {
	config  *config.Config
	input   *input.State
	boards  *board.Set
	atlas   *assets.Atlas
	sounds  *sfx.Bank
	logger  *log.Logger
	rng     *rand.Rand
	monitor *monitoring.FrameMonitor
	ui      *collision.System

	state GameState
	drawn GameState // screen processed by the last Update

	// Peek preview
	peeking      bool
	peekAlpha    float64
	peekProgress float64

	showDebug bool
}

// NewGame builds a game on the start screen. Boards are created on the
// first switch to the run screen.
func NewGame(opts Options) (*Game, error) {
	if opts.Atlas == nil {
		return nil, errors.New("game: no texture atlas")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = sfx.NewSilentBank(logger)
	}
	monitor := opts.Monitor
	if monitor == nil {
		monitor = monitoring.NewFrameMonitor()
	}

	layout := board.Layout{
		Size:       cfg.Board.Size,
		Resolution: float64(cfg.Board.Resolution),
		Origin:     cfg.GetBoardOrigin(),
		Step:       cfg.Board.AnimationStep,
		Easing:     cfg.GetBoardEasing(),
	}

	g := &Game{
		config:  cfg,
		input:   input.NewState(input.FromConfig(cfg.Input.Actions)),
		boards:  board.NewSet(layout),
		atlas:   opts.Atlas,
		sounds:  sounds,
		logger:  logger,
		rng:     rng,
		monitor: monitor,
		ui:      collision.NewSystem(),
		state:   StateStart,
		drawn:   StateStart,
	}
	g.registerButtons()
	return g, nil
}

func (g *Game) registerButtons() {
	rect := func(rc config.RectConfig) *collision.Rectangle {
		return collision.NewRectangle(rc.X, rc.Y, rc.Width, rc.Height)
	}
	g.ui.RegisterEntity(buttonPlay, rect(g.config.UI.Play))
	g.ui.RegisterEntity(buttonCredits, rect(g.config.UI.Credits))
	g.ui.RegisterEntity(buttonBack, rect(g.config.UI.Back))
	for _, c := range g.boards.Colors() {
		if rc, ok := g.config.UI.Frames[string(c)]; ok {
			g.ui.RegisterEntity(frameID(c), rect(rc))
		}
	}
}

// Input returns the state the raw event source writes into.
func (g *Game) Input() *input.State {
	return g.input
}

// State returns the current screen.
func (g *Game) State() GameState {
	return g.state
}

// Boards returns the board set. Boards exist once the run screen has been
// entered.
func (g *Game) Boards() *board.Set {
	return g.boards
}

// Config returns the game configuration.
func (g *Game) Config() *config.Config {
	return g.config
}

// Monitor returns the frame monitor.
func (g *Game) Monitor() *monitoring.FrameMonitor {
	return g.monitor
}

// ShowDebug reports whether the debug overlay is toggled on.
func (g *Game) ShowDebug() bool {
	return g.showDebug
}

// Update runs one tick. Raw events for this tick must already be in Input.
// A state change made here is seen by the next tick's dispatch, and Draw
// shows the screen this tick processed.
func (g *Game) Update() error {
	g.input.Refresh()
	g.drawn = g.state

	switch g.state {
	case StateStart:
		g.updateStart()
	case StateCredits:
		g.updateCredits()
	case StateRun:
		g.updateRun()
	}

	if g.input.IsReleased(input.ActionStart) && g.state == StateStart {
		g.startRun()
	}
	if g.input.IsJustPressed(input.ActionDebug) {
		g.showDebug = !g.showDebug
	}
	return nil
}

func (g *Game) setState(s GameState) {
	if s == g.state {
		return
	}
	g.logger.Debug("state change", "from", g.state, "to", s)
	g.state = s
}

// startRun switches to the run screen, creating and shuffling the boards
// the first time.
func (g *Game) startRun() {
	g.setState(StateRun)
	if g.boards.Initialized() {
		return
	}
	g.boards.Init(g.rng, g.config.Board.ShuffleMoves, &soundListener{game: g})
	g.logger.Info("boards shuffled", "moves", g.config.Board.ShuffleMoves, "size", g.config.Board.Size)
}

func (g *Game) pointer() collision.Point {
	return collision.Point(g.input.Pointer())
}

func (g *Game) hovered(id string) bool {
	return g.ui.Hit(id, g.pointer())
}

func (g *Game) clicked() bool {
	return g.input.IsJustPressed(input.ActionLeftClick)
}

func (g *Game) peekEasing() mathutil.Easing {
	return g.config.GetPeekEasing()
}
