// Package window runs a game in an Ebitengine window. The game is stepped
// once per Ebitengine Update at the configured tick rate and its screen
// buffer is drawn with the debug font.
package window

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/platform/session"
	"github.com/vovakirdan/toybox/internal/platform/snapshot"
	"github.com/vovakirdan/toybox/internal/registry"
	"github.com/vovakirdan/toybox/internal/storage"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// KeySource reports keyboard state for one Update.
type KeySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// held keys repeat every tick while down; tapped keys fire once per press.
var (
	held = map[ebiten.Key]core.Action{
		ebiten.KeyArrowUp:    core.ActionUp,
		ebiten.KeyK:          core.ActionUp,
		ebiten.KeyW:          core.ActionUp,
		ebiten.KeyArrowDown:  core.ActionDown,
		ebiten.KeyJ:          core.ActionDown,
		ebiten.KeyS:          core.ActionDown,
		ebiten.KeyArrowLeft:  core.ActionLeft,
		ebiten.KeyH:          core.ActionLeft,
		ebiten.KeyA:          core.ActionLeft,
		ebiten.KeyArrowRight: core.ActionRight,
		ebiten.KeyL:          core.ActionRight,
		ebiten.KeyD:          core.ActionRight,
	}
	tapped = map[ebiten.Key]core.Action{
		ebiten.KeySpace:  core.ActionFire,
		ebiten.KeyP:      core.ActionPause,
		ebiten.KeyR:      core.ActionRestart,
		ebiten.KeyEscape: core.ActionRestart,
		ebiten.KeyEnter:  core.ActionConfirm,
	}
)

// Poll builds the input frame for one tick.
func Poll(keys KeySource) core.InputFrame {
	frame := core.NewInputFrame()
	for k, a := range held {
		if keys.Pressed(k) {
			frame.Set(a)
		}
	}
	for k, a := range tapped {
		if keys.JustPressed(k) {
			frame.Set(a)
		}
	}
	if keys.Pressed(ebiten.KeyQ) {
		frame.Set(core.ActionQuit)
	}
	return frame
}

// Adapter implements ebiten.Game for one registry game.
type Adapter struct {
	session *session.Session
	screen  *core.Screen
	keys    KeySource
	logger  *log.Logger
}

// NewAdapter creates an adapter and resets the game.
func NewAdapter(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Adapter {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "toybox-window"})
	}
	a := &Adapter{
		session: session.New(game, store),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    ebitenKeys{},
		logger:  logger,
	}
	a.session.Reset(cfg)
	return a
}

// Update polls input and steps the game once.
func (a *Adapter) Update() error {
	in := Poll(a.keys)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	wasOver := a.session.State().GameOver
	state := a.session.Step(in)
	if state.GameOver && !wasOver {
		a.logger.Info("run finished", "game", a.session.Game().ID(),
			"score", state.Score, "won", state.Won, "ticks", a.session.Ticks())
	}
	return nil
}

// Draw renders the game rows with the debug font.
func (a *Adapter) Draw(dst *ebiten.Image) {
	dst.Fill(snapshot.Background)
	a.session.Render(a.screen)
	for y := range a.screen.Height() {
		ebitenutil.DebugPrintAt(dst, a.screen.Row(y), 0, y*glyphH)
	}
}

// Layout keeps one logical pixel grid sized to the screen buffer.
func (a *Adapter) Layout(int, int) (int, int) {
	return a.screen.Width() * glyphW, a.screen.Height() * glyphH
}

// Run opens a window and blocks until it is closed or Q is pressed.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	a := NewAdapter(game, store, cfg, logger)

	ebiten.SetTPS(max(cfg.TickRate, 1))
	ebiten.SetWindowTitle("toybox: " + game.Title())
	ebiten.SetWindowSize(cfg.ScreenW*glyphW*2, cfg.ScreenH*glyphH*2)

	a.logger.Info("window started", "game", game.ID(), "tps", cfg.TickRate)
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
