package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/audio"
	"github.com/diegok/solopong/internal/config"
	"github.com/diegok/solopong/internal/game"
	"github.com/diegok/solopong/internal/ui"
)

// App is the main application controller. It owns the game and is the only
// goroutine that touches it.
type App struct {
	cfg      *config.Config
	log      *log.Logger
	logFile  *os.File
	screen   *ui.Screen
	renderer *ui.Renderer
	player   *audio.Player
	game     *game.Game
	hold     *ui.KeyHold
	last     game.Snapshot

	quit     chan struct{}
	stopOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		log:  log.New(io.Discard, "", 0),
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes logging, audio and the screen, then runs the frame loop
// until a quit key or signal arrives.
func (a *App) Run() error {
	if err := a.openLog(); err != nil {
		return err
	}
	a.log.Printf("starting: points=%d fps=%d mute=%v seed=%d clamp-opponent=%v",
		a.cfg.PointsToWin, a.cfg.FPS, a.cfg.Mute, a.cfg.Seed, a.cfg.ClampOpponent)

	// Game works without sound
	a.player = audio.NewPlayer()
	if !a.cfg.Mute {
		if err := a.player.Init(); err != nil {
			a.log.Printf("audio disabled: %v", err)
		}
	}

	screen, err := ui.InitScreen()
	if err != nil {
		a.cleanup()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.setup(screen, a.player)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-a.sigChan:
			a.log.Printf("received %v", sig)
			a.stop()
		case <-a.quit:
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	runErr := a.mainLoop(a.pollEvents(), ticker.C)

	a.cleanup()
	return runErr
}

// setup wires the game to a screen and a cue sink
func (a *App) setup(screen *ui.Screen, cues game.CuePlayer) {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	// Hold time is tuned for 60Hz; keep it roughly constant in wall time
	holdTicks := ui.DefaultHoldTicks * a.cfg.FPS / config.DefaultFPS
	if holdTicks < 1 {
		holdTicks = 1
	}
	a.hold = ui.NewKeyHold(holdTicks)

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.game = game.New(a.rules(), rand.New(rand.NewSource(seed)), cues)
	a.last = a.game.Snapshot()
}

func (a *App) rules() game.Rules {
	rules := game.DefaultRules()
	rules.WinningScore = a.cfg.PointsToWin
	rules.ClampOpponent = a.cfg.ClampOpponent
	return rules
}

// pollEvents pumps screen events into a channel until quit
func (a *App) pollEvents() <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()
	return events
}

// mainLoop is the frame scheduler. Input is queued as it arrives and the
// game advances one tick per frame. It returns when quit is requested.
func (a *App) mainLoop(events <-chan tcell.Event, frames <-chan time.Time) error {
	a.renderer.Render(a.last)

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.stop()
				return nil
			}

		case <-frames:
			a.frame()
		}
	}
}

// frame runs one tick and draws the result
func (a *App) frame() {
	for _, ev := range a.hold.Tick() {
		a.game.Push(ev)
	}
	a.game.Tick()

	snap := a.game.Snapshot()
	a.logChanges(a.last, snap)
	a.last = snap

	a.renderer.Render(snap)
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		if k, ok := ui.KeyToControl(ev.Key(), ev.Rune()); ok {
			for _, e := range a.hold.Press(k) {
				a.game.Push(e)
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Render(a.last)
	}

	return false
}

// logChanges records phase transitions and points
func (a *App) logChanges(prev, cur game.Snapshot) {
	if cur.PlayerScore != prev.PlayerScore || cur.ComputerScore != prev.ComputerScore {
		a.log.Printf("tick %d: point scored, computer %d player %d", cur.Tick, cur.ComputerScore, cur.PlayerScore)
	}
	if cur.Phase != prev.Phase {
		a.log.Printf("tick %d: phase %s -> %s", cur.Tick, prev.Phase, cur.Phase)
	}
}

func (a *App) stop() {
	a.stopOnce.Do(func() { close(a.quit) })
}

func (a *App) openLog() error {
	if a.cfg.LogFile == "" {
		return nil
	}
	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	a.logFile = f
	a.log = log.New(f, "solopong ", log.LstdFlags)
	return nil
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.stop()

	if a.player != nil {
		a.player.Close()
	}

	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
	}

	// Stop signal handling
	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}

	a.log.Printf("stopped after %d ticks", a.last.Tick)
	if a.logFile != nil {
		a.logFile.Close()
	}
}
