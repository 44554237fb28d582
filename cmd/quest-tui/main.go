// Command quest-tui plays Jurassic Quest in a terminal against a local
// session, no server involved.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/nancyzera/jurassic-game/internal/domain"
	"github.com/nancyzera/jurassic-game/internal/engine"
	"github.com/nancyzera/jurassic-game/internal/systems"
	"github.com/nancyzera/jurassic-game/pkg/api"
	"github.com/nancyzera/jurassic-game/pkg/levels"
	"github.com/nancyzera/jurassic-game/pkg/logger"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	turnStep      = 0.15                  // radians per q/e press
	maxLogs       = 4
)

type Game struct {
	screen  tcell.Screen
	session *engine.Session
	keys    *KeyState
	sound   *Sound
	seed    int64

	yaw      float64
	layout   *levels.Layout
	layoutID int
	logs     []api.LogEntry
}

func main() {
	cfg, err := engine.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Session seed")
	flag.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Level catalog YAML")
	mute := flag.Bool("mute", false, "Disable sound")
	level := flag.String("level", "", "Start straight into a level: id, name or environment (fuzzy)")
	flag.Parse()

	// The terminal belongs to tcell, so logs go to a file when asked for.
	if os.Getenv("LOG_LEVEL") != "" {
		logger.Init()
		f, err := os.OpenFile("quest-tui.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.Log.SetOutput(f)
	}

	catalog := levels.Default()
	if cfg.CatalogPath != "" {
		if catalog, err = levels.Load(cfg.CatalogPath); err != nil {
			fmt.Fprintf(os.Stderr, "catalog: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	g := &Game{
		screen: screen,
		session: engine.NewSession("local", catalog, engine.SessionOptions{
			Seed:         cfg.Seed,
			PredatorStep: cfg.PredatorStep,
		}),
		keys: NewKeyState(),
		seed: cfg.Seed,
	}
	if !*mute {
		g.sound = NewSound()
	}
	defer g.cleanup()

	if *level != "" {
		tpl, ok := catalog.Lookup(*level)
		if !ok {
			g.report(fmt.Errorf("no level matches %q", *level))
		} else {
			g.report(g.session.StartLevel(tpl.ID))
		}
	}

	g.run()
}

func (g *Game) cleanup() {
	g.sound.Close()
	g.screen.Fini()
}

func (g *Game) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	start := time.Now()
	last := start
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			for _, code := range g.keys.Expired(now) {
				g.session.KeyUp(code)
			}

			delta := now.Sub(last).Seconds()
			if delta > 0.1 {
				delta = 0.1
			}
			last = now

			events := g.session.Tick(now.Sub(start).Seconds(), delta)
			g.sound.Play(events)
			g.pushLogs(g.session.DrainLogs())
			g.draw()
		}
	}
}

func (g *Game) pushLogs(entries []api.LogEntry) {
	g.logs = append(g.logs, entries...)
	if len(g.logs) > maxLogs {
		g.logs = g.logs[len(g.logs)-maxLogs:]
	}
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyTab {
			g.session.ToggleInventory()
			return true
		}
		if ev.Key() == tcell.KeyEnter && !g.session.Mode().IsPlaying() {
			g.session.ShowLevelSelect()
			return true
		}
		if code, ok := arrowCodes[ev.Key()]; ok {
			for _, c := range g.keys.PressCode(code, ev.When()) {
				g.session.KeyDown(c)
			}
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		g.handleRune(ev.Rune(), ev.When())

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) handleRune(r rune, when time.Time) {
	switch r {
	case 'q', 'Q':
		g.turn(turnStep)
		return
	case 'e', 'E':
		g.turn(-turnStep)
		return
	case 'r':
		g.report(g.session.RestartLevel())
		return
	case 'm':
		g.session.BackToMenu()
		return
	}

	if r >= '1' && r <= '9' && !g.session.Mode().IsPlaying() {
		g.report(g.session.StartLevel(int(r - '0')))
		return
	}

	for _, code := range g.keys.Press(r, when) {
		g.session.KeyDown(code)
	}
}

func (g *Game) turn(by float64) {
	g.yaw += by
	g.session.Look(systems.CameraFromYaw(g.yaw).Forward)
}

func (g *Game) report(err error) {
	if err != nil {
		g.pushLogs([]api.LogEntry{{Text: err.Error(), Type: "ERROR", Timestamp: time.Now().UnixMilli()}})
	}
}

// levelLayout returns the scenery of the level being played, built once
// per level with the same seed the server uses for /levels/{id}/layout.
func (g *Game) levelLayout(lvl *domain.Level) *levels.Layout {
	if lvl == nil {
		return nil
	}
	if g.layout == nil || g.layoutID != lvl.ID {
		l := levels.Decorate(lvl.Environment, rand.New(rand.NewSource(g.seed^int64(lvl.ID))))
		g.layout, g.layoutID = &l, lvl.ID
	}
	return g.layout
}
