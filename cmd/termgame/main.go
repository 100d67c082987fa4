// cmd/termgame/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lane-defense/internal/app"
	"lane-defense/internal/input"
	"lane-defense/internal/input/termkb"
	"lane-defense/internal/logger"
	"lane-defense/pkg/render"
)

var errQuit = errors.New("quit requested")

func main() {
	opts := app.Options{LogPath: "termgame.log"}
	flag.StringVar(&opts.ConfigPath, "config", "", "settings YAML file")
	flag.StringVar(&opts.LogLevel, "log-level", "", "debug, info, warn or error")
	flag.StringVar(&opts.LogPath, "log", opts.LogPath, "log file (the terminal is busy drawing)")
	flag.Int64Var(&opts.Seed, "seed", 0, "wave PRNG seed (0 = from settings or time)")
	flag.BoolVar(&opts.Mute, "mute", false, "disable sound")
	flag.BoolVar(&opts.SkipTitle, "skip-title", false, "start directly in the battle")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "termgame: %v\n", err)
		os.Exit(1)
	}
}

func run(opts app.Options) error {
	a, err := app.New(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = loop(ctx, a, screen)
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loop runs the key poller and the simulation as one group. The simulation goroutine is
// the only one touching the battle; the poller just forwards events.
func loop(ctx context.Context, a *app.App, screen tcell.Screen) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan input.Event, 64)
	log := logger.L().Named("termgame")

	g.Go(func() error {
		<-ctx.Done()
		// Fini разблокирует PollEvent
		screen.Fini()
		return nil
	})

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || (e.Key() == tcell.KeyRune && e.Rune() == 'q') {
					return errQuit
				}
				in, ok := termkb.FromTerminal(e.Key(), e.Rune())
				if !ok {
					continue
				}
				select {
				case events <- in:
				case <-ctx.Done():
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	})

	g.Go(func() error {
		ticker := time.NewTicker(time.Second / time.Duration(a.Settings.TicksPerSecond))
		defer ticker.Stop()
		presenter := render.NewTerminalPresenter(screen)
		ticks := 0

		for {
			select {
			case <-ctx.Done():
				log.Info("simulation stopped", zap.Int("ticks", ticks))
				return ctx.Err()
			case in := <-events:
				a.Host.HandleInput(in)
			case <-ticker.C:
				a.Host.Update()
				ticks++
				screen.Clear()
				a.Host.Draw(presenter)
				screen.Show()
			}
		}
	})

	return g.Wait()
}
