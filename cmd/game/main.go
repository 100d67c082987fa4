// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"lane-defense/internal/app"
	"lane-defense/internal/config"
	"lane-defense/internal/input/ebitenkb"
	"lane-defense/internal/logger"
	"lane-defense/pkg/render/ebitenrender"
)

// AppGame - реализация ebiten.Game: один Update ebiten = один тик симуляции
type AppGame struct {
	app       *app.App
	keyboard  *ebitenkb.Keyboard
	atlas     *ebitenrender.Atlas
	presenter *ebitenrender.EbitenPresenter
}

func (a *AppGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.atlas.Reload()
	}
	// ввод обрабатывается между тиками
	for _, ev := range a.keyboard.Poll() {
		a.app.Host.HandleInput(ev)
	}
	a.app.Host.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.presenter.Begin(screen)
	a.app.Host.Draw(a.presenter)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var opts app.Options
	flag.StringVar(&opts.ConfigPath, "config", "", "settings YAML file")
	flag.StringVar(&opts.LogLevel, "log-level", "", "debug, info, warn or error")
	flag.Int64Var(&opts.Seed, "seed", 0, "wave PRNG seed (0 = from settings or time)")
	flag.BoolVar(&opts.Mute, "mute", false, "disable sound")
	flag.BoolVar(&opts.SkipTitle, "skip-title", false, "start directly in the battle")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address")
	flag.Parse()

	a, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()
	log := logger.L()

	if *pprofAddr != "" {
		go func() {
			log.Warn("pprof stopped", zap.Error(http.ListenAndServe(*pprofAddr, nil)))
		}()
	}

	atlas := ebitenrender.NewAtlas(a.Settings.SpriteDir)
	game := &AppGame{
		app:       a,
		keyboard:  ebitenkb.NewKeyboard(ebitenkb.DefaultBindings),
		atlas:     atlas,
		presenter: ebitenrender.NewEbitenPresenter(atlas),
	}

	ebiten.SetTPS(a.Settings.TicksPerSecond)
	ebiten.SetWindowSize(config.ScreenWidth*a.Settings.WindowScale, config.ScreenHeight*a.Settings.WindowScale)
	ebiten.SetWindowTitle("Rat Defense")
	if err := ebiten.RunGame(game); err != nil {
		log.Error("game loop failed", zap.Error(err))
		a.Close()
		os.Exit(1)
	}
}
