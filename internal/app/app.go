// internal/app/app.go
// Package app собирает настройки, логгер, каталог, звук и хост сцен для исполняемых файлов.
package app

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"lane-defense/internal/audio"
	"lane-defense/internal/config"
	"lane-defense/internal/defs"
	"lane-defense/internal/logger"
	"lane-defense/internal/state"
)

// Options are the command-line overrides shared by the hosts.
type Options struct {
	ConfigPath string
	LogLevel   string // пусто - из настроек
	LogPath    string // пусто - stderr
	Seed       int64  // 0 - из настроек
	Mute       bool
	SkipTitle  bool
}

// App holds everything a host needs to run one session.
type App struct {
	Settings config.Settings
	Catalog  *defs.Catalog
	Host     *state.Host
	Player   *audio.Player // nil when sound is off or unavailable

	log *zap.Logger
}

// New loads settings and the catalog, initializes logging and audio, and puts the
// title scene (or the battle, with SkipTitle) on the host.
func New(opts Options) (*App, error) {
	settings, err := config.LoadSettings(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		settings.LogLevel = opts.LogLevel
	}
	if opts.Seed != 0 {
		settings.Seed = opts.Seed
	}
	if opts.Mute {
		settings.Volume = 0
	}

	var outputs []string
	if opts.LogPath != "" {
		outputs = append(outputs, opts.LogPath)
	}
	if err := logger.Init(settings.LogLevel, outputs...); err != nil {
		return nil, errors.Wrap(err, "failed to init logger")
	}
	log := logger.L().Named("app")

	catalog, err := loadCatalog(settings.CatalogPath)
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded",
		zap.Int("towers", len(catalog.Towers)),
		zap.Int("enemies", len(catalog.Enemies)),
		zap.Int("waves", len(catalog.Waves)))

	a := &App{Settings: settings, Catalog: catalog, Host: state.NewHost(), log: log}
	if settings.Volume > 0 {
		p := audio.NewPlayer(settings.Volume)
		if err := p.Initialize(); err != nil {
			// без звука играть можно
			log.Warn("audio unavailable", zap.Error(err))
		} else {
			a.Player = p
		}
	}

	if opts.SkipTitle {
		a.Host.ChangeScene(a.NewBattle())
	} else {
		a.Host.ChangeScene(state.NewTitleScene(a.Host, func() state.Scene { return a.NewBattle() }))
	}
	return a, nil
}

func loadCatalog(path string) (*defs.Catalog, error) {
	if path == "" {
		return defs.Builtin()
	}
	return defs.Load(path)
}

// NewBattle builds a battle scene wired to the app's audio player.
func (a *App) NewBattle() *state.BattleScene {
	var sink audio.Sink
	if a.Player != nil {
		sink = a.Player
	}
	return state.NewBattleScene(a.Catalog, a.Settings, sink)
}

// Close releases audio and flushes the log.
func (a *App) Close() {
	if a.Player != nil {
		a.Player.Cleanup()
	}
	a.log.Info("session closed")
	logger.Sync()
}
