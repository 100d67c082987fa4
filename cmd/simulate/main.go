// cmd/simulate/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"lane-defense/internal/battle"
	"lane-defense/internal/config"
	"lane-defense/internal/defs"
	"lane-defense/internal/logger"
	"lane-defense/internal/script"
	"lane-defense/pkg/render"
)

func main() {
	configPath := flag.String("config", "", "settings YAML file")
	scriptPath := flag.String("script", "", "input script YAML file (required)")
	ticks := flag.Uint64("ticks", 0, "override the script's tick count")
	logLevel := flag.String("log-level", "warn", "debug, info, warn or error")
	frame := flag.Bool("frame", false, "print the final frame as text")
	flag.Parse()

	if err := run(*configPath, *scriptPath, *ticks, *logLevel, *frame); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, scriptPath string, ticks uint64, logLevel string, frame bool) error {
	if scriptPath == "" {
		return errors.New("-script is required")
	}
	if err := logger.Init(logLevel); err != nil {
		return errors.Wrap(err, "failed to init logger")
	}
	defer logger.Sync()

	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return err
	}
	s, err := script.Load(scriptPath)
	if err != nil {
		return err
	}
	if ticks > 0 {
		s.Ticks = ticks
	}
	settings = s.Apply(settings)

	catalog, err := defs.Builtin()
	if settings.CatalogPath != "" {
		catalog, err = defs.Load(settings.CatalogPath)
	}
	if err != nil {
		return err
	}

	b := battle.New(catalog, settings, nil)
	sum := script.Run(b, s)
	logger.L().Info("simulation finished", zap.Uint64("ticks", sum.Ticks), zap.Uint64("hash", sum.Hash))

	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(sum); err != nil {
		return errors.Wrap(err, "failed to write summary")
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if frame {
		f := script.NewFrame()
		b.Draw(render.NewTerminalPresenter(f))
		fmt.Print(f.String())
	}
	return nil
}
