package state

import (
	"go.uber.org/zap"

	"lane-defense/internal/audio"
	"lane-defense/internal/battle"
	"lane-defense/internal/config"
	"lane-defense/internal/defs"
	"lane-defense/internal/input"
	"lane-defense/internal/logger"
	"lane-defense/pkg/render"
)

// BattleScene - сцена боя: тики и ввод уходят прямо в battle.Battle
type BattleScene struct {
	battle *battle.Battle
	cues   *audio.Listener
}

// NewBattleScene creates a fresh battle. A nil sink means no sound.
func NewBattleScene(catalog *defs.Catalog, settings config.Settings, sink audio.Sink) *BattleScene {
	s := &BattleScene{battle: battle.New(catalog, settings, nil)}
	if sink != nil {
		s.cues = audio.NewListener(sink)
	}
	return s
}

// Battle returns the running battle.
func (s *BattleScene) Battle() *battle.Battle { return s.battle }

func (s *BattleScene) Enter() {
	if s.cues != nil {
		s.cues.Attach(s.battle.Events())
	}
	logger.L().Info("battle started", zap.String("battle", s.battle.ID().String()))
}

func (s *BattleScene) Exit() {
	if s.cues != nil {
		s.cues.Detach(s.battle.Events())
	}
}

func (s *BattleScene) Update() { s.battle.Update() }

func (s *BattleScene) HandleInput(ev input.Event) { s.battle.HandleInput(ev) }

func (s *BattleScene) Draw(p render.Presenter) { s.battle.Draw(p) }
