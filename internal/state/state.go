// internal/state/state.go
package state

import (
	"go.uber.org/zap"

	"lane-defense/internal/input"
	"lane-defense/internal/logger"
	"lane-defense/pkg/render"
)

// Scene - интерфейс для всех сцен верхнего уровня
type Scene interface {
	Enter()
	Update()
	HandleInput(ev input.Event)
	Draw(p render.Presenter)
	Exit()
}

// Host - владеет активной сценой и пересылает ей тики и ввод
type Host struct {
	current Scene
	log     *zap.Logger
}

// NewHost создаёт хост без начальной сцены
func NewHost() *Host {
	return &Host{log: logger.L().Named("scene")}
}

// ChangeScene выходит из текущей сцены и входит в новую
func (h *Host) ChangeScene(next Scene) {
	if h.current != nil {
		h.current.Exit()
	}
	h.current = next
	if h.current != nil {
		h.log.Debug("scene changed", zap.String("scene", sceneName(next)))
		h.current.Enter()
	}
}

// Current returns the active scene, or nil.
func (h *Host) Current() Scene { return h.current }

// Update продвигает активную сцену на один тик
func (h *Host) Update() {
	if h.current != nil {
		h.current.Update()
	}
}

// HandleInput передаёт событие ввода активной сцене. Вызывается между тиками.
func (h *Host) HandleInput(ev input.Event) {
	if h.current != nil {
		h.current.HandleInput(ev)
	}
}

// Draw отрисовывает активную сцену
func (h *Host) Draw(p render.Presenter) {
	if h.current != nil {
		h.current.Draw(p)
	}
}

func sceneName(s Scene) string {
	switch s.(type) {
	case *TitleScene:
		return "title"
	case *BattleScene:
		return "battle"
	}
	return "unknown"
}
