package state

import (
	"lane-defense/internal/defs"
	"lane-defense/internal/input"
	"lane-defense/pkg/render"
)

// TitleScene waits for Confirm and then hands over to the scene built by next.
// The transition is one-way.
type TitleScene struct {
	host *Host
	next func() Scene
}

func NewTitleScene(host *Host, next func() Scene) *TitleScene {
	return &TitleScene{host: host, next: next}
}

func (t *TitleScene) Enter()  {}
func (t *TitleScene) Update() {}
func (t *TitleScene) Exit()   {}

func (t *TitleScene) HandleInput(ev input.Event) {
	if ev == input.Confirm {
		t.host.ChangeScene(t.next())
	}
}

func (t *TitleScene) Draw(p render.Presenter) {
	p.DrawSprite(string(defs.SpriteTitle), 0, 0)
}
