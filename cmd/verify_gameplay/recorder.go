package main

import (
	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/game"
	"github.com/decker502/cosmiccalc/pkg/types"
)

// landingRecorder 只记录着陆信息的 game.Renderer
type landingRecorder struct {
	reached bool
}

var _ game.Renderer = (*landingRecorder)(nil)

func (p *landingRecorder) RenderStar(x, y, size float64) {}

func (p *landingRecorder) RenderCloud(rect components.RectComponent, op types.Operation, operand int, ghostActive bool) {
}

func (p *landingRecorder) RenderPowerUp(rect components.RectComponent, powerUpType types.PowerUpType, angle, hue float64) {
}

func (p *landingRecorder) RenderShip(rect components.RectComponent, score int, isGhost bool, scale float64) {
}

func (p *landingRecorder) RenderHUD(hud game.HUDInfo) {}

func (p *landingRecorder) RenderLandingScene(landing game.LandingInfo) {
	p.reached = landing.ReachedFlag
}

func (p *landingRecorder) RenderGameOver() {}
