package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/utils"
)

var debugTextColor = color.RGBA{R: 255, G: 255, B: 0, A: 200}

// drawDebug 在右下角绘制调试信息
func (s *GameScene) drawDebug(screen *ebiten.Image) {
	if !s.showDebug {
		return
	}

	lines := s.debugLines()
	y := config.FieldHeight - float64(len(lines))*15 - 5
	for _, line := range lines {
		utils.DrawText(screen, line, s.renderer.fonts.Debug(), config.FieldWidth-260, y, debugTextColor)
		y += 15
	}
}

// debugLines 返回调试信息的文本行
func (s *GameScene) debugLines() []string {
	session := s.session
	timers := session.Effects()
	return []string{
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("state %s", session.State()),
		fmt.Sprintf("score %d / %d", session.Score(), session.Target()),
		fmt.Sprintf("speed %.2f", session.DifficultySpeed()),
		fmt.Sprintf("clouds %d  power-ups %d", len(session.Clouds()), len(session.PowerUps())),
		fmt.Sprintf("slow %d ghost %d inv %d rapid %d", timers.SlowMotion, timers.Ghost, timers.Inverted, timers.RapidFire),
	}
}
