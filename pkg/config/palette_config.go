package config

import (
	"image/color"

	"github.com/decker502/cosmiccalc/pkg/types"
)

// Palette Configuration (配色)
// ebiten 和终端前端共用同一套颜色
var (
	ColorBackground = color.RGBA{R: 10, G: 10, B: 35, A: 255}
	ColorMoon       = color.RGBA{R: 240, G: 240, B: 220, A: 255}
	ColorMoonCrater = color.RGBA{R: 200, G: 200, B: 180, A: 255}
	ColorShip       = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	ColorShipGhost  = color.RGBA{R: 100, G: 100, B: 130, A: 255}
	ColorShipEdge   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	ColorFire       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	ColorText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorStar       = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	ColorCloud          = color.RGBA{R: 230, G: 230, B: 250, A: 255}
	ColorCloudGhost     = color.RGBA{R: 100, G: 100, B: 120, A: 255}
	ColorCloudText      = color.RGBA{R: 50, G: 100, B: 150, A: 255}
	ColorCloudTextGhost = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	ColorCloudShadow    = color.RGBA{R: 50, G: 50, B: 80, A: 255}

	ColorPowerUpSlow   = color.RGBA{R: 100, G: 200, B: 255, A: 255}
	ColorPowerUpFix    = color.RGBA{R: 50, G: 255, B: 100, A: 255}
	ColorPowerUpGhost  = color.RGBA{R: 200, G: 100, B: 255, A: 255}
	ColorPowerUpRapid  = color.RGBA{R: 255, G: 50, B: 50, A: 255}
	ColorInvertWarning = color.RGBA{R: 255, G: 100, B: 255, A: 255}
	ColorPenalty       = color.RGBA{R: 255, G: 50, B: 50, A: 255}

	ColorTargetText  = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	ColorDust        = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	ColorFlag        = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	ColorFlagPole    = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	ColorVictory     = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	ColorSubtitle    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	ColorGameOver    = color.RGBA{R: 255, G: 50, B: 50, A: 255}
	ColorOverlay     = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	ColorFigureOuter = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// 各前端共用的界面文字
const (
	TextSlowMotion   = "SLOW MOTION"
	TextGhostMode    = "GHOST MODE"
	TextControlsFlip = "CONTROLS FLIPPED!"
	TextRapidFire    = "RAPID FIRE!!!"
	TextPenalty      = "DECIMAL PENALTY! SPEED UP!"
	TextYouWon       = "YOU WON!"
	TextMission      = "MISSION ACCOMPLISHED"
	TextPlayAgain    = "Press SPACE to Play Again"
	TextGameOver     = "GAME OVER"
	WindowTitle      = "Cosmic Calculator: Mission to Moon"
	TextTouchUp      = "Touch here to climb"
	TextTouchDown    = "Touch here to dive"
)

// PowerUpColor 返回道具的基础颜色
// 反转道具没有固定颜色（随色相变化），这里返回白色
func PowerUpColor(powerUpType types.PowerUpType) color.RGBA {
	switch powerUpType {
	case types.PowerUpSlowMotion:
		return ColorPowerUpSlow
	case types.PowerUpRoundNum:
		return ColorPowerUpFix
	case types.PowerUpGhost:
		return ColorPowerUpGhost
	case types.PowerUpRapidFire:
		return ColorPowerUpRapid
	default:
		return ColorText
	}
}

// EffectStatus 返回生效中效果的 HUD 文字和颜色
func EffectStatus(powerUpType types.PowerUpType) (string, color.RGBA) {
	switch powerUpType {
	case types.PowerUpSlowMotion:
		return TextSlowMotion, ColorPowerUpSlow
	case types.PowerUpGhost:
		return TextGhostMode, ColorPowerUpGhost
	case types.PowerUpInvertControls:
		return TextControlsFlip, ColorInvertWarning
	case types.PowerUpRapidFire:
		return TextRapidFire, ColorPowerUpRapid
	default:
		return "", ColorText
	}
}
