package scenes

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/game"
	"github.com/decker502/cosmiccalc/pkg/types"
	"github.com/decker502/cosmiccalc/pkg/utils"
)

// cloudPuff 云朵中的一个圆（相对云朵左上角）
type cloudPuff struct {
	dx, dy, r float64
}

// cloudPuffs 云朵轮廓：8 个圆叠在 180x120 的矩形内
var cloudPuffs = []cloudPuff{
	{30, 60, 38}, {70, 35, 45}, {115, 40, 42}, {150, 60, 35},
	{55, 85, 40}, {100, 88, 44}, {140, 85, 32}, {90, 60, 48},
}

// EbitenRenderer 使用 ebiten 绘制游戏画面
// 每帧先调用 Begin 设置目标画布，再交给 Session.Draw
type EbitenRenderer struct {
	screen *ebiten.Image
	fonts  *FontManager

	// fx 只用于尾焰、扬尘等装饰性随机，不影响游戏逻辑
	fx *rand.Rand
}

// NewEbitenRenderer 创建 ebiten 渲染后端
func NewEbitenRenderer(fonts *FontManager, fx *rand.Rand) *EbitenRenderer {
	return &EbitenRenderer{
		fonts: fonts,
		fx:    fx,
	}
}

// Begin 设置本帧的画布并填充背景色
func (r *EbitenRenderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	screen.Fill(config.ColorBackground)
}

// RenderStar 绘制一颗星星
func (r *EbitenRenderer) RenderStar(x, y, size float64) {
	vector.DrawFilledCircle(r.screen, float32(math.Trunc(x)), float32(math.Trunc(y)), float32(size), config.ColorStar, false)
}

// RenderCloud 绘制数学云朵（穿云模式下变暗）
func (r *EbitenRenderer) RenderCloud(rect components.RectComponent, op types.Operation, operand int, ghostActive bool) {
	body := config.ColorCloud
	label := config.ColorCloudText
	if ghostActive {
		body = config.ColorCloudGhost
		label = config.ColorCloudTextGhost
	}

	for _, p := range cloudPuffs {
		vector.DrawFilledCircle(r.screen, float32(rect.X+p.dx), float32(rect.Y+p.dy), float32(p.r), body, true)
	}

	textStr := fmt.Sprintf("%s %d", op.Symbol(), operand)
	face := r.fonts.Cloud()
	utils.DrawCenteredText(r.screen, textStr, face, rect.CenterX()+2, rect.CenterY()+2, config.ColorCloudShadow)
	utils.DrawCenteredText(r.screen, textStr, face, rect.CenterX(), rect.CenterY(), label)
}

// RenderPowerUp 绘制旋转的星形道具
// 反转道具的颜色随色相循环变化
func (r *EbitenRenderer) RenderPowerUp(rect components.RectComponent, powerUpType types.PowerUpType, angle, hue float64) {
	var fill color.Color = config.PowerUpColor(powerUpType)
	if powerUpType == types.PowerUpInvertControls {
		fill = colorful.Hsv(hue, 1, 1)
	}

	points := utils.StarPoints(rect.CenterX(), rect.CenterY(), rect.Width/2, rect.Width/4, angle)
	utils.FillPolygon(r.screen, points, fill)
	utils.StrokePolygon(r.screen, points, 2, config.ColorText)
}

// RenderShip 绘制飞船
// scale < 2 时在船身上显示分数
func (r *EbitenRenderer) RenderShip(rect components.RectComponent, score int, isGhost bool, scale float64) {
	r.drawShip(rect.X, rect.Y, rect.Width*scale, rect.Height*scale, score, isGhost, scale)
}

func (r *EbitenRenderer) drawShip(lx, ly, w, h float64, score int, isGhost bool, scale float64) {
	cx, cy := lx+w/2, ly+h/2

	hull := config.ColorShip
	if isGhost {
		hull = config.ColorShipGhost
		vector.StrokeCircle(r.screen, float32(cx), float32(cy), float32(w), 2, config.ColorPowerUpGhost, true)
	}

	// 尾焰闪烁
	if r.fx.Float64() > 0.2 {
		flameLen := float64(20+r.fx.Intn(31)) * scale
		flame := []utils.Point{
			{X: lx + 10*scale, Y: cy - 10*scale},
			{X: lx - flameLen, Y: cy},
			{X: lx + 10*scale, Y: cy + 10*scale},
		}
		utils.FillPolygon(r.screen, flame, config.ColorFire)
	}

	body := []utils.Point{
		{X: lx + w, Y: cy},
		{X: lx, Y: ly},
		{X: lx + 20*scale, Y: cy},
		{X: lx, Y: ly + h},
	}
	utils.FillPolygon(r.screen, body, hull)
	utils.StrokePolygon(r.screen, body, 3*scale, config.ColorShipEdge)

	if scale < 2 {
		utils.DrawCenteredText(r.screen, strconv.Itoa(score), r.fonts.Score(), cx-10, cy, color.Black)
	}
}

// RenderHUD 绘制目标月亮、效果状态和加速警告
func (r *EbitenRenderer) RenderHUD(hud game.HUDInfo) {
	mx, my := float32(config.FieldWidth-80), float32(80)
	vector.DrawFilledCircle(r.screen, mx, my, 50, config.ColorMoon, true)
	vector.DrawFilledCircle(r.screen, mx-15, my-10, 10, config.ColorMoonCrater, true)
	utils.DrawCenteredText(r.screen, strconv.Itoa(hud.Target), r.fonts.UI(), float64(mx), float64(my), config.ColorTargetText)

	y := 20.0
	for _, effect := range hud.ActiveEffects {
		label, clr := config.EffectStatus(effect)
		if label == "" {
			continue
		}
		utils.DrawText(r.screen, label, r.fonts.UI(), 20, y, clr)
		y += 30
	}

	if hud.PenaltyWarning {
		utils.DrawText(r.screen, config.TextPenalty, r.fonts.UI(), 20, y, config.ColorPenalty)
	}
}

// RenderLandingScene 绘制月面、着陆舱、宇航员和胜利画面
func (r *EbitenRenderer) RenderLandingScene(landing game.LandingInfo) {
	surface := float32(landing.SurfaceY)
	vector.DrawFilledRect(r.screen, 0, surface, float32(config.FieldWidth), float32(config.MoonSurfaceHeight), config.ColorMoon, false)
	utils.FillPolygon(r.screen, utils.EllipsePoints(175, config.FieldHeight-130, 75, 20, 24), config.ColorMoonCrater)

	w := config.PlayerWidth * landing.LanderScale
	h := config.PlayerHeight * landing.LanderScale
	r.drawShip(landing.LanderX, landing.LanderY, w, h, landing.Score, false, landing.LanderScale)

	if landing.DustActive {
		radius := float32(10 + r.fx.Intn(21))
		vector.DrawFilledCircle(r.screen, float32(landing.LanderX+50), surface, radius, config.ColorDust, true)
	}

	if landing.Descending {
		return
	}
	r.drawAstronaut(landing)
}

func (r *EbitenRenderer) drawAstronaut(landing game.LandingInfo) {
	x := landing.FigureX
	y := landing.FigureY - 40
	white := config.ColorText

	// 头盔
	vector.DrawFilledCircle(r.screen, float32(x), float32(y-20), 10, config.ColorFigureOuter, true)
	vector.DrawFilledCircle(r.screen, float32(x), float32(y-20), 8, white, true)
	// 身体
	vector.StrokeLine(r.screen, float32(x), float32(y-10), float32(x), float32(y+20), 4, white, true)

	// 腿（行走时摆动）
	offset := 0.0
	if landing.Walking {
		offset = math.Sin(landing.WalkPhase) * 10
	}
	vector.StrokeLine(r.screen, float32(x), float32(y+20), float32(x-10+offset), float32(y+50), 4, white, true)
	vector.StrokeLine(r.screen, float32(x), float32(y+20), float32(x+10-offset), float32(y+50), 4, white, true)
	// 手臂
	vector.StrokeLine(r.screen, float32(x), float32(y), float32(x+15), float32(y+10), 4, white, true)

	if !landing.ReachedFlag {
		return
	}

	// 旗杆和旗帜
	vector.StrokeLine(r.screen, float32(x+20), float32(y+50), float32(x+20), float32(y-60), 4, config.ColorFlagPole, true)
	flagX, flagY, flagW, flagH := float32(x+22), float32(y-60), float32(220), float32(50)
	vector.DrawFilledRect(r.screen, flagX, flagY, flagW, flagH, config.ColorFlag, false)
	vector.StrokeRect(r.screen, flagX, flagY, flagW, flagH, 2, white, false)
	utils.DrawCenteredText(r.screen, config.TextYouWon, r.fonts.UI(), float64(flagX+flagW/2), float64(flagY+flagH/2), white)

	utils.DrawCenteredText(r.screen, config.TextMission, r.fonts.Big(), config.FieldWidth/2, 130, config.ColorVictory)
	utils.DrawCenteredText(r.screen, config.TextPlayAgain, r.fonts.UI(), config.FieldWidth/2, 195, config.ColorSubtitle)
}

// RenderGameOver 绘制半透明遮罩和 GAME OVER
func (r *EbitenRenderer) RenderGameOver() {
	vector.DrawFilledRect(r.screen, 0, 0, float32(config.FieldWidth), float32(config.FieldHeight), config.ColorOverlay, false)
	utils.DrawCenteredText(r.screen, config.TextGameOver, r.fonts.Big(), config.FieldWidth/2, config.FieldHeight/2-20, config.ColorGameOver)
	utils.DrawCenteredText(r.screen, config.TextPlayAgain, r.fonts.UI(), config.FieldWidth/2, config.FieldHeight/2+40, config.ColorSubtitle)
}

var _ game.Renderer = (*EbitenRenderer)(nil)
