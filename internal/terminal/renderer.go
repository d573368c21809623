// Package terminal 提供基于 tcell 的终端前端
//
// 终端版本复用 game.Session 的全部逻辑，只替换绘制后端和输入来源：
// 1000x700 的逻辑坐标按比例映射到字符格上。
package terminal

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/game"
	"github.com/decker502/cosmiccalc/pkg/types"
)

var _ game.Renderer = (*CellRenderer)(nil)

// CellRenderer 把 game.Renderer 的绘制调用转换为字符格
type CellRenderer struct {
	screen     tcell.Screen
	cols, rows int
	background tcell.Style
}

// NewCellRenderer 创建终端渲染器
func NewCellRenderer(screen tcell.Screen) *CellRenderer {
	return &CellRenderer{
		screen:     screen,
		background: tcell.StyleDefault.Background(tcellColor(config.ColorBackground)),
	}
}

// Begin 开始新的一帧：读取当前终端尺寸并填充背景
func (r *CellRenderer) Begin() {
	r.cols, r.rows = r.screen.Size()
	r.screen.Fill(' ', r.background)
}

// Size 返回上一帧使用的终端尺寸（列, 行）
func (r *CellRenderer) Size() (int, int) {
	return r.cols, r.rows
}

// ToCell 把逻辑坐标换算为字符格坐标
func (r *CellRenderer) ToCell(x, y float64) (int, int) {
	col := int(x * float64(r.cols) / config.FieldWidth)
	row := int(y * float64(r.rows) / config.FieldHeight)
	return col, row
}

// RenderStar 绘制星星
func (r *CellRenderer) RenderStar(x, y, size float64) {
	ch := '.'
	if size >= 2 {
		ch = '*'
	}
	col, row := r.ToCell(x, y)
	r.set(col, row, ch, r.fg(tcellColor(config.ColorStar)))
}

// RenderCloud 绘制运算云
func (r *CellRenderer) RenderCloud(rect components.RectComponent, op types.Operation, operand int, ghostActive bool) {
	body, label := config.ColorCloud, config.ColorCloudText
	if ghostActive {
		body, label = config.ColorCloudGhost, config.ColorCloudTextGhost
	}

	bodyStyle := r.background.Foreground(tcellColor(body))
	left, top := r.ToCell(rect.X, rect.Y)
	right, bottom := r.ToCell(rect.Right(), rect.Bottom())
	r.fillRect(left, top, right, bottom, '░', bodyStyle)

	text := fmt.Sprintf("%s %d", op.Symbol(), operand)
	col, row := r.ToCell(rect.CenterX(), rect.CenterY())
	textStyle := tcell.StyleDefault.Foreground(tcellColor(label)).Background(tcellColor(body)).Bold(true)
	r.drawText(col-len(text)/2, row, text, textStyle)
}

// RenderPowerUp 绘制道具（星形 + 标签）
// 反转道具的颜色随色相循环
func (r *CellRenderer) RenderPowerUp(rect components.RectComponent, powerUpType types.PowerUpType, angle, hue float64) {
	c := tcellColor(config.PowerUpColor(powerUpType))
	if powerUpType == types.PowerUpInvertControls {
		c = hueColor(hue)
	}

	col, row := r.ToCell(rect.CenterX(), rect.CenterY())
	style := r.fg(c).Bold(true)
	r.set(col, row, spinRune(angle), style)

	label := powerUpType.Label()
	r.drawText(col-len(label)/2, row+1, label, r.fg(c))
}

// RenderShip 绘制飞船，分数显示在船身上
func (r *CellRenderer) RenderShip(rect components.RectComponent, score int, isGhost bool, scale float64) {
	hull := config.ColorShip
	if isGhost {
		hull = config.ColorShipGhost
	}

	left, top := r.ToCell(rect.X, rect.Y)
	right, bottom := r.ToCell(rect.Right(), rect.Bottom())
	hullStyle := r.background.Foreground(tcellColor(hull))
	r.fillRect(left, top, right, bottom, '█', hullStyle)

	_, mid := r.ToCell(rect.CenterX(), rect.CenterY())
	r.set(right, mid, '▶', hullStyle)
	r.set(left-1, mid, '≈', r.fg(tcellColor(config.ColorFire)))

	if scale < 2 {
		text := fmt.Sprintf("%d", score)
		col, _ := r.ToCell(rect.CenterX(), rect.CenterY())
		style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcellColor(hull)).Bold(true)
		r.drawText(col-len(text)/2, mid, text, style)
	}
}

// RenderHUD 绘制目标分数、效果状态和减速警告
func (r *CellRenderer) RenderHUD(hud game.HUDInfo) {
	target := fmt.Sprintf("TARGET: %d", hud.Target)
	r.drawText(r.cols-len(target)-1, 0, target, r.fg(tcellColor(config.ColorMoon)).Bold(true))

	row := 0
	for _, effect := range hud.ActiveEffects {
		text, c := config.EffectStatus(effect)
		if text == "" {
			continue
		}
		r.drawText(1, row, text, r.fg(tcellColor(c)).Bold(true))
		row++
	}

	if hud.PenaltyWarning {
		r.drawCentered(r.rows-1, config.TextPenalty, r.fg(tcellColor(config.ColorPenalty)).Bold(true))
	}
}

// RenderLandingScene 绘制月面着陆动画
func (r *CellRenderer) RenderLandingScene(landing game.LandingInfo) {
	_, surfaceRow := r.ToCell(0, landing.SurfaceY)
	r.fillRect(0, surfaceRow, r.cols, r.rows, '▒', r.background.Foreground(tcellColor(config.ColorMoonCrater)))

	// 旗帜
	flagCol, flagTop := r.ToCell(landing.FlagX, landing.SurfaceY-100)
	poleStyle := r.fg(tcellColor(config.ColorFlagPole))
	for row := flagTop; row < surfaceRow; row++ {
		r.set(flagCol, row, '│', poleStyle)
	}
	r.drawText(flagCol+1, flagTop, "▶▶", r.fg(tcellColor(config.ColorFlag)))

	// 着陆舱
	landerCol, landerRow := r.ToCell(landing.LanderX, landing.LanderY)
	landerStyle := r.fg(tcellColor(config.ColorShip)).Bold(true)
	r.drawText(landerCol-1, landerRow, "/█\\", landerStyle)
	if landing.Descending {
		r.set(landerCol, landerRow+1, 'v', r.fg(tcellColor(config.ColorFire)))
	}
	if landing.DustActive {
		r.drawText(landerCol-3, surfaceRow-1, "~~ ~~", r.fg(tcellColor(config.ColorDust)))
	}

	// 宇航员
	if !landing.Descending {
		figCol, feetRow := r.ToCell(landing.FigureX, landing.FigureY)
		figStyle := r.fg(tcellColor(config.ColorText))
		r.set(figCol, feetRow-2, 'o', figStyle)
		legs := 'Λ'
		if landing.Walking && int(landing.WalkPhase*2)%2 == 1 {
			legs = '|'
		}
		r.set(figCol, feetRow-1, legs, figStyle)
	}

	if landing.ReachedFlag {
		victory := fmt.Sprintf("%s Score: %d", config.TextYouWon, landing.Score)
		r.drawCentered(r.rows/4, victory, r.fg(tcellColor(config.ColorVictory)).Bold(true))
		r.drawCentered(r.rows/4+1, config.TextMission, r.fg(tcellColor(config.ColorSubtitle)))
		r.drawCentered(r.rows/4+3, config.TextPlayAgain, r.fg(tcellColor(config.ColorText)))
	}
}

// RenderGameOver 绘制结束画面
func (r *CellRenderer) RenderGameOver() {
	r.drawCentered(r.rows/2-1, config.TextGameOver, r.fg(tcellColor(config.ColorGameOver)).Bold(true))
	r.drawCentered(r.rows/2+1, config.TextPlayAgain, r.fg(tcellColor(config.ColorText)))
}

func (r *CellRenderer) fg(c tcell.Color) tcell.Style {
	return r.background.Foreground(c)
}

func (r *CellRenderer) set(col, row int, ch rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

// fillRect 填充 [left, right) x [top, bottom) 区域，至少填充一格
func (r *CellRenderer) fillRect(left, top, right, bottom int, ch rune, style tcell.Style) {
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}
	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			r.set(col, row, ch, style)
		}
	}
}

func (r *CellRenderer) drawText(col, row int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.set(col+i, row, ch, style)
	}
}

func (r *CellRenderer) drawCentered(row int, text string, style tcell.Style) {
	r.drawText((r.cols-len([]rune(text)))/2, row, text, style)
}

// tcellColor 把调色板颜色转换为终端真彩色
func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// hueColor 把色相（度）转换为饱和的终端颜色
func hueColor(hue float64) tcell.Color {
	r, g, b := colorful.Hsv(hue, 1, 1).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// spinRune 按旋转角度选择星形字符，让道具看起来在转
func spinRune(angle float64) rune {
	frames := []rune{'✦', '✧', '✶', '✧'}
	i := int(angle/45) % len(frames)
	if i < 0 {
		i += len(frames)
	}
	return frames[i]
}
