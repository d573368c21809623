package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/game"
	"github.com/decker502/cosmiccalc/pkg/utils"
)

// ControlReader 读取一帧操作
// 默认实现是 utils.ReadControls，测试中可替换
type ControlReader func(screenHeight int) utils.ControlState

// GameScene 游戏主场景
// 把键盘/触摸输入交给 Session，再用 EbitenRenderer 画出 Session 的状态
type GameScene struct {
	session  *game.Session
	renderer *EbitenRenderer
	controls ControlReader

	// showDebug 显示帧数、难度速度等调试信息（--verbose 时开启）
	showDebug bool
	quit      bool
}

// NewGameScene 创建游戏主场景
func NewGameScene(session *game.Session, renderer *EbitenRenderer, showDebug bool) *GameScene {
	return &GameScene{
		session:   session,
		renderer:  renderer,
		controls:  utils.ReadControls,
		showDebug: showDebug,
	}
}

// SetControlReader 替换输入来源
func (s *GameScene) SetControlReader(reader ControlReader) {
	s.controls = reader
}

// Session 返回当前游戏会话
func (s *GameScene) Session() *game.Session {
	return s.session
}

// Update 读取输入并推进一帧
// deltaTime 未使用：所有计时器按帧计数
func (s *GameScene) Update(deltaTime float64) {
	controls := s.controls(config.GameWindowHeight)
	if controls.Quit {
		s.quit = true
		return
	}

	s.session.Update(game.InputState{
		Up:    controls.Up,
		Down:  controls.Down,
		Space: controls.Restart,
	})
}

// Draw 绘制当前帧
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderer.Begin(screen)
	s.session.Draw(s.renderer)
	if s.showTouchHint() {
		s.drawTouchHint(screen)
	}
	s.drawDebug(screen)
}

// touchHintMs 启动后显示触屏提示的时长（毫秒）
const touchHintMs = 4000

// showTouchHint 移动端启动后的前几秒显示触屏操作提示
func (s *GameScene) showTouchHint() bool {
	return utils.IsMobile() &&
		s.session.State() == game.StatePlaying &&
		s.session.ElapsedMs() < touchHintMs
}

func (s *GameScene) drawTouchHint(screen *ebiten.Image) {
	mid := float32(config.GameWindowHeight / 2)
	vector.StrokeLine(screen, 0, mid, config.GameWindowWidth, mid, 1, config.ColorSubtitle, false)

	face := s.renderer.fonts.Score()
	cx := float64(config.GameWindowWidth) / 2
	utils.DrawCenteredText(screen, config.TextTouchUp, face, cx, float64(mid)/2, config.ColorSubtitle)
	utils.DrawCenteredText(screen, config.TextTouchDown, face, cx, float64(mid)*1.5, config.ColorSubtitle)
}

// WantsQuit 玩家是否按下了 Esc
func (s *GameScene) WantsQuit() bool {
	return s.quit
}
