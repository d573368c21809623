// Package utils 提供 ebiten 前端使用的通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ControlState 一帧的操作状态
// 键盘、鼠标和触摸统一映射到这四个动作
type ControlState struct {
	Up      bool // 按住上移
	Down    bool // 按住下移
	Restart bool // 刚按下空格（或刚点击/触摸）
	Quit    bool // 刚按下 Esc
}

var (
	upKeys   = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	downKeys = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
)

// ReadControls 读取当前帧的操作状态
//
// 触摸：按在画面上半部分为上移，下半部分为下移；刚按下时同时算作重新开始。
// 指针映射只在移动端启用，桌面端点击窗口不会触发移动或重开。
//
// 参数:
//   - screenHeight: 逻辑画面高度
func ReadControls(screenHeight int) ControlState {
	state := ControlState{
		Up:      anyKeyPressed(upKeys),
		Down:    anyKeyPressed(downKeys),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	if !IsMobile() {
		return state
	}

	pressed, _, y := GetPointerState()
	justPressed, _, _ := IsPointerJustPressed()
	return mergePointer(state, pointerSample{Pressed: pressed, JustPressed: justPressed, Y: y}, screenHeight)
}

// pointerSample 一帧的指针采样
type pointerSample struct {
	Pressed     bool
	JustPressed bool
	Y           int
}

// mergePointer 把指针采样合并进键盘状态
func mergePointer(state ControlState, p pointerSample, screenHeight int) ControlState {
	if p.Pressed {
		up, down := TouchZone(p.Y, screenHeight)
		state.Up = state.Up || up
		state.Down = state.Down || down
	}
	if p.JustPressed {
		state.Restart = true
	}
	return state
}

// TouchZone 把指针的 Y 坐标映射为上移/下移
// 上半部分（y < 高度/2）为上移，其余为下移
func TouchZone(y, screenHeight int) (up, down bool) {
	if y < screenHeight/2 {
		return true, false
	}
	return false, true
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
// 返回是否按下以及按下位置
func IsPointerJustPressed() (bool, int, int) {
	// 检查触摸按下
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标按下
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
