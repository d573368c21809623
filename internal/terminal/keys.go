package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cosmiccalc/pkg/game"
)

// HoldFrames 终端没有按键抬起事件，方向键按下后保持生效的帧数
// 键盘自动重复的间隔通常在 30ms 左右，8 帧足以连上下一次重复
const HoldFrames = 8

// KeyLatch 把终端按键事件转换为逐帧的 game.InputState
type KeyLatch struct {
	upFrames   int
	downFrames int
	space      bool
	quit       bool
}

// HandleEvent 处理一个按键事件
// 返回 true 表示事件被识别
func (k *KeyLatch) HandleEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		k.pressUp()
	case tcell.KeyDown:
		k.pressDown()
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			k.pressUp()
		case 's', 'S':
			k.pressDown()
		case ' ':
			k.space = true
		case 'q', 'Q':
			k.quit = true
		default:
			return false
		}
	default:
		return false
	}
	return true
}

func (k *KeyLatch) pressUp() {
	k.upFrames = HoldFrames
	k.downFrames = 0
}

func (k *KeyLatch) pressDown() {
	k.downFrames = HoldFrames
	k.upFrames = 0
}

// Snapshot 生成本帧输入并推进按键保持计时
// 空格是边沿触发，只在读取它的那一帧为 true
func (k *KeyLatch) Snapshot() game.InputState {
	input := game.InputState{
		Up:    k.upFrames > 0,
		Down:  k.downFrames > 0,
		Space: k.space,
		Quit:  k.quit,
	}
	if k.upFrames > 0 {
		k.upFrames--
	}
	if k.downFrames > 0 {
		k.downFrames--
	}
	k.space = false
	return input
}
