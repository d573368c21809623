package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the ebiten frontend.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Quitter 是一个可选接口，场景通过它请求退出程序
type Quitter interface {
	// WantsQuit 返回 true 时 App 结束主循环
	WantsQuit() bool
}
