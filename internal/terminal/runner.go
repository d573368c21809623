package terminal

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/game"
)

// FrameInterval 终端前端的帧间隔
const FrameInterval = time.Second / config.TargetFPS

// Runner 终端游戏循环
type Runner struct {
	screen   tcell.Screen
	session  *game.Session
	renderer *CellRenderer
	keys     KeyLatch
}

// NewRunner 创建终端游戏循环
// screen 必须已经 Init
func NewRunner(screen tcell.Screen, session *game.Session) *Runner {
	return &Runner{
		screen:   screen,
		session:  session,
		renderer: NewCellRenderer(screen),
	}
}

// HandleEvent 处理一个终端事件
func (r *Runner) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		r.keys.HandleEvent(ev)
	case *tcell.EventResize:
		r.screen.Sync()
		cols, rows := r.screen.Size()
		log.Printf("[Terminal] Resized to %dx%d", cols, rows)
	}
}

// Step 推进一帧并重绘
// 返回 false 表示玩家请求退出
func (r *Runner) Step() bool {
	input := r.keys.Snapshot()
	if input.Quit {
		return false
	}

	r.session.Update(input)
	r.renderer.Begin()
	r.session.Draw(r.renderer)
	r.screen.Show()
	return true
}

// Run 运行游戏循环，直到玩家退出或 ctx 被取消
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go r.pumpEvents(ctx, eventChan)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			r.HandleEvent(ev)

		case <-ticker.C:
			if !r.Step() {
				log.Printf("[Terminal] Quit requested")
				return nil
			}
		}
	}
}

// pumpEvents 把终端事件转发到 out，屏幕 Fini 或 ctx 取消后退出
func (r *Runner) pumpEvents(ctx context.Context, out chan<- tcell.Event) {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			// 屏幕已 Fini
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}
