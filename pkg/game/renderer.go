package game

import (
	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/types"
)

// HUDInfo PLAYING 状态下的抬头显示信息
type HUDInfo struct {
	Target         int                 // 目标分数
	ActiveEffects  []types.PowerUpType // 生效中的效果（慢动作、穿云、反转、极速的顺序）
	PenaltyWarning bool                // 难度速度高于基础速度且不在极速模式
}

// LandingInfo 着陆动画的绘制信息
type LandingInfo struct {
	Score       int
	LanderX     float64
	LanderY     float64
	LanderScale float64
	Descending  bool    // 着陆舱仍在下降（画尾焰）
	DustActive  bool    // 接近月面时扬尘
	FigureX     float64 // 宇航员 X（绝对坐标）
	FigureY     float64 // 宇航员脚底 Y
	Walking     bool    // 宇航员正在行走（腿部摆动）
	ReachedFlag bool    // 到达旗帜，显示胜利文字
	FlagX       float64
	SurfaceY    float64 // 月面顶部 Y
	WalkPhase   float64 // 行走摆腿相位（弧度）
}

// Renderer 绘制后端
// Session.Draw 按层次顺序调用：星星 -> 道具 -> 云朵 -> 飞船 -> HUD/覆盖层。
// 背景色由后端在调用 Draw 之前自行填充。
type Renderer interface {
	RenderStar(x, y, size float64)
	RenderCloud(rect components.RectComponent, op types.Operation, operand int, ghostActive bool)
	RenderPowerUp(rect components.RectComponent, powerUpType types.PowerUpType, angle, hue float64)
	RenderShip(rect components.RectComponent, score int, isGhost bool, scale float64)
	RenderHUD(hud HUDInfo)
	RenderLandingScene(landing LandingInfo)
	RenderGameOver()
}
