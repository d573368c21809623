// Package autopilot 提供无界面的自动驾驶输入
//
// 自动驾驶在每一帧查看前方最近的一排云，预测穿过每朵云后的分数，
// 选择最接近目标的一朵并把飞船对准它。cmd/verify_gameplay 用它做回归验证。
package autopilot

import (
	"math"

	"github.com/decker502/cosmiccalc/pkg/game"
	"github.com/decker502/cosmiccalc/pkg/systems"
)

const (
	// wallTolerance 同一排云的 X 坐标误差
	wallTolerance = 1.0

	// penaltyCost 出现小数惩罚的额外代价
	penaltyCost = 1000

	// overshootCost 超过目标分数的额外代价
	overshootCost = 100
)

// Pilot 自动驾驶
type Pilot struct {
	// Deadband 飞船中心与目标云中心的距离小于该值时不再移动
	Deadband float64
}

// New 创建自动驾驶，死区取飞船单帧移动距离
func New(playerSpeed float64) *Pilot {
	return &Pilot{Deadband: playerSpeed}
}

// Cost 计算穿过一朵云后的代价，越小越好
// 正好命中目标返回 -1
func Cost(score, target int, cloud game.CloudView) int {
	result, penalty := systems.ApplyOperation(score, cloud.Cloud.Op, cloud.Cloud.Operand)
	if result == target && !penalty {
		return -1
	}

	cost := target - result
	if cost < 0 {
		cost = -cost + overshootCost
	}
	if penalty {
		cost += penaltyCost
	}
	return cost
}

// ChooseCloud 在飞船前方最近的一排云中选择代价最小的一朵
func ChooseCloud(score, target int, shipLeft float64, clouds []game.CloudView) (game.CloudView, bool) {
	nearestX := math.Inf(1)
	for _, c := range clouds {
		if c.Rect.Right() > shipLeft && c.Rect.X < nearestX {
			nearestX = c.Rect.X
		}
	}
	if math.IsInf(nearestX, 1) {
		return game.CloudView{}, false
	}

	var best game.CloudView
	bestCost := math.MaxInt
	for _, c := range clouds {
		if c.Rect.Right() <= shipLeft || math.Abs(c.Rect.X-nearestX) > wallTolerance {
			continue
		}
		if cost := Cost(score, target, c); cost < bestCost {
			best, bestCost = c, cost
		}
	}
	return best, true
}

// Input 生成本帧的输入
// 操作颠倒生效时反向按键，保证飞船仍然朝目标移动
func (p *Pilot) Input(s *game.Session) game.InputState {
	if s.State() != game.StatePlaying {
		return game.InputState{}
	}

	ship := s.PlayerRect()
	cloud, ok := ChooseCloud(s.Score(), s.Target(), ship.X, s.Clouds())
	if !ok {
		return game.InputState{}
	}

	var input game.InputState
	diff := cloud.Rect.CenterY() - ship.CenterY()
	switch {
	case diff < -p.Deadband:
		input.Up = true
	case diff > p.Deadband:
		input.Down = true
	}

	effects := s.Effects()
	if effects.IsInverted() {
		input.Up, input.Down = input.Down, input.Up
	}
	return input
}
