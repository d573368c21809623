package components

import "github.com/decker502/cosmiccalc/pkg/types"

// EffectTimersComponent 计时道具效果
//
// 四个相互独立的帧倒计时，值 > 0 即表示效果生效。
// 多个效果可以同时生效，叠加规则见 systems.EffectSystem.Resolve。
type EffectTimersComponent struct {
	SlowMotion int // 慢动作剩余帧数
	Ghost      int // 幽灵剩余帧数
	Inverted   int // 操作颠倒剩余帧数
	RapidFire  int // 极速剩余帧数
}

// IsSlowMotion 慢动作是否生效
func (e *EffectTimersComponent) IsSlowMotion() bool { return e.SlowMotion > 0 }

// IsGhost 幽灵是否生效
func (e *EffectTimersComponent) IsGhost() bool { return e.Ghost > 0 }

// IsInverted 操作颠倒是否生效
func (e *EffectTimersComponent) IsInverted() bool { return e.Inverted > 0 }

// IsRapidFire 极速是否生效
func (e *EffectTimersComponent) IsRapidFire() bool { return e.RapidFire > 0 }

// Tick 每个生效中的计时器减一
func (e *EffectTimersComponent) Tick() {
	if e.SlowMotion > 0 {
		e.SlowMotion--
	}
	if e.Ghost > 0 {
		e.Ghost--
	}
	if e.Inverted > 0 {
		e.Inverted--
	}
	if e.RapidFire > 0 {
		e.RapidFire--
	}
}

// Clear 清零所有计时器
func (e *EffectTimersComponent) Clear() {
	*e = EffectTimersComponent{}
}

// ActiveEffects 按 HUD 显示顺序返回生效中的效果
func (e *EffectTimersComponent) ActiveEffects() []types.PowerUpType {
	active := make([]types.PowerUpType, 0, 4)
	if e.IsSlowMotion() {
		active = append(active, types.PowerUpSlowMotion)
	}
	if e.IsGhost() {
		active = append(active, types.PowerUpGhost)
	}
	if e.IsInverted() {
		active = append(active, types.PowerUpInvertControls)
	}
	if e.IsRapidFire() {
		active = append(active, types.PowerUpRapidFire)
	}
	return active
}
