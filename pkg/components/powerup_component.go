package components

import "github.com/decker502/cosmiccalc/pkg/types"

// PowerUpComponent 道具数据
// Angle 和 Hue 只用于渲染（旋转的星形和变色）
type PowerUpComponent struct {
	Type  types.PowerUpType
	Angle float64 // 旋转角度（度）
	Hue   float64 // 色相 0-360
}
