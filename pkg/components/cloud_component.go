package components

import "github.com/decker502/cosmiccalc/pkg/types"

// CloudComponent 数学云朵数据
// 飞船撞上云朵时，把 Op/Operand 应用到分数上
type CloudComponent struct {
	Op      types.Operation // 运算类型
	Operand int             // 操作数（1-9，乘法为 2-4）
	Lane    int             // 所在跑道（0 开始）
	LaneY   float64         // 跑道基准Y，漂浮围绕它进行

	// 上下漂浮参数：y = LaneY + BobAmplitude * sin(BobFrequency * elapsedMs + BobPhase)
	BobPhase     float64
	BobAmplitude float64
	BobFrequency float64
}
