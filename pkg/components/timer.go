package components

// TimerComponent 通用帧计时器组件
// 用于处理按固定帧数间隔触发的行为（如云墙生成、道具生成）
type TimerComponent struct {
	Interval int // 触发间隔（帧）
	Elapsed  int // 已过帧数
}

// Tick 推进一帧，到达间隔时归零并返回 true
func (t *TimerComponent) Tick() bool {
	t.Elapsed++
	if t.Elapsed >= t.Interval {
		t.Elapsed = 0
		return true
	}
	return false
}
