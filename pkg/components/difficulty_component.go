package components

// DifficultyComponent 存储难度速度
// 难度速度是基础滚动速度：出现小数惩罚时上升，取整道具把它恢复到基础值
type DifficultyComponent struct {
	Speed float64 // 当前难度速度
}
