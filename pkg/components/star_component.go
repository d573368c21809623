package components

// StarComponent 背景星星
// 纯装饰，不参与碰撞
type StarComponent struct {
	X     float64
	Y     float64
	Size  float64 // 半径（像素）
	Speed float64 // 自身滚动速度，不受难度影响
}
