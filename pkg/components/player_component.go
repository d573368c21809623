package components

// PlayerComponent 玩家飞船数据
// 位置和碰撞盒保存在同一实体的 RectComponent 中
type PlayerComponent struct {
	Score int // 当前分数（>= 0）

	// 着陆动画进度
	LanderY float64 // 着陆舱当前Y坐标
	FigureX float64 // 宇航员已走过的距离
}
