package components

// RectComponent 轴对齐矩形，同时作为实体的位置和碰撞盒
// X/Y 是左上角坐标
type RectComponent struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Left 返回左边界
func (r *RectComponent) Left() float64 { return r.X }

// Right 返回右边界
func (r *RectComponent) Right() float64 { return r.X + r.Width }

// Top 返回上边界
func (r *RectComponent) Top() float64 { return r.Y }

// Bottom 返回下边界
func (r *RectComponent) Bottom() float64 { return r.Y + r.Height }

// CenterX 返回中心X坐标
func (r *RectComponent) CenterX() float64 { return r.X + r.Width/2 }

// CenterY 返回中心Y坐标
func (r *RectComponent) CenterY() float64 { return r.Y + r.Height/2 }

// Overlaps 检查两个矩形是否重叠（AABB）
// 只接触边缘不算重叠
func (r *RectComponent) Overlaps(o *RectComponent) bool {
	return r.X < o.X+o.Width &&
		o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height &&
		o.Y < r.Y+r.Height
}

// IsOffLeft 检查矩形是否完全移出场地左边缘
func (r *RectComponent) IsOffLeft() bool {
	return r.Right() < 0
}
