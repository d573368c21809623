package config

// 布局配置常量
// 本文件定义了游戏画面中的布局参数，包括场地尺寸、飞船和云朵大小、着陆动画坐标等。
// 这些值不随关卡变化，因此直接写成常量；可调的玩法参数在 gameplay_config.go。

// Play Field Configuration (场地配置)
const (
	// GameWindowWidth 是游戏逻辑画面宽度（像素）
	GameWindowWidth = 1000

	// GameWindowHeight 是游戏逻辑画面高度（像素）
	GameWindowHeight = 700

	// FieldWidth / FieldHeight 是模拟使用的场地尺寸（与逻辑画面一致）
	FieldWidth  = float64(GameWindowWidth)
	FieldHeight = float64(GameWindowHeight)

	// TargetFPS 是固定的模拟帧率，所有计时器都按帧计数
	TargetFPS = 60

	// LaneCount 是云墙的跑道数（每堵云墙每条跑道一朵云）
	LaneCount = 3

	// MaxScore 是分数上限，运算结果超过后截断（保证 float64 运算精确且不溢出）
	MaxScore = 1<<31 - 1
)

// Player Ship Configuration (飞船配置)
const (
	// PlayerStartX 是飞船初始 X 坐标
	PlayerStartX = 100.0

	// PlayerWidth / PlayerHeight 是飞船碰撞矩形大小
	PlayerWidth  = 100.0
	PlayerHeight = 60.0
)

// Entity Size Configuration (实体尺寸)
const (
	// CloudWidth / CloudHeight 是数学云朵的碰撞矩形大小
	CloudWidth  = 180.0
	CloudHeight = 120.0

	// CloudLaneCenterOffset 是云朵顶部相对跑道中心的偏移（云高度的一半）
	CloudLaneCenterOffset = 60.0

	// PowerUpSize 是道具的边长
	PowerUpSize = 40.0

	// PowerUpMinY 是道具生成的最小 Y（最大 Y = FieldHeight - PowerUpMinY）
	PowerUpMinY = 50
)

// Landing Scene Configuration (着陆动画配置)
const (
	// MoonSurfaceHeight 是月面高度（从画面底部算起）
	MoonSurfaceHeight = 200.0

	// LanderStartY 是着陆舱开始下降时的 Y 坐标（画面上方之外）
	LanderStartY = -100.0

	// LanderX 是着陆舱的 X 坐标
	LanderX = 200.0

	// LanderScale 是着陆动画中飞船的缩放倍数
	LanderScale = 2.5

	// LanderPadY 是着陆舱停靠的 Y 坐标：月面顶部再往上 80 像素
	LanderPadY = FieldHeight - MoonSurfaceHeight - 80.0

	// LanderDustRange 是接近着陆点时开始扬尘的距离
	LanderDustRange = 100.0

	// AstronautStartX 是宇航员开始行走的 X 坐标
	AstronautStartX = 350.0

	// FlagX 是旗帜所在的 X 坐标
	FlagX = 600.0

	// AstronautWalkDistance 是宇航员需要走过的距离
	AstronautWalkDistance = FlagX - AstronautStartX
)

// LaneHeight 返回每条跑道的高度（整数除法）
func LaneHeight() float64 {
	return float64(GameWindowHeight / LaneCount)
}

// GetLaneCloudY 返回指定跑道中云朵的基准 Y 坐标（云朵顶部）
// 跑道编号从 0 开始
//
// 示例:
//
//	GetLaneCloudY(0) = 0*233 + 116 - 60 = 56
//	GetLaneCloudY(2) = 2*233 + 116 - 60 = 522
func GetLaneCloudY(lane int) float64 {
	laneHeight := GameWindowHeight / LaneCount
	return float64(lane*laneHeight+laneHeight/2) - CloudLaneCenterOffset
}
