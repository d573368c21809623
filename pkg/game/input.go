package game

// InputState 一帧的输入快照
// 由前端（ebiten 键盘/触屏、终端键盘、自动驾驶）填充
type InputState struct {
	Up    bool // 上移（按住）
	Down  bool // 下移（按住）
	Space bool // 重新开始（边沿触发：只在按下那一帧为 true）
	Quit  bool // 退出程序
}
