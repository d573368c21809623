package game

// State 游戏流程状态
//
// 状态转换:
//
//	PLAYING --分数恰好达到目标--> TRANSITION_TO_LANDING --飞船离开画面--> LANDING_SCENE
//	LANDING_SCENE / GAME_OVER --空格--> PLAYING（重置）
//	PLAYING --EndGame--> GAME_OVER
type State int

const (
	// StatePlaying 正常游戏中
	StatePlaying State = iota
	// StateTransitionToLanding 达成目标后飞船向右飞离
	StateTransitionToLanding
	// StateLandingScene 月面着陆动画
	StateLandingScene
	// StateGameOver 游戏结束
	StateGameOver
)

// String 返回状态名
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "PLAYING"
	case StateTransitionToLanding:
		return "TRANSITION_TO_LANDING"
	case StateLandingScene:
		return "LANDING_SCENE"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// AcceptsRestart 该状态下按空格是否重新开始
func (s State) AcceptsRestart() bool {
	return s == StateLandingScene || s == StateGameOver
}
