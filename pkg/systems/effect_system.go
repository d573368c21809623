package systems

import (
	"log"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/ecs"
	"github.com/decker502/cosmiccalc/pkg/types"
)

// EffectState 本帧生效的参数
// 由 EffectSystem.Resolve 按固定顺序计算得出
type EffectState struct {
	ScrollSpeed   float64 // 实际滚动速度
	CloudInterval int     // 云墙生成间隔（帧）
	Ghost         bool    // 穿云模式
	Inverted      bool    // 上下键反转
	RapidFire     bool    // 极速模式
}

// effectModifier 按顺序修改 EffectState
type effectModifier func(timers *components.EffectTimersComponent, state *EffectState)

// EffectSystem 道具效果系统
//
// 职责：
//   - 保存各效果的剩余帧数（EffectTimersComponent）
//   - Resolve：基础值 -> 慢动作 -> 极速（覆盖慢动作）-> 穿云/反转标记
//   - Tick：所有正计时器减 1
//   - Activate：道具类型到效果的分发表
type EffectSystem struct {
	entityManager *ecs.EntityManager
	difficulty    *DifficultyEngine
	effects       config.EffectConfig
	spawn         config.SpawnConfig

	// effectEntity 保存 EffectTimersComponent 的实体
	effectEntity ecs.EntityID

	modifiers   []effectModifier
	activations map[types.PowerUpType]func(timers *components.EffectTimersComponent)
}

// NewEffectSystem 创建道具效果系统
// 所有效果计时器从 0 开始
func NewEffectSystem(em *ecs.EntityManager, difficulty *DifficultyEngine, cfg *config.GameplayConfig) *EffectSystem {
	s := &EffectSystem{
		entityManager: em,
		difficulty:    difficulty,
		effects:       cfg.Effects,
		spawn:         cfg.Spawn,
	}

	s.effectEntity = em.CreateEntity()
	em.AddComponent(s.effectEntity, &components.EffectTimersComponent{})

	// 顺序不可调换：极速必须在慢动作之后，才能覆盖它
	s.modifiers = []effectModifier{
		s.applySlowMotion,
		s.applyRapidFire,
		applyGhost,
		applyInvert,
	}

	s.activations = map[types.PowerUpType]func(timers *components.EffectTimersComponent){
		types.PowerUpSlowMotion: func(timers *components.EffectTimersComponent) {
			timers.SlowMotion = s.effects.SlowMotionFrames
		},
		types.PowerUpRoundNum: func(*components.EffectTimersComponent) {
			s.difficulty.ResetSpeed()
		},
		types.PowerUpGhost: func(timers *components.EffectTimersComponent) {
			timers.Ghost = s.effects.GhostFrames
		},
		types.PowerUpInvertControls: func(timers *components.EffectTimersComponent) {
			timers.Inverted = s.effects.InvertFrames
		},
		types.PowerUpRapidFire: func(timers *components.EffectTimersComponent) {
			timers.RapidFire = s.effects.RapidFireFrames
		},
	}

	return s
}

// Timers 返回效果计时器组件
func (s *EffectSystem) Timers() *components.EffectTimersComponent {
	timers, ok := ecs.GetComponent[*components.EffectTimersComponent](s.entityManager, s.effectEntity)
	if !ok {
		timers = &components.EffectTimersComponent{}
		s.entityManager.AddComponent(s.effectEntity, timers)
	}
	return timers
}

// Resolve 计算本帧生效的参数（不修改计时器）
func (s *EffectSystem) Resolve() EffectState {
	state := EffectState{
		ScrollSpeed:   s.difficulty.Speed(),
		CloudInterval: s.spawn.CloudInterval,
	}

	timers := s.Timers()
	for _, modify := range s.modifiers {
		modify(timers, &state)
	}
	return state
}

func (s *EffectSystem) applySlowMotion(timers *components.EffectTimersComponent, state *EffectState) {
	if timers.IsSlowMotion() {
		state.ScrollSpeed *= s.effects.SlowMotionFactor
	}
}

func (s *EffectSystem) applyRapidFire(timers *components.EffectTimersComponent, state *EffectState) {
	if timers.IsRapidFire() {
		state.ScrollSpeed = s.effects.RapidFireSpeed
		state.CloudInterval = s.spawn.RapidCloudInterval
		state.RapidFire = true
	}
}

func applyGhost(timers *components.EffectTimersComponent, state *EffectState) {
	state.Ghost = timers.IsGhost()
}

func applyInvert(timers *components.EffectTimersComponent, state *EffectState) {
	state.Inverted = timers.IsInverted()
}

// Tick 所有正计时器减 1（只在 PLAYING 状态调用）
func (s *EffectSystem) Tick() {
	s.Timers().Tick()
}

// Activate 激活道具效果
// 计时器类效果直接覆盖剩余帧数（不累加）
func (s *EffectSystem) Activate(powerUpType types.PowerUpType) {
	activate, ok := s.activations[powerUpType]
	if !ok {
		log.Printf("[EffectSystem] Unknown power-up type: %v", powerUpType)
		return
	}
	activate(s.Timers())
	log.Printf("[EffectSystem] Activated %s", powerUpType)
}

// IsGhost 当前是否处于穿云模式（读取实时计时器）
func (s *EffectSystem) IsGhost() bool {
	return s.Timers().IsGhost()
}

// IsRapidFire 当前是否处于极速模式（读取实时计时器）
func (s *EffectSystem) IsRapidFire() bool {
	return s.Timers().IsRapidFire()
}

// Clear 清空所有效果
func (s *EffectSystem) Clear() {
	s.Timers().Clear()
}
