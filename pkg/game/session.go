package game

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/ecs"
	"github.com/decker502/cosmiccalc/pkg/entities"
	"github.com/decker502/cosmiccalc/pkg/systems"
)

// msPerFrame 每帧对应的毫秒数（60 FPS）
const msPerFrame = 1000.0 / config.TargetFPS

// walkSwingFrequency 宇航员摆腿频率（每走 1 像素的弧度）
const walkSwingFrequency = 0.2

// Session 一局游戏
//
// 持有实体管理器、全部系统和流程状态。每帧由前端调用 Update，再调用 Draw。
// Session 不依赖任何图形库，ebiten 和终端前端共用同一份逻辑。
type Session struct {
	cfg *config.GameplayConfig
	rng *rand.Rand

	state State
	frame int // 累计帧数，驱动云朵漂浮

	entityManager *ecs.EntityManager
	playerEntity  ecs.EntityID

	difficulty *systems.DifficultyEngine
	effects    *systems.EffectSystem
	spawner    *systems.SpawnSystem
	movement   *systems.MovementSystem
	control    *systems.PlayerControlSystem
	collision  *systems.CollisionSystem
	boundary   *systems.BoundarySystem
	landing    *systems.LandingSystem
}

// NewSession 创建一局新游戏
//
// 参数:
//
//	cfg - 玩法配置（nil 时使用默认配置）
//	rng - 随机数源（nil 时使用固定种子 1）
func NewSession(cfg *config.GameplayConfig, rng *rand.Rand) *Session {
	if cfg == nil {
		cfg = config.DefaultGameplayConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	s := &Session{
		cfg: cfg,
		rng: rng,
	}
	s.Reset()
	return s
}

// Reset 恢复到开局状态
// 分数 0、难度为基础速度、所有效果清零、第一面云墙在右侧偏移 InitialWallOffset 处、星空重新随机
func (s *Session) Reset() {
	em := ecs.NewEntityManager()
	s.entityManager = em
	s.playerEntity = entities.NewPlayerEntity(em)

	s.difficulty = systems.NewDifficultyEngine(em, s.cfg.Scroll)
	s.effects = systems.NewEffectSystem(em, s.difficulty, s.cfg)
	s.spawner = systems.NewSpawnSystem(em, s.rng, s.difficulty, s.cfg, s.playerEntity)
	s.movement = systems.NewMovementSystem(em, s.rng)
	s.control = systems.NewPlayerControlSystem(em, s.playerEntity, s.cfg.Player)
	s.collision = systems.NewCollisionSystem(em, s.playerEntity, s.effects, s.difficulty, s.cfg.Target)
	s.boundary = systems.NewBoundarySystem(em)
	s.landing = systems.NewLandingSystem(em, s.playerEntity, s.cfg.Landing)

	entities.NewStarField(em, s.rng, s.cfg.Stars)
	s.spawner.SpawnInitialWall()

	s.state = StatePlaying
	log.Printf("[Session] New game started (target=%d)", s.cfg.Target)
}

// Update 推进一帧
func (s *Session) Update(input InputState) {
	if input.Space && s.state.AcceptsRestart() {
		s.Reset()
		return
	}

	switch s.state {
	case StatePlaying:
		s.updatePlaying(input)
	case StateTransitionToLanding:
		s.movement.UpdateStars()
		if s.landing.UpdateExit() {
			s.landing.BeginLanding()
			s.setState(StateLandingScene)
		}
	case StateLandingScene:
		s.landing.UpdateLanding()
	case StateGameOver:
		s.movement.UpdateStars()
	}

	s.frame++
}

// updatePlaying PLAYING 状态的固定更新顺序:
// 星星 -> 读取效果 -> 飞船移动 -> 效果计时 -> 生成 -> 滚动 -> 碰撞 -> 边界回收
func (s *Session) updatePlaying(input InputState) {
	s.movement.UpdateStars()

	effect := s.effects.Resolve()
	s.control.Update(input.Up, input.Down, effect.Inverted)
	s.effects.Tick()

	s.spawner.Update(effect.CloudInterval)
	s.movement.UpdateScrolling(effect.ScrollSpeed, s.ElapsedMs())

	report := s.collision.Update()
	s.boundary.Update()
	s.entityManager.RemoveMarkedEntities()

	if report.TargetReached {
		s.setState(StateTransitionToLanding)
	}
}

func (s *Session) setState(state State) {
	log.Printf("[Session] %s -> %s", s.state, state)
	s.state = state
}

// EndGame 进入 GAME_OVER
// 游戏规则本身不会失败，这是给前端（例如退出确认）使用的入口
func (s *Session) EndGame() {
	if s.state == StateGameOver {
		return
	}
	s.setState(StateGameOver)
}

// State 返回当前流程状态
func (s *Session) State() State {
	return s.state
}

// ElapsedMs 返回本局开始以来的毫秒数（按 60 FPS 帧数换算）
func (s *Session) ElapsedMs() float64 {
	return float64(s.frame) * msPerFrame
}

// Score 返回当前分数
func (s *Session) Score() int {
	return s.player().Score
}

// Target 返回目标分数
func (s *Session) Target() int {
	return s.cfg.Target
}

// DifficultySpeed 返回当前难度速度
func (s *Session) DifficultySpeed() float64 {
	return s.difficulty.Speed()
}

// Effects 返回效果计时器的快照
func (s *Session) Effects() components.EffectTimersComponent {
	return *s.effects.Timers()
}

// PlayerRect 返回飞船矩形的快照
func (s *Session) PlayerRect() components.RectComponent {
	rect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, s.playerEntity)
	if !ok {
		return components.RectComponent{}
	}
	return *rect
}

// CloudView 云朵的只读视图
type CloudView struct {
	Rect  components.RectComponent
	Cloud components.CloudComponent
}

// Clouds 返回场上所有云朵（按创建顺序）
func (s *Session) Clouds() []CloudView {
	ids := ecs.GetEntitiesWith2[*components.RectComponent, *components.CloudComponent](s.entityManager)
	views := make([]CloudView, 0, len(ids))
	for _, id := range ids {
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		cloud, _ := ecs.GetComponent[*components.CloudComponent](s.entityManager, id)
		views = append(views, CloudView{Rect: *rect, Cloud: *cloud})
	}
	return views
}

// PowerUpView 道具的只读视图
type PowerUpView struct {
	Rect    components.RectComponent
	PowerUp components.PowerUpComponent
}

// PowerUps 返回场上所有道具（按创建顺序）
func (s *Session) PowerUps() []PowerUpView {
	ids := ecs.GetEntitiesWith2[*components.RectComponent, *components.PowerUpComponent](s.entityManager)
	views := make([]PowerUpView, 0, len(ids))
	for _, id := range ids {
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		powerUp, _ := ecs.GetComponent[*components.PowerUpComponent](s.entityManager, id)
		views = append(views, PowerUpView{Rect: *rect, PowerUp: *powerUp})
	}
	return views
}

// Stars 返回背景星星
func (s *Session) Stars() []components.StarComponent {
	ids := ecs.GetEntitiesWith1[*components.StarComponent](s.entityManager)
	stars := make([]components.StarComponent, 0, len(ids))
	for _, id := range ids {
		star, _ := ecs.GetComponent[*components.StarComponent](s.entityManager, id)
		stars = append(stars, *star)
	}
	return stars
}

func (s *Session) player() *components.PlayerComponent {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerEntity)
	if !ok {
		return &components.PlayerComponent{}
	}
	return player
}

// Draw 按当前状态调用渲染后端
func (s *Session) Draw(r Renderer) {
	for _, star := range s.Stars() {
		r.RenderStar(star.X, star.Y, star.Size)
	}

	switch s.state {
	case StatePlaying:
		ghost := s.effects.IsGhost()
		for _, p := range s.PowerUps() {
			r.RenderPowerUp(p.Rect, p.PowerUp.Type, p.PowerUp.Angle, p.PowerUp.Hue)
		}
		for _, c := range s.Clouds() {
			r.RenderCloud(c.Rect, c.Cloud.Op, c.Cloud.Operand, ghost)
		}
		r.RenderShip(s.PlayerRect(), s.Score(), ghost, 1)
		r.RenderHUD(s.hudInfo())

	case StateTransitionToLanding:
		r.RenderShip(s.PlayerRect(), s.Score(), false, 1)

	case StateLandingScene:
		r.RenderLandingScene(s.landingInfo())

	case StateGameOver:
		for _, c := range s.Clouds() {
			r.RenderCloud(c.Rect, c.Cloud.Op, c.Cloud.Operand, false)
		}
		r.RenderShip(s.PlayerRect(), s.Score(), false, 1)
		r.RenderGameOver()
	}
}

func (s *Session) hudInfo() HUDInfo {
	timers := s.effects.Timers()
	return HUDInfo{
		Target:         s.cfg.Target,
		ActiveEffects:  timers.ActiveEffects(),
		PenaltyWarning: s.difficulty.IsAboveBase() && !timers.IsRapidFire(),
	}
}

func (s *Session) landingInfo() LandingInfo {
	player := s.player()
	descending := systems.IsDescending(player)
	reached := systems.HasReachedFlag(player)

	walkPhase := 0.0
	if !reached {
		walkPhase = player.FigureX * walkSwingFrequency
	}

	return LandingInfo{
		Score:       player.Score,
		LanderX:     config.LanderX,
		LanderY:     player.LanderY,
		LanderScale: config.LanderScale,
		Descending:  descending,
		DustActive:  descending && player.LanderY > config.LanderPadY-config.LanderDustRange,
		FigureX:     config.AstronautStartX + player.FigureX,
		FigureY:     config.FieldHeight - config.MoonSurfaceHeight,
		Walking:     !descending && !reached,
		ReachedFlag: reached,
		FlagX:       config.FlagX,
		SurfaceY:    config.FieldHeight - config.MoonSurfaceHeight,
		WalkPhase:   math.Mod(walkPhase, 2*math.Pi),
	}
}

// ResolveSeed 返回实际使用的随机种子（0 表示取当前时间）
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
