package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/ecs"
	"github.com/decker502/cosmiccalc/pkg/entities"
	"github.com/decker502/cosmiccalc/pkg/types"
)

// SpawnSystem 云墙和道具生成系统
//
// 云墙：每条跑道一朵云，运算随机（分数 > DivideUnlockScore 后才会出现除法）
// 道具：固定间隔生成一个，类型按权重表抽取（高速时换用高速表）
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	difficulty    *DifficultyEngine
	cfg           *config.GameplayConfig

	playerEntity ecs.EntityID

	cloudTimer   *components.TimerComponent
	powerUpTimer *components.TimerComponent
}

// NewSpawnSystem 创建生成系统
// 计时器从 0 开始，第一面云墙由 SpawnInitialWall 负责
func NewSpawnSystem(em *ecs.EntityManager, rng *rand.Rand, difficulty *DifficultyEngine, cfg *config.GameplayConfig, playerEntity ecs.EntityID) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		rng:           rng,
		difficulty:    difficulty,
		cfg:           cfg,
		playerEntity:  playerEntity,
		cloudTimer:    &components.TimerComponent{Interval: cfg.Spawn.CloudInterval},
		powerUpTimer:  &components.TimerComponent{Interval: cfg.Spawn.PowerUpInterval},
	}
}

// Update 推进生成计时器
//
// 参数:
//
//	cloudInterval - 本帧生效的云墙间隔（极速模式下更短）
//
// 计时器达到间隔时生成并归零。
func (s *SpawnSystem) Update(cloudInterval int) {
	s.cloudTimer.Interval = cloudInterval
	if s.cloudTimer.Tick() {
		s.SpawnCloudWall(0)
	}

	if s.powerUpTimer.Tick() {
		s.SpawnPowerUp()
	}
}

// SpawnInitialWall 生成开局的第一面云墙（额外偏移 InitialWallOffset）
func (s *SpawnSystem) SpawnInitialWall() []ecs.EntityID {
	return s.SpawnCloudWall(s.cfg.Spawn.InitialWallOffset)
}

// SpawnCloudWall 生成一面云墙，每条跑道一朵
// 云朵 X = 场地宽度 + WallDistance + xOffset
//
// 返回: 新建的云朵实体ID（按跑道顺序）
func (s *SpawnSystem) SpawnCloudWall(xOffset float64) []ecs.EntityID {
	x := config.FieldWidth + s.cfg.Spawn.WallDistance + xOffset
	ops := s.availableOperations()

	ids := make([]ecs.EntityID, 0, config.LaneCount)
	for lane := 0; lane < config.LaneCount; lane++ {
		op := ops[s.rng.Intn(len(ops))]
		id := entities.NewCloudEntity(s.entityManager, entities.CloudParams{
			X:        x,
			Lane:     lane,
			Op:       op,
			Operand:  s.rollOperand(op),
			BobPhase: s.rng.Float64() * 2 * math.Pi,
		}, s.cfg.Clouds)
		ids = append(ids, id)
	}

	log.Printf("[SpawnSystem] Cloud wall spawned at x=%.0f", x)
	return ids
}

// availableOperations 当前可以出现的运算
// 分数严格大于 DivideUnlockScore 时追加 UnlockedOperations（默认为除法）
func (s *SpawnSystem) availableOperations() []types.Operation {
	ops := append([]types.Operation(nil), s.cfg.Clouds.Operations...)
	if s.currentScore() > s.cfg.Clouds.DivideUnlockScore {
		ops = append(ops, s.cfg.Clouds.UnlockedOperations...)
	}
	return ops
}

// rollOperand 抽取操作数：乘法用 [MultiplyMin, MultiplyMax]，其余用 [OperandMin, OperandMax]
func (s *SpawnSystem) rollOperand(op types.Operation) int {
	lo, hi := s.cfg.Clouds.OperandMin, s.cfg.Clouds.OperandMax
	if op == types.OpMultiply {
		lo, hi = s.cfg.Clouds.MultiplyMin, s.cfg.Clouds.MultiplyMax
	}
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *SpawnSystem) currentScore() int {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerEntity)
	if !ok {
		return 0
	}
	return player.Score
}

// SpawnPowerUp 在场地右侧随机高度生成一个道具
func (s *SpawnSystem) SpawnPowerUp() ecs.EntityID {
	x := config.FieldWidth + s.cfg.Spawn.PowerUpDistance
	minY := config.PowerUpMinY
	maxY := config.GameWindowHeight - config.PowerUpMinY
	y := float64(minY + s.rng.Intn(maxY-minY+1))

	powerUpType := s.RollPowerUpType()
	id := entities.NewPowerUpEntity(s.entityManager, x, y, powerUpType)
	log.Printf("[SpawnSystem] Power-up %s spawned at (%.0f, %.0f)", powerUpType, x, y)
	return id
}

// RollPowerUpType 按权重抽取道具类型
// 难度速度超过 BaseSpeed * HighSpeedFactor 时使用高速权重表
func (s *SpawnSystem) RollPowerUpType() types.PowerUpType {
	weights := s.cfg.PowerUpWeights.Normal
	if s.difficulty.IsHighSpeed() {
		weights = s.cfg.PowerUpWeights.HighSpeed
	}
	return rollWeighted(s.rng, weights)
}

// rollWeighted 累积权重抽取
func rollWeighted(rng *rand.Rand, weights []config.PowerUpWeight) types.PowerUpType {
	totalWeight := config.TotalWeight(weights)
	if totalWeight <= 0 {
		return weights[0].Type // fallback
	}

	roll := rng.Intn(totalWeight)
	cumulative := 0
	for _, entry := range weights {
		cumulative += entry.Weight
		if roll < cumulative {
			return entry.Type
		}
	}

	return weights[len(weights)-1].Type // fallback
}
