package config

import (
	"fmt"
	"os"

	"github.com/decker502/cosmiccalc/pkg/embedded"
	"github.com/decker502/cosmiccalc/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultGameplayConfigPath 是内嵌玩法配置的路径
const DefaultGameplayConfigPath = "data/gameplay.yaml"

// GameplayConfig 玩法配置
//
// 包含滚动速度、生成频率、道具持续时间和权重等可调参数。
// 所有时间单位都是帧（60 FPS）。
//
// 配置文件位置: data/gameplay.yaml
type GameplayConfig struct {
	// Target 目标分数，分数恰好等于目标时进入着陆流程
	Target int `yaml:"target"`

	Player         PlayerConfig         `yaml:"player"`
	Scroll         ScrollConfig         `yaml:"scroll"`
	Spawn          SpawnConfig          `yaml:"spawn"`
	Clouds         CloudConfig          `yaml:"clouds"`
	Effects        EffectConfig         `yaml:"effects"`
	PowerUpWeights PowerUpWeightsConfig `yaml:"powerUpWeights"`
	Stars          StarConfig           `yaml:"stars"`
	Landing        LandingConfig        `yaml:"landing"`
}

// PlayerConfig 飞船操控配置
type PlayerConfig struct {
	// Speed 每帧上下移动的像素数
	Speed float64 `yaml:"speed"`
}

// ScrollConfig 滚动速度与难度反馈配置
type ScrollConfig struct {
	// BaseSpeed 基础滚动速度（难度速度的初始值，也是取整道具的恢复值）
	BaseSpeed float64 `yaml:"baseSpeed"`

	// MaxSpeed 难度速度上限
	MaxSpeed float64 `yaml:"maxSpeed"`

	// PenaltyFactor 出现小数惩罚时难度速度的乘数
	PenaltyFactor float64 `yaml:"penaltyFactor"`

	// HighSpeedFactor 难度速度超过 BaseSpeed*HighSpeedFactor 时使用高速道具权重表
	HighSpeedFactor float64 `yaml:"highSpeedFactor"`
}

// SpawnConfig 生成器配置
type SpawnConfig struct {
	// CloudInterval 云墙生成间隔（帧）
	CloudInterval int `yaml:"cloudInterval"`

	// RapidCloudInterval 极速状态下的云墙生成间隔（帧）
	RapidCloudInterval int `yaml:"rapidCloudInterval"`

	// PowerUpInterval 道具生成间隔（帧）
	PowerUpInterval int `yaml:"powerUpInterval"`

	// WallDistance 云墙生成位置在场地右边缘之外的距离
	WallDistance float64 `yaml:"wallDistance"`

	// InitialWallOffset 重置时第一堵云墙额外的偏移
	InitialWallOffset float64 `yaml:"initialWallOffset"`

	// PowerUpDistance 道具生成位置在场地右边缘之外的距离
	PowerUpDistance float64 `yaml:"powerUpDistance"`
}

// CloudConfig 云朵配置
type CloudConfig struct {
	// OperandMin / OperandMax 加减除的操作数范围（闭区间）
	OperandMin int `yaml:"operandMin"`
	OperandMax int `yaml:"operandMax"`

	// MultiplyMin / MultiplyMax 乘法的操作数范围（闭区间）
	MultiplyMin int `yaml:"multiplyMin"`
	MultiplyMax int `yaml:"multiplyMax"`

	// Operations 云朵的基础候选运算（YAML 中写名称或符号，如 add / "+"）
	Operations []types.Operation `yaml:"operations"`

	// UnlockedOperations 分数超过 DivideUnlockScore 后追加的候选运算
	UnlockedOperations []types.Operation `yaml:"unlockedOperations"`

	// DivideUnlockScore 分数超过该值后 UnlockedOperations（默认只有除法）加入候选运算
	DivideUnlockScore int `yaml:"divideUnlockScore"`

	// BobAmplitude 上下漂浮的振幅（像素）
	BobAmplitude float64 `yaml:"bobAmplitude"`

	// BobFrequency 漂浮角频率（弧度/毫秒）
	BobFrequency float64 `yaml:"bobFrequency"`
}

// EffectConfig 计时道具配置
type EffectConfig struct {
	SlowMotionFrames int `yaml:"slowMotionFrames"`
	GhostFrames      int `yaml:"ghostFrames"`
	InvertFrames     int `yaml:"invertFrames"`
	RapidFireFrames  int `yaml:"rapidFireFrames"`

	// SlowMotionFactor 慢动作时的速度乘数
	SlowMotionFactor float64 `yaml:"slowMotionFactor"`

	// RapidFireSpeed 极速状态下的固定滚动速度
	RapidFireSpeed float64 `yaml:"rapidFireSpeed"`
}

// PowerUpWeightsConfig 道具权重表
//
// 按难度速度选择使用哪张表；表内按顺序累积权重。
type PowerUpWeightsConfig struct {
	Normal    []PowerUpWeight `yaml:"normal"`
	HighSpeed []PowerUpWeight `yaml:"highSpeed"`
}

// PowerUpWeight 单个道具类型的权重
type PowerUpWeight struct {
	Type   types.PowerUpType `yaml:"type"`
	Weight int               `yaml:"weight"`
}

// StarConfig 背景星星配置
type StarConfig struct {
	Count    int     `yaml:"count"`
	MinSize  int     `yaml:"minSize"`
	MaxSize  int     `yaml:"maxSize"`
	MinSpeed float64 `yaml:"minSpeed"`
	MaxSpeed float64 `yaml:"maxSpeed"`
}

// LandingConfig 着陆流程配置
type LandingConfig struct {
	// ExitSpeed 过场阶段飞船每帧向右移动的像素数
	ExitSpeed float64 `yaml:"exitSpeed"`

	// DescentSpeed 着陆舱每帧下降的像素数
	DescentSpeed float64 `yaml:"descentSpeed"`

	// WalkSpeed 宇航员每帧行走的像素数
	WalkSpeed float64 `yaml:"walkSpeed"`
}

// DefaultGameplayConfig 返回默认玩法配置（与 data/gameplay.yaml 一致）
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Target: 50,
		Player: PlayerConfig{Speed: 9},
		Scroll: ScrollConfig{
			BaseSpeed:       5,
			MaxSpeed:        18,
			PenaltyFactor:   1.2,
			HighSpeedFactor: 1.5,
		},
		Spawn: SpawnConfig{
			CloudInterval:      160,
			RapidCloudInterval: 40,
			PowerUpInterval:    600,
			WallDistance:       100,
			InitialWallOffset:  200,
			PowerUpDistance:    50,
		},
		Clouds: CloudConfig{
			OperandMin:         1,
			OperandMax:         9,
			MultiplyMin:        2,
			MultiplyMax:        4,
			Operations:         []types.Operation{types.OpAdd, types.OpSubtract, types.OpMultiply},
			UnlockedOperations: []types.Operation{types.OpDivide},
			DivideUnlockScore:  10,
			BobAmplitude:       40,
			BobFrequency:       0.002,
		},
		Effects: EffectConfig{
			SlowMotionFrames: 600,
			GhostFrames:      300,
			InvertFrames:     300,
			RapidFireFrames:  300,
			SlowMotionFactor: 0.5,
			RapidFireSpeed:   12,
		},
		PowerUpWeights: PowerUpWeightsConfig{
			Normal: []PowerUpWeight{
				{Type: types.PowerUpSlowMotion, Weight: 25},
				{Type: types.PowerUpRoundNum, Weight: 25},
				{Type: types.PowerUpGhost, Weight: 20},
				{Type: types.PowerUpInvertControls, Weight: 20},
				{Type: types.PowerUpRapidFire, Weight: 10},
			},
			HighSpeed: []PowerUpWeight{
				{Type: types.PowerUpRoundNum, Weight: 50},
				{Type: types.PowerUpSlowMotion, Weight: 20},
				{Type: types.PowerUpGhost, Weight: 15},
				{Type: types.PowerUpInvertControls, Weight: 15},
			},
		},
		Stars: StarConfig{
			Count:    120,
			MinSize:  1,
			MaxSize:  3,
			MinSpeed: 0.5,
			MaxSpeed: 2,
		},
		Landing: LandingConfig{
			ExitSpeed:    10,
			DescentSpeed: 3,
			WalkSpeed:    2,
		},
	}
}

// LoadGameplayConfig 从内嵌资源加载玩法配置
//
// 参数:
//   - path: 内嵌路径（如 "data/gameplay.yaml"）
//
// 返回:
//   - *GameplayConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config %s: %w", path, err)
	}
	cfg, err := ParseGameplayConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadGameplayConfigFile 从磁盘加载玩法配置（--config 覆盖用）
func LoadGameplayConfigFile(path string) (*GameplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config file: %w", err)
	}
	cfg, err := ParseGameplayConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameplayConfig 解析 YAML 格式的玩法配置
//
// 未出现在 YAML 中的字段保留默认值，因此覆盖文件只需写出要修改的部分。
// 权重表一旦出现就整体替换。
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *GameplayConfig) Validate() error {
	if c.Target < 0 {
		return fmt.Errorf("target must be >= 0, got %d", c.Target)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("player.speed must be positive, got %.2f", c.Player.Speed)
	}

	// 滚动速度
	if c.Scroll.BaseSpeed <= 0 {
		return fmt.Errorf("scroll.baseSpeed must be positive, got %.2f", c.Scroll.BaseSpeed)
	}
	if c.Scroll.MaxSpeed < c.Scroll.BaseSpeed {
		return fmt.Errorf("scroll.maxSpeed(%.2f) < scroll.baseSpeed(%.2f)", c.Scroll.MaxSpeed, c.Scroll.BaseSpeed)
	}
	if c.Scroll.PenaltyFactor < 1 {
		return fmt.Errorf("scroll.penaltyFactor must be >= 1, got %.2f", c.Scroll.PenaltyFactor)
	}
	if c.Scroll.HighSpeedFactor <= 0 {
		return fmt.Errorf("scroll.highSpeedFactor must be positive, got %.2f", c.Scroll.HighSpeedFactor)
	}

	// 生成间隔
	if c.Spawn.CloudInterval <= 0 || c.Spawn.RapidCloudInterval <= 0 || c.Spawn.PowerUpInterval <= 0 {
		return fmt.Errorf("spawn intervals must be positive (cloud=%d, rapid=%d, powerUp=%d)",
			c.Spawn.CloudInterval, c.Spawn.RapidCloudInterval, c.Spawn.PowerUpInterval)
	}

	// 操作数范围
	if c.Clouds.OperandMin < 1 || c.Clouds.OperandMin > c.Clouds.OperandMax {
		return fmt.Errorf("clouds operand range invalid: min(%d) max(%d)", c.Clouds.OperandMin, c.Clouds.OperandMax)
	}
	if c.Clouds.MultiplyMin < 1 || c.Clouds.MultiplyMin > c.Clouds.MultiplyMax {
		return fmt.Errorf("clouds multiply range invalid: min(%d) max(%d)", c.Clouds.MultiplyMin, c.Clouds.MultiplyMax)
	}
	if len(c.Clouds.Operations) == 0 {
		return fmt.Errorf("clouds.operations cannot be empty")
	}
	if c.Clouds.BobAmplitude <= 0 || c.Clouds.BobFrequency <= 0 {
		return fmt.Errorf("clouds bob amplitude/frequency must be positive (amplitude=%.2f, frequency=%.4f)",
			c.Clouds.BobAmplitude, c.Clouds.BobFrequency)
	}

	// 计时道具
	if c.Effects.SlowMotionFrames < 0 || c.Effects.GhostFrames < 0 ||
		c.Effects.InvertFrames < 0 || c.Effects.RapidFireFrames < 0 {
		return fmt.Errorf("effect durations cannot be negative")
	}
	if c.Effects.SlowMotionFactor <= 0 {
		return fmt.Errorf("effects.slowMotionFactor must be positive, got %.2f", c.Effects.SlowMotionFactor)
	}
	if c.Effects.RapidFireSpeed <= 0 {
		return fmt.Errorf("effects.rapidFireSpeed must be positive, got %.2f", c.Effects.RapidFireSpeed)
	}

	// 权重表
	if err := validateWeights("normal", c.PowerUpWeights.Normal); err != nil {
		return err
	}
	if err := validateWeights("highSpeed", c.PowerUpWeights.HighSpeed); err != nil {
		return err
	}

	// 星星
	if c.Stars.Count < 0 {
		return fmt.Errorf("stars.count cannot be negative, got %d", c.Stars.Count)
	}
	if c.Stars.MinSize > c.Stars.MaxSize || c.Stars.MinSpeed > c.Stars.MaxSpeed {
		return fmt.Errorf("stars size/speed range invalid")
	}

	if c.Landing.ExitSpeed <= 0 || c.Landing.DescentSpeed <= 0 || c.Landing.WalkSpeed <= 0 {
		return fmt.Errorf("landing speeds must be positive")
	}

	return nil
}

func validateWeights(name string, weights []PowerUpWeight) error {
	total := 0
	for _, w := range weights {
		if w.Weight < 0 {
			return fmt.Errorf("powerUpWeights.%s: weight for %s cannot be negative, got %d", name, w.Type, w.Weight)
		}
		total += w.Weight
	}
	if total <= 0 {
		return fmt.Errorf("powerUpWeights.%s: total weight must be positive", name)
	}
	return nil
}

// TotalWeight 返回权重表的权重总和
func TotalWeight(weights []PowerUpWeight) int {
	total := 0
	for _, w := range weights {
		total += w.Weight
	}
	return total
}

// LoadGameplay 按命令行参数加载玩法配置
// path 为空时读取内嵌的默认配置，否则读取磁盘文件
func LoadGameplay(path string) (*GameplayConfig, error) {
	if path == "" {
		return LoadGameplayConfig(DefaultGameplayConfigPath)
	}
	return LoadGameplayConfigFile(path)
}
