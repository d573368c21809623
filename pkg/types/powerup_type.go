package types

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// PowerUpType 定义道具的类型
type PowerUpType int

const (
	// PowerUpSlowMotion 慢动作：滚动速度减半
	PowerUpSlowMotion PowerUpType = iota
	// PowerUpRoundNum 取整：立即把难度速度恢复到基础速度（非计时效果）
	PowerUpRoundNum
	// PowerUpGhost 幽灵：云朵穿身而过，不计分
	PowerUpGhost
	// PowerUpInvertControls 混乱：上下操作颠倒
	PowerUpInvertControls
	// PowerUpRapidFire 极速：固定高速滚动并加快云墙生成
	PowerUpRapidFire
)

// AllPowerUpTypes 按声明顺序列出所有道具类型
var AllPowerUpTypes = []PowerUpType{
	PowerUpSlowMotion,
	PowerUpRoundNum,
	PowerUpGhost,
	PowerUpInvertControls,
	PowerUpRapidFire,
}

// String 返回道具类型的字符串表示（与配置文件中的写法一致）
func (p PowerUpType) String() string {
	switch p {
	case PowerUpSlowMotion:
		return "slow_motion"
	case PowerUpRoundNum:
		return "round_num"
	case PowerUpGhost:
		return "ghost"
	case PowerUpInvertControls:
		return "invert_controls"
	case PowerUpRapidFire:
		return "rapid_fire"
	default:
		return "unknown"
	}
}

// Label 返回道具的短标签（渲染用）
func (p PowerUpType) Label() string {
	switch p {
	case PowerUpSlowMotion:
		return "SLOW"
	case PowerUpRoundNum:
		return "FIX"
	case PowerUpGhost:
		return "GHOST"
	case PowerUpInvertControls:
		return "CONFUSION"
	case PowerUpRapidFire:
		return "RAPID"
	default:
		return "?"
	}
}

// ParsePowerUpType 将配置中的字符串解析为道具类型
func ParsePowerUpType(s string) (PowerUpType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, t := range AllPowerUpTypes {
		if t.String() == key || strings.ToLower(t.Label()) == key {
			return t, nil
		}
	}
	return PowerUpSlowMotion, fmt.Errorf("unknown power-up type %q", s)
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (p *PowerUpType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	t, err := ParsePowerUpType(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = t
	return nil
}
