package systems

import (
	"log"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/ecs"
)

// DifficultyEngine 难度引擎
// 负责难度速度的反馈回路：小数惩罚让速度上升，取整道具让速度复位
type DifficultyEngine struct {
	entityManager *ecs.EntityManager
	scroll        config.ScrollConfig

	// difficultyEntity 保存 DifficultyComponent 的实体
	difficultyEntity ecs.EntityID
}

// NewDifficultyEngine 创建新的难度引擎实例
// 难度速度从基础滚动速度开始
func NewDifficultyEngine(em *ecs.EntityManager, scroll config.ScrollConfig) *DifficultyEngine {
	d := &DifficultyEngine{
		entityManager: em,
		scroll:        scroll,
	}
	d.difficultyEntity = em.CreateEntity()
	em.AddComponent(d.difficultyEntity, &components.DifficultyComponent{Speed: scroll.BaseSpeed})
	return d
}

func (d *DifficultyEngine) component() *components.DifficultyComponent {
	comp, ok := ecs.GetComponent[*components.DifficultyComponent](d.entityManager, d.difficultyEntity)
	if !ok {
		// 实体被意外删除时重新挂载，保证速度始终可读
		comp = &components.DifficultyComponent{Speed: d.scroll.BaseSpeed}
		d.entityManager.AddComponent(d.difficultyEntity, comp)
	}
	return comp
}

// Speed 返回当前难度速度
func (d *DifficultyEngine) Speed() float64 {
	return d.component().Speed
}

// SetSpeed 直接设置难度速度（不超过 MaxSpeed）
func (d *DifficultyEngine) SetSpeed(speed float64) {
	d.component().Speed = d.clamp(speed)
}

// BaseSpeed 返回基础滚动速度
func (d *DifficultyEngine) BaseSpeed() float64 {
	return d.scroll.BaseSpeed
}

// ApplyPenalty 小数惩罚：速度乘以 PenaltyFactor，上限 MaxSpeed
// 公式: speed = min(speed * 1.2, 18)
//
// 返回:
//
//	惩罚后的难度速度
func (d *DifficultyEngine) ApplyPenalty() float64 {
	comp := d.component()
	comp.Speed = d.clamp(comp.Speed * d.scroll.PenaltyFactor)
	log.Printf("[DifficultyEngine] Decimal penalty, speed -> %.2f", comp.Speed)
	return comp.Speed
}

// ResetSpeed 把难度速度恢复到基础速度（取整道具）
func (d *DifficultyEngine) ResetSpeed() {
	d.component().Speed = d.scroll.BaseSpeed
	log.Printf("[DifficultyEngine] Speed reset to base %.2f", d.scroll.BaseSpeed)
}

// IsAboveBase 难度速度是否高于基础速度（HUD 显示加速警告）
func (d *DifficultyEngine) IsAboveBase() bool {
	return d.Speed() > d.scroll.BaseSpeed
}

// IsHighSpeed 难度速度是否超过 BaseSpeed * HighSpeedFactor
// 高速时道具权重切换到高速表（不再出现极速道具）
func (d *DifficultyEngine) IsHighSpeed() bool {
	return d.Speed() > d.scroll.BaseSpeed*d.scroll.HighSpeedFactor
}

func (d *DifficultyEngine) clamp(speed float64) float64 {
	if speed > d.scroll.MaxSpeed {
		return d.scroll.MaxSpeed
	}
	if speed < 0 {
		return 0
	}
	return speed
}
