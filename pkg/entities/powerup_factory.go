package entities

import (
	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/ecs"
	"github.com/decker502/cosmiccalc/pkg/types"
)

// NewPowerUpEntity 创建一个道具实体（40x40）
//
// 返回: 创建的实体ID
func NewPowerUpEntity(manager *ecs.EntityManager, x, y float64, powerUpType types.PowerUpType) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.RectComponent{
		X:      x,
		Y:      y,
		Width:  config.PowerUpSize,
		Height: config.PowerUpSize,
	})

	manager.AddComponent(id, &components.PowerUpComponent{
		Type:  powerUpType,
		Angle: 0,
		Hue:   0,
	})

	return id
}
