package entities

import (
	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/ecs"
)

// NewPlayerEntity 创建玩家飞船实体
// 飞船从场地左侧垂直居中的位置出发，分数为 0
//
// 返回: 创建的实体ID
func NewPlayerEntity(manager *ecs.EntityManager) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.RectComponent{
		X:      config.PlayerStartX,
		Y:      config.FieldHeight / 2,
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
	})

	manager.AddComponent(id, &components.PlayerComponent{
		Score:   0,
		LanderY: config.LanderStartY,
		FigureX: 0,
	})

	return id
}
