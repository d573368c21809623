package systems

import (
	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/ecs"
)

// BoundarySystem 回收完全离开左边界的云朵和道具
type BoundarySystem struct {
	entityManager *ecs.EntityManager
}

// NewBoundarySystem 创建边界回收系统
func NewBoundarySystem(em *ecs.EntityManager) *BoundarySystem {
	return &BoundarySystem{
		entityManager: em,
	}
}

// Update 标记离场实体待删除
// 返回本帧标记的实体数量
func (s *BoundarySystem) Update() int {
	removed := 0

	clouds := ecs.GetEntitiesWith2[*components.RectComponent, *components.CloudComponent](s.entityManager)
	powerUps := ecs.GetEntitiesWith2[*components.RectComponent, *components.PowerUpComponent](s.entityManager)

	for _, id := range append(clouds, powerUps...) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		if rect.IsOffLeft() {
			s.entityManager.DestroyEntity(id)
			removed++
		}
	}

	return removed
}
