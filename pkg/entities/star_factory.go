package entities

import (
	"math/rand"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/ecs"
)

// NewStarField 创建背景星空
// 星星数量在一局中固定不变，位置、大小和速度随机
//
// 返回: 创建的实体ID列表
func NewStarField(manager *ecs.EntityManager, rng *rand.Rand, stars config.StarConfig) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, stars.Count)
	for i := 0; i < stars.Count; i++ {
		id := manager.CreateEntity()
		manager.AddComponent(id, &components.StarComponent{
			X:     float64(rng.Intn(config.GameWindowWidth + 1)),
			Y:     float64(rng.Intn(config.GameWindowHeight + 1)),
			Size:  float64(stars.MinSize + rng.Intn(stars.MaxSize-stars.MinSize+1)),
			Speed: stars.MinSpeed + rng.Float64()*(stars.MaxSpeed-stars.MinSpeed),
		})
		ids = append(ids, id)
	}
	return ids
}
