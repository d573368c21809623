package entities

import (
	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/ecs"
	"github.com/decker502/cosmiccalc/pkg/types"
)

// CloudParams 描述一朵待创建的云朵
type CloudParams struct {
	X        float64
	Lane     int
	Op       types.Operation
	Operand  int
	BobPhase float64 // 漂浮初相位（弧度）
}

// NewCloudEntity 创建一个数学云朵实体
// 参数:
//   - manager: EntityManager 实例
//   - params: 云朵位置、跑道和运算
//   - clouds: 云朵配置（漂浮振幅和频率）
//
// 返回: 创建的实体ID
func NewCloudEntity(manager *ecs.EntityManager, params CloudParams, clouds config.CloudConfig) ecs.EntityID {
	id := manager.CreateEntity()
	laneY := config.GetLaneCloudY(params.Lane)

	manager.AddComponent(id, &components.RectComponent{
		X:      params.X,
		Y:      laneY,
		Width:  config.CloudWidth,
		Height: config.CloudHeight,
	})

	manager.AddComponent(id, &components.CloudComponent{
		Op:           params.Op,
		Operand:      params.Operand,
		Lane:         params.Lane,
		LaneY:        laneY,
		BobPhase:     params.BobPhase,
		BobAmplitude: clouds.BobAmplitude,
		BobFrequency: clouds.BobFrequency,
	})

	return id
}
