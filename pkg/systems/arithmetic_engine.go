package systems

import (
	"math"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/types"
)

// ApplyOperation 把云朵的运算应用到分数上
//
// 规则:
//   - 除数为 0 时不做任何改变，也不算惩罚
//   - 结果为负时截断为 0，超过 config.MaxScore 时截断为 MaxScore
//   - 截断后的结果不是整数时视为"小数惩罚"
//   - 最终分数四舍六入五成双（math.RoundToEven）
//
// 参数:
//
//	score - 当前分数
//	op - 运算类型
//	operand - 操作数
//
// 返回:
//
//	新分数, 是否出现小数惩罚
func ApplyOperation(score int, op types.Operation, operand int) (int, bool) {
	result := float64(score)

	switch op {
	case types.OpAdd:
		result += float64(operand)
	case types.OpSubtract:
		result -= float64(operand)
	case types.OpMultiply:
		result *= float64(operand)
	case types.OpDivide:
		if operand == 0 {
			return score, false
		}
		result /= float64(operand)
	default:
		return score, false
	}

	if result < 0 {
		result = 0
	}
	if result > config.MaxScore {
		result = config.MaxScore
	}

	penalty := result != math.Trunc(result)
	return int(math.RoundToEven(result)), penalty
}

// Calculate 对玩家分数执行运算并原地更新
// 返回是否出现小数惩罚（用于难度速度反馈）
func Calculate(player *components.PlayerComponent, op types.Operation, operand int) bool {
	newScore, penalty := ApplyOperation(player.Score, op, operand)
	player.Score = newScore
	return penalty
}
