// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Operation 定义数学云朵携带的运算类型
type Operation int

const (
	// OpAdd 加法
	OpAdd Operation = iota
	// OpSubtract 减法
	OpSubtract
	// OpMultiply 乘法
	OpMultiply
	// OpDivide 除法（分数超过 10 之后才会出现）
	OpDivide
)

// String 返回运算类型的字符串表示
func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// Symbol 返回云朵上显示的运算符号
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "x"
	case OpDivide:
		return ":"
	default:
		return "?"
	}
}

// ParseOperation 将配置中的字符串解析为运算类型
// 同时接受名称（"add"）和符号（"+"）
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return OpAdd, nil
	case "subtract", "-":
		return OpSubtract, nil
	case "multiply", "x", "*":
		return OpMultiply, nil
	case "divide", ":", "/":
		return OpDivide, nil
	}
	return OpAdd, fmt.Errorf("unknown operation %q", s)
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (o *Operation) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	op, err := ParseOperation(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*o = op
	return nil
}
