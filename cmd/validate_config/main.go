// validate_config 检查玩法配置文件能否被解析并通过校验
//
// 用法:
//
//	go run ./cmd/validate_config [path ...]
//
// 不带参数时检查 data/ 下所有 *.yaml。
// data/ 下的路径通过 embedded 读取，其他路径直接读磁盘。
package main

import (
	"fmt"
	"os"

	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/embedded"
)

const dataPattern = "data/*.yaml"

func main() {
	embedded.Init(os.DirFS("."))

	paths, err := collectPaths(os.Args[1:])
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, path := range paths {
		if !validate(path) {
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("❌ %d 个配置文件未通过校验\n", failed)
		os.Exit(1)
	}
}

// collectPaths 没有参数时展开 data/*.yaml
func collectPaths(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	matches, err := embedded.Glob(dataPattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dataPattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no config files match %s", dataPattern)
	}
	return matches, nil
}

// load data/ 下存在的文件走 embedded，其余按磁盘路径读取
func load(path string) (*config.GameplayConfig, error) {
	if embedded.Exists(path) {
		return config.LoadGameplayConfig(path)
	}
	return config.LoadGameplayConfigFile(path)
}

func validate(path string) bool {
	cfg, err := load(path)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", path, err)
		return false
	}

	fmt.Printf("✅ %s 格式正确\n", path)
	fmt.Printf("   目标分数: %d\n", cfg.Target)
	fmt.Printf("   滚动速度: %.1f -> %.1f（惩罚系数 %.2f）\n",
		cfg.Scroll.BaseSpeed, cfg.Scroll.MaxSpeed, cfg.Scroll.PenaltyFactor)
	fmt.Printf("   云朵运算: %v（解锁 %v）\n", cfg.Clouds.Operations, cfg.Clouds.UnlockedOperations)
	fmt.Printf("   道具权重: 普通 %d 项 / 高速 %d 项（总权重 %d / %d）\n",
		len(cfg.PowerUpWeights.Normal), len(cfg.PowerUpWeights.HighSpeed),
		config.TotalWeight(cfg.PowerUpWeights.Normal), config.TotalWeight(cfg.PowerUpWeights.HighSpeed))
	return true
}
