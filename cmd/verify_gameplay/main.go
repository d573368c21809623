// verify_gameplay 无界面运行一局游戏，由自动驾驶操控飞船
//
// 用于回归验证：相同的种子必须得到相同的流程。
// 打印分数变化、状态切换和道具效果，目标达成并走到旗帜时返回 0。
//
// 用法:
//
//	go run ./cmd/verify_gameplay --seed 42 --frames 36000 [--config path] [--verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/cosmiccalc/internal/autopilot"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/game"
)

var (
	seed       = flag.Int64("seed", 42, "随机种子")
	frames     = flag.Int("frames", 60*60*10, "最多模拟的帧数")
	configPath = flag.String("config", "", "玩法配置文件路径（默认使用仓库中的 data/gameplay.yaml）")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	path := *configPath
	if path == "" {
		path = config.DefaultGameplayConfigPath
	}
	cfg, err := config.LoadGameplayConfigFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	result := simulate(cfg, *seed, *frames)
	result.print()

	if !result.reachedFlag {
		os.Exit(1)
	}
}

// report 一次模拟的统计
type report struct {
	seed        int64
	frames      int
	finalScore  int
	scoreSteps  int
	landingAt   int // 进入着陆转场的帧号，-1 表示未到达
	reachedFlag bool
	maxSpeed    float64
	effects     map[string]int
}

func simulate(cfg *config.GameplayConfig, seed int64, maxFrames int) report {
	session := game.NewSession(cfg, rand.New(rand.NewSource(seed)))
	pilot := autopilot.New(cfg.Player.Speed)

	r := report{seed: seed, landingAt: -1, effects: make(map[string]int)}
	lastScore := session.Score()
	lastState := session.State()
	lastActive := map[string]bool{}

	for frame := 0; frame < maxFrames; frame++ {
		session.Update(pilot.Input(session))
		r.frames = frame + 1

		if score := session.Score(); score != lastScore {
			fmt.Printf("[%6d] score %d -> %d\n", frame, lastScore, score)
			lastScore = score
			r.scoreSteps++
		}
		if speed := session.DifficultySpeed(); speed > r.maxSpeed {
			r.maxSpeed = speed
		}

		effects := session.Effects()
		active := map[string]bool{}
		for _, t := range effects.ActiveEffects() {
			name := t.String()
			active[name] = true
			if !lastActive[name] {
				fmt.Printf("[%6d] effect %s\n", frame, name)
				r.effects[name]++
			}
		}
		lastActive = active

		if state := session.State(); state != lastState {
			fmt.Printf("[%6d] state %s -> %s\n", frame, lastState, state)
			if state == game.StateTransitionToLanding {
				r.landingAt = frame
			}
			lastState = state
		}

		if session.State() == game.StateLandingScene && landed(session) {
			r.reachedFlag = true
			break
		}
	}

	r.finalScore = session.Score()
	return r
}

// landed 检查宇航员是否已经走到旗帜
// 终局状态由 Draw 给出的着陆信息判断
func landed(session *game.Session) bool {
	recorder := &landingRecorder{}
	session.Draw(recorder)
	return recorder.reached
}

func (r report) print() {
	fmt.Println("----------------------------------------")
	fmt.Printf("seed:        %d\n", r.seed)
	fmt.Printf("frames:      %d (%.1fs)\n", r.frames, float64(r.frames)/config.TargetFPS)
	fmt.Printf("final score: %d (%d changes)\n", r.finalScore, r.scoreSteps)
	fmt.Printf("max speed:   %.2f\n", r.maxSpeed)
	for name, count := range r.effects {
		fmt.Printf("effect:      %-16s x%d\n", name, count)
	}
	if r.landingAt >= 0 {
		fmt.Printf("✅ target reached at frame %d\n", r.landingAt)
	} else {
		fmt.Println("❌ target not reached")
	}
	if r.reachedFlag {
		fmt.Println("✅ astronaut reached the flag")
	}
}
