// cosmiccalc-term 在终端里运行 Cosmic Calculator
//
// 用法:
//
//	go run ./cmd/cosmiccalc-term [--seed N] [--config path] [--log file]
//
// 操作: 方向键或 W/S 上下移动，空格重新开始，Q/Esc 退出
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cosmiccalc/internal/terminal"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/embedded"
	"github.com/decker502/cosmiccalc/pkg/game"
)

var (
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	configPath = flag.String("config", "", "玩法配置文件路径（默认使用内嵌的 data/gameplay.yaml）")
	logPath    = flag.String("log", "", "日志文件路径（终端被游戏占用，日志默认丢弃）")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cosmiccalc-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	closeLog, err := setupLog(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	embedded.Init(dataFS)

	gameplay, err := config.LoadGameplay(*configPath)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("创建终端失败: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("初始化终端失败: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	actualSeed := game.ResolveSeed(*seed)
	log.Printf("[Terminal] Random seed: %d", actualSeed)

	session := game.NewSession(gameplay, rand.New(rand.NewSource(actualSeed)))
	if err := terminal.NewRunner(screen, session).Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// setupLog 把日志写到文件，未指定时丢弃
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("打开日志文件失败: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
