package terminal

import (
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/game"
	"github.com/decker502/cosmiccalc/pkg/types"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// newTestScreen 创建 100x35 的模拟终端（每格 10x20 逻辑像素）
func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	screen.SetSize(100, 35)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText 读取一行字符
func rowText(screen tcell.Screen, row int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for col := 0; col < cols; col++ {
		ch, _, _, _ := screen.GetContent(col, row)
		if ch == 0 {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func TestCellRenderer_ToCell(t *testing.T) {
	screen := newTestScreen(t)
	r := NewCellRenderer(screen)
	r.Begin()

	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"原点", 0, 0, 0, 0},
		{"中心", 500, 350, 50, 17},
		{"右下角", 999, 699, 99, 34},
		{"场地外", 1300, 100, 130, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := r.ToCell(tt.x, tt.y)
			if col != tt.col || row != tt.row {
				t.Errorf("ToCell(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
			}
		})
	}
}

func TestCellRenderer_RenderCloud(t *testing.T) {
	screen := newTestScreen(t)
	r := NewCellRenderer(screen)
	r.Begin()

	rect := components.RectComponent{X: 100, Y: 100, Width: 200, Height: 100}
	r.RenderCloud(rect, types.OpAdd, 5, false)

	// 中心 (200, 150) -> (20, 7)，"+ 5" 从第 19 列开始
	if got := rowText(screen, 7)[19:22]; got != "+ 5" {
		t.Errorf("cloud label = %q, want %q", got, "+ 5")
	}
	if ch, _, _, _ := screen.GetContent(10, 5); ch != '░' {
		t.Errorf("cloud body at (10,5) = %q, want '░'", ch)
	}
	if ch, _, _, _ := screen.GetContent(30, 5); ch == '░' {
		t.Error("cloud body should not extend past its right edge")
	}
}

func TestCellRenderer_OffscreenIsClipped(t *testing.T) {
	screen := newTestScreen(t)
	r := NewCellRenderer(screen)
	r.Begin()

	// 初始云墙在场地右侧之外，绘制时不应越界
	rect := components.RectComponent{X: 1300, Y: 0, Width: 120, Height: 80}
	r.RenderCloud(rect, types.OpMultiply, 3, true)

	for row := 0; row < 35; row++ {
		if strings.ContainsRune(rowText(screen, row), '░') {
			t.Fatalf("row %d contains an off-screen cloud", row)
		}
	}
}

func TestCellRenderer_RenderShipScore(t *testing.T) {
	screen := newTestScreen(t)
	r := NewCellRenderer(screen)
	r.Begin()

	rect := components.RectComponent{X: 100, Y: 300, Width: 100, Height: 60}
	r.RenderShip(rect, 42, false, 1)

	_, mid := r.ToCell(rect.CenterX(), rect.CenterY())
	if !strings.Contains(rowText(screen, mid), "42") {
		t.Errorf("ship row %q should contain score 42", rowText(screen, mid))
	}
}

func TestCellRenderer_RenderHUD(t *testing.T) {
	screen := newTestScreen(t)
	r := NewCellRenderer(screen)
	r.Begin()

	r.RenderHUD(game.HUDInfo{
		Target:         50,
		ActiveEffects:  []types.PowerUpType{types.PowerUpGhost, types.PowerUpRapidFire},
		PenaltyWarning: true,
	})

	if !strings.Contains(rowText(screen, 0), "TARGET: 50") {
		t.Errorf("row 0 = %q, want target text", rowText(screen, 0))
	}
	if !strings.Contains(rowText(screen, 0), config.TextGhostMode) {
		t.Errorf("row 0 = %q, want %q", rowText(screen, 0), config.TextGhostMode)
	}
	if !strings.Contains(rowText(screen, 1), config.TextRapidFire) {
		t.Errorf("row 1 = %q, want %q", rowText(screen, 1), config.TextRapidFire)
	}
	if !strings.Contains(rowText(screen, 34), config.TextPenalty) {
		t.Errorf("row 34 = %q, want penalty warning", rowText(screen, 34))
	}
}

func TestCellRenderer_RenderGameOver(t *testing.T) {
	screen := newTestScreen(t)
	r := NewCellRenderer(screen)
	r.Begin()

	r.RenderGameOver()

	if !strings.Contains(rowText(screen, 16), config.TextGameOver) {
		t.Errorf("row 16 = %q, want %q", rowText(screen, 16), config.TextGameOver)
	}
	if !strings.Contains(rowText(screen, 18), config.TextPlayAgain) {
		t.Errorf("row 18 = %q, want %q", rowText(screen, 18), config.TextPlayAgain)
	}
}

func TestCellRenderer_RenderLandingVictory(t *testing.T) {
	screen := newTestScreen(t)
	r := NewCellRenderer(screen)
	r.Begin()

	r.RenderLandingScene(game.LandingInfo{
		Score:       50,
		LanderX:     config.LanderX,
		LanderY:     config.LanderPadY,
		FigureX:     config.FlagX,
		FigureY:     config.FieldHeight - config.MoonSurfaceHeight,
		ReachedFlag: true,
		FlagX:       config.FlagX,
		SurfaceY:    config.FieldHeight - config.MoonSurfaceHeight,
	})

	if !strings.Contains(rowText(screen, 8), "YOU WON! Score: 50") {
		t.Errorf("row 8 = %q, want victory text", rowText(screen, 8))
	}
	// 月面从 500/700*35 = 25 行开始
	if ch, _, _, _ := screen.GetContent(0, 30); ch != '▒' {
		t.Errorf("surface cell = %q, want '▒'", ch)
	}
}

func TestSpinRune(t *testing.T) {
	if spinRune(0) != '✦' {
		t.Errorf("spinRune(0) = %q, want '✦'", spinRune(0))
	}
	if spinRune(360) != spinRune(0) {
		t.Error("spinRune should repeat every 180 degrees")
	}
	if spinRune(-45) == 0 {
		t.Error("spinRune should handle negative angles")
	}
}
