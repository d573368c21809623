package autopilot

import (
	"io"
	"log"
	"math/rand"
	"os"
	"testing"

	"github.com/decker502/cosmiccalc/pkg/components"
	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/game"
	"github.com/decker502/cosmiccalc/pkg/types"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func cloudAt(x, y float64, op types.Operation, operand int) game.CloudView {
	return game.CloudView{
		Rect:  components.RectComponent{X: x, Y: y, Width: 120, Height: 80},
		Cloud: components.CloudComponent{Op: op, Operand: operand},
	}
}

func TestCost(t *testing.T) {
	tests := []struct {
		name    string
		score   int
		op      types.Operation
		operand int
		want    int
	}{
		{"命中目标", 45, types.OpAdd, 5, -1},
		{"低于目标", 10, types.OpAdd, 5, 35},
		{"超过目标", 40, types.OpMultiply, 2, 30 + overshootCost},
		{"小数惩罚", 15, types.OpDivide, 2, 42 + penaltyCost},
		{"除以零保持不变", 20, types.OpDivide, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cost(tt.score, 50, cloudAt(0, 0, tt.op, tt.operand))
			if got != tt.want {
				t.Errorf("Cost() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChooseCloud_NearestWallOnly(t *testing.T) {
	clouds := []game.CloudView{
		cloudAt(400, 0, types.OpAdd, 1),
		cloudAt(400, 140, types.OpAdd, 9),
		// 后面一排有更好的选择，但不在最近的一排
		cloudAt(900, 0, types.OpMultiply, 4),
	}

	got, ok := ChooseCloud(10, 50, 100, clouds)
	if !ok {
		t.Fatal("ChooseCloud() found nothing")
	}
	if got.Cloud.Operand != 9 || got.Rect.X != 400 {
		t.Errorf("ChooseCloud() = %+v, want +9 in the nearest wall", got.Cloud)
	}
}

func TestChooseCloud_IgnoresPassedClouds(t *testing.T) {
	clouds := []game.CloudView{
		cloudAt(-200, 0, types.OpAdd, 5),
	}
	if _, ok := ChooseCloud(45, 50, 100, clouds); ok {
		t.Error("clouds behind the ship should be ignored")
	}
}

func TestChooseCloud_PrefersExactHit(t *testing.T) {
	clouds := []game.CloudView{
		cloudAt(500, 0, types.OpAdd, 9),
		cloudAt(500, 140, types.OpAdd, 5),
		cloudAt(500, 280, types.OpSubtract, 1),
	}
	got, _ := ChooseCloud(45, 50, 100, clouds)
	if got.Cloud.Operand != 5 {
		t.Errorf("ChooseCloud() picked %+v, want +5", got.Cloud)
	}
}

func TestPilot_InputOnlyWhilePlaying(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	session := game.NewSession(cfg, rand.New(rand.NewSource(3)))
	pilot := New(cfg.Player.Speed)

	session.EndGame()
	if input := pilot.Input(session); input != (game.InputState{}) {
		t.Errorf("Input() after game over = %+v, want zero", input)
	}
}

func TestPilot_LongRun(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	session := game.NewSession(cfg, rand.New(rand.NewSource(11)))
	pilot := New(cfg.Player.Speed)

	for frame := 0; frame < 60*60; frame++ {
		input := pilot.Input(session)
		if input.Up && input.Down {
			t.Fatalf("frame %d: pilot pressed up and down together", frame)
		}
		session.Update(input)
		if session.Score() < 0 {
			t.Fatalf("frame %d: score went negative (%d)", frame, session.Score())
		}
	}
}
