package scenes

import (
	"io"
	"log"
	"math/rand"
	"os"
	"testing"

	"github.com/decker502/cosmiccalc/pkg/config"
	"github.com/decker502/cosmiccalc/pkg/game"
	"github.com/decker502/cosmiccalc/pkg/utils"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestGameScene(t *testing.T) *GameScene {
	t.Helper()
	fonts, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager() error = %v", err)
	}
	session := game.NewSession(config.DefaultGameplayConfig(), rand.New(rand.NewSource(3)))
	return NewGameScene(session, NewEbitenRenderer(fonts, rand.New(rand.NewSource(4))), true)
}

// fixedControls 每帧返回同样的操作
func fixedControls(state utils.ControlState) ControlReader {
	return func(int) utils.ControlState { return state }
}

func TestGameScene_UpdateMovesShip(t *testing.T) {
	scene := newTestGameScene(t)
	scene.SetControlReader(fixedControls(utils.ControlState{Up: true}))

	scene.Update(1.0 / 60.0)

	if got := scene.Session().PlayerRect().Y; got != 341 {
		t.Errorf("ship Y = %v, want 341", got)
	}
	if scene.WantsQuit() {
		t.Error("scene should not quit")
	}
}

func TestGameScene_QuitStopsUpdates(t *testing.T) {
	scene := newTestGameScene(t)
	scene.SetControlReader(fixedControls(utils.ControlState{Down: true, Quit: true}))

	scene.Update(1.0 / 60.0)

	if !scene.WantsQuit() {
		t.Error("Esc should request quit")
	}
	if got := scene.Session().PlayerRect().Y; got != 350 {
		t.Errorf("ship Y = %v, the quitting frame should not be simulated", got)
	}
}

func TestGameScene_RestartFromGameOver(t *testing.T) {
	scene := newTestGameScene(t)
	scene.Session().EndGame()
	scene.SetControlReader(fixedControls(utils.ControlState{Restart: true}))

	scene.Update(1.0 / 60.0)

	if scene.Session().State() != game.StatePlaying {
		t.Errorf("State = %v, want PLAYING", scene.Session().State())
	}
}

func TestGameScene_DebugLines(t *testing.T) {
	scene := newTestGameScene(t)

	lines := scene.debugLines()

	if len(lines) != 6 {
		t.Fatalf("debug lines = %d, want 6", len(lines))
	}
	if lines[1] != "state PLAYING" {
		t.Errorf("lines[1] = %q, want %q", lines[1], "state PLAYING")
	}
	if lines[2] != "score 0 / 50" {
		t.Errorf("lines[2] = %q, want %q", lines[2], "score 0 / 50")
	}
}

func TestGameScene_TouchHint(t *testing.T) {
	scene := newTestGameScene(t)
	if scene.showTouchHint() {
		t.Error("touch hint should be hidden on desktop")
	}

	t.Setenv("COSMICCALC_MOBILE_EMULATE", "1")
	if !scene.showTouchHint() {
		t.Error("touch hint should show at startup in mobile mode")
	}

	scene.SetControlReader(fixedControls(utils.ControlState{}))
	for i := 0; i < 60*5; i++ {
		scene.Update(1.0 / 60.0)
	}
	if scene.showTouchHint() {
		t.Error("touch hint should disappear after a few seconds")
	}
}
