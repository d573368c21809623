package systems

import "testing"

func TestPlayerControlSystem_Update(t *testing.T) {
	tests := []struct {
		name     string
		startY   float64
		up       bool
		down     bool
		inverted bool
		wantY    float64
	}{
		{"不按键", 350, false, false, false, 350},
		{"上移", 350, true, false, false, 341},
		{"下移", 350, false, true, false, 359},
		{"反转时上键下移", 350, true, false, true, 359},
		{"反转时下键上移", 350, false, true, true, 341},
		{"同时按住抵消", 350, true, true, false, 350},
		{"顶部截断", 4, true, false, false, 0},
		{"已在顶部不动", 0, true, false, false, 0},
		{"底部截断", 636, false, true, false, 640},
		{"已在底部不动", 640, false, true, false, 640},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			control := NewPlayerControlSystem(w.em, w.player, w.cfg.Player)
			rect := w.playerRect(t)
			rect.Y = tt.startY

			control.Update(tt.up, tt.down, tt.inverted)

			if rect.Y != tt.wantY {
				t.Errorf("Y = %v, want %v", rect.Y, tt.wantY)
			}
			if rect.X != 100 {
				t.Errorf("X = %v, horizontal position must not change", rect.X)
			}
		})
	}
}
