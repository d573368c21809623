package utils

import "testing"

func TestTouchZone(t *testing.T) {
	tests := []struct {
		name     string
		y        int
		wantUp   bool
		wantDown bool
	}{
		{"顶部", 0, true, false},
		{"上半部分", 349, true, false},
		{"正中间算下半部分", 350, false, true},
		{"底部", 699, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up, down := TouchZone(tt.y, 700)
			if up != tt.wantUp || down != tt.wantDown {
				t.Errorf("TouchZone(%d, 700) = (%v, %v), want (%v, %v)", tt.y, up, down, tt.wantUp, tt.wantDown)
			}
		})
	}
}

func TestMergePointer(t *testing.T) {
	tests := []struct {
		name  string
		state ControlState
		p     pointerSample
		want  ControlState
	}{
		{"无指针保持键盘状态", ControlState{Down: true}, pointerSample{}, ControlState{Down: true}},
		{"按住上半部分", ControlState{}, pointerSample{Pressed: true, Y: 100}, ControlState{Up: true}},
		{"按住下半部分", ControlState{}, pointerSample{Pressed: true, Y: 600}, ControlState{Down: true}},
		{"刚按下算重开", ControlState{}, pointerSample{Pressed: true, JustPressed: true, Y: 600}, ControlState{Down: true, Restart: true}},
		{"键盘上移与触摸下移叠加", ControlState{Up: true}, pointerSample{Pressed: true, Y: 600}, ControlState{Up: true, Down: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mergePointer(tt.state, tt.p, 700); got != tt.want {
				t.Errorf("mergePointer = %+v, want %+v", got, tt.want)
			}
		})
	}
}
