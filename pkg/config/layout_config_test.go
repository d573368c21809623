package config

import (
	"testing"

	"github.com/decker502/cosmiccalc/pkg/types"
)

func TestGetLaneCloudY(t *testing.T) {
	tests := []struct {
		lane int
		want float64
	}{
		{0, 56},
		{1, 289},
		{2, 522},
	}

	for _, tt := range tests {
		if got := GetLaneCloudY(tt.lane); got != tt.want {
			t.Errorf("GetLaneCloudY(%d) = %.1f, want %.1f", tt.lane, got, tt.want)
		}
	}
}

func TestLandingLayout(t *testing.T) {
	// 着陆点：700 - 200 - 80 = 420
	if LanderPadY != 420 {
		t.Errorf("LanderPadY = %.1f, want 420", LanderPadY)
	}
	if AstronautWalkDistance != 250 {
		t.Errorf("AstronautWalkDistance = %.1f, want 250", AstronautWalkDistance)
	}
}

func TestEffectStatus(t *testing.T) {
	tests := []struct {
		powerUpType types.PowerUpType
		wantText    string
	}{
		{types.PowerUpSlowMotion, "SLOW MOTION"},
		{types.PowerUpGhost, "GHOST MODE"},
		{types.PowerUpInvertControls, "CONTROLS FLIPPED!"},
		{types.PowerUpRapidFire, "RAPID FIRE!!!"},
		{types.PowerUpRoundNum, ""},
	}

	for _, tt := range tests {
		if got, _ := EffectStatus(tt.powerUpType); got != tt.wantText {
			t.Errorf("EffectStatus(%s) = %q, want %q", tt.powerUpType, got, tt.wantText)
		}
	}
}

func TestPowerUpColor(t *testing.T) {
	if PowerUpColor(types.PowerUpRoundNum) != ColorPowerUpFix {
		t.Error("round number power-up should be green")
	}
	if PowerUpColor(types.PowerUpInvertControls) != ColorText {
		t.Error("invert power-up has no fixed color")
	}
}
