package utils

import (
	"bytes"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestFace(t *testing.T, size float64) *text.GoTextFace {
	t.Helper()
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	return &text.GoTextFace{Source: source, Size: size}
}

// TestMeasureText 测试文本测量
func TestMeasureText(t *testing.T) {
	face := newTestFace(t, 28)

	if w, h := MeasureText("", face); w != 0 || h != 0 {
		t.Errorf("empty text should measure (0, 0), got (%v, %v)", w, h)
	}
	if w, h := MeasureText("GAME OVER", nil); w != 0 || h != 0 {
		t.Errorf("nil face should measure (0, 0), got (%v, %v)", w, h)
	}

	shortW, shortH := MeasureText("+ 1", face)
	longW, _ := MeasureText("DECIMAL PENALTY! SPEED UP!", face)
	if shortW <= 0 || shortH <= 0 {
		t.Fatalf("expected positive size, got (%v, %v)", shortW, shortH)
	}
	if longW <= shortW {
		t.Errorf("longer text should be wider: %v <= %v", longW, shortW)
	}

	bigW, _ := MeasureText("+ 1", newTestFace(t, 56))
	if bigW <= shortW {
		t.Errorf("larger font should be wider: %v <= %v", bigW, shortW)
	}
}
