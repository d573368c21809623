package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureText 测量单行文本的宽高
func MeasureText(textStr string, face text.Face) (width, height float64) {
	if textStr == "" || face == nil {
		return 0, 0
	}
	return text.Measure(textStr, face, 0)
}

// DrawText 以左上角为锚点绘制文本
func DrawText(dst *ebiten.Image, textStr string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, textStr, face, op)
}

// DrawCenteredText 以中心点为锚点绘制文本
func DrawCenteredText(dst *ebiten.Image, textStr string, face text.Face, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, textStr, face, op)
}
