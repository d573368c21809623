package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Point 二维点
type Point struct {
	X, Y float64
}

var whitePixel *ebiten.Image

// whiteSubImage 1x1 白色纹理，用于 DrawTriangles 填充纯色
func whiteSubImage() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// FillPolygon 填充多边形（顶点按顺序连接并闭合）
func FillPolygon(dst *ebiten.Image, points []Point, clr color.Color) {
	if len(points) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage(), op)
}

// StrokePolygon 描边多边形
func StrokePolygon(dst *ebiten.Image, points []Point, width float64, clr color.Color) {
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
	}
}

// EllipsePoints 生成椭圆的近似多边形顶点
func EllipsePoints(cx, cy, rx, ry float64, segments int) []Point {
	points := make([]Point, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		points[i] = Point{X: cx + rx*math.Cos(angle), Y: cy + ry*math.Sin(angle)}
	}
	return points
}

// StarPoints 生成五角星的 10 个顶点（内外半径交替）
//
// 参数:
//   - cx, cy: 中心
//   - outer, inner: 外半径和内半径
//   - angleDeg: 旋转角度（度）
func StarPoints(cx, cy, outer, inner, angleDeg float64) []Point {
	points := make([]Point, 10)
	for i := 0; i < 10; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		rad := (angleDeg + float64(i)*36) * math.Pi / 180
		points[i] = Point{X: cx + radius*math.Cos(rad), Y: cy + radius*math.Sin(rad)}
	}
	return points
}
