package scenes

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// 字号
const (
	FontSizeUI    = 28.0 // HUD、旗帜文字
	FontSizeCloud = 45.0 // 云朵上的运算
	FontSizeBig   = 60.0 // GAME OVER、MISSION ACCOMPLISHED
	FontSizeScore = 24.0 // 飞船上的分数
)

// FontManager 字体管理器
// 字体源只解析一次，按 (粗细, 字号) 缓存字体
type FontManager struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	cache   map[string]*text.GoTextFace
	debug   text.Face
}

// NewFontManager 从内置的 Go 字体创建字体管理器
func NewFontManager() (*FontManager, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create regular font source: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create bold font source: %w", err)
	}

	return &FontManager{
		regular: regular,
		bold:    bold,
		cache:   make(map[string]*text.GoTextFace),
		debug:   text.NewGoXFace(basicfont.Face7x13),
	}, nil
}

// Face 返回指定粗细和字号的字体
func (fm *FontManager) Face(isBold bool, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%t:%.1f", isBold, size)
	if face, ok := fm.cache[cacheKey]; ok {
		return face
	}

	source := fm.regular
	if isBold {
		source = fm.bold
	}
	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	fm.cache[cacheKey] = face
	return face
}

// UI HUD 字体（粗体 28）
func (fm *FontManager) UI() *text.GoTextFace { return fm.Face(true, FontSizeUI) }

// Cloud 云朵字体（粗体 45）
func (fm *FontManager) Cloud() *text.GoTextFace { return fm.Face(true, FontSizeCloud) }

// Big 大标题字体（粗体 60）
func (fm *FontManager) Big() *text.GoTextFace { return fm.Face(true, FontSizeBig) }

// Score 飞船分数字体（常规 24）
func (fm *FontManager) Score() *text.GoTextFace { return fm.Face(false, FontSizeScore) }

// Debug 调试信息用的点阵字体
func (fm *FontManager) Debug() text.Face { return fm.debug }
