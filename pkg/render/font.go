package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadDefaultFontSource 加载内置的 Go Regular 字体
func LoadDefaultFontSource() (*text.GoTextFaceSource, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load default font: %w", err)
	}
	return source, nil
}

// NewFace 以指定字号创建字体
// source 为 nil 时返回 nil，调用方应跳过文字绘制
func NewFace(source *text.GoTextFaceSource, size float64) *text.GoTextFace {
	if source == nil {
		return nil
	}
	return &text.GoTextFace{Source: source, Size: size}
}
