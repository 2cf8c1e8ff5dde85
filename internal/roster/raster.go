package roster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	"image/png"
	"sync"

	"dario.cat/mergo"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrNoDrawingSurface 无法获得字体或画布
var ErrNoDrawingSurface = errors.New("无法创建绘图表面")

// RasterOptions 快照绘制参数，零值字段使用 DefaultRasterOptions
type RasterOptions struct {
	Width        int     // 画布宽度
	RowHeight    int     // 行高，画布高度 = 行数*RowHeight + ExtraHeight
	ExtraHeight  int     // 画布额外高度
	Margin       int     // 左边距及第一行基线
	ColumnOffset int     // 每列的水平偏移
	FontSize     float64 // 字号（72 DPI 下即像素）
}

// DefaultRasterOptions 默认快照参数
var DefaultRasterOptions = RasterOptions{
	Width:        800,
	RowHeight:    30,
	ExtraHeight:  50,
	Margin:       20,
	ColumnOffset: 400,
	FontSize:     14,
}

var parseGoRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// RenderPNG 把值班表绘制为白底黑字的 PNG 快照
// 快照只用于归档，不还原表格样式；第 c 列文字从 x = Margin + c*ColumnOffset 开始，
// 第 r 行基线位于 y = Margin + r*RowHeight。
func RenderPNG(rows []Row, opts RasterOptions) ([]byte, error) {
	if err := mergo.Merge(&opts, DefaultRasterOptions); err != nil {
		return nil, fmt.Errorf("合并快照参数失败: %w", err)
	}
	if opts.Width <= 0 || opts.RowHeight <= 0 || opts.FontSize <= 0 {
		return nil, fmt.Errorf("%w: 参数无效", ErrNoDrawingSurface)
	}

	face, err := newFace(opts.FontSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDrawingSurface, err)
	}
	defer face.Close()

	height := len(rows)*opts.RowHeight + opts.ExtraHeight
	canvas := image.NewNRGBA(image.Rect(0, 0, opts.Width, height))
	stddraw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, stddraw.Src)

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	for r, row := range rows {
		y := opts.Margin + r*opts.RowHeight
		for c, text := range row.Cells() {
			d.Dot = fixed.P(opts.Margin+c*opts.ColumnOffset, y)
			d.DrawString(text)
		}
	}

	var out bytes.Buffer
	if err := png.Encode(&out, canvas); err != nil {
		return nil, fmt.Errorf("PNG 编码失败: %w", err)
	}
	return out.Bytes(), nil
}

func newFace(size float64) (font.Face, error) {
	f, err := parseGoRegular()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
