// Package render 把棋盘和 premove 结果画成 PNG，调试和 /api/render 用。
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"boardmoves/internal/premove"
)

const (
	DefaultSize = 480
	MaxSize     = 2048

	// 先按 renderScale 倍画，再缩小，边缘更平滑
	renderScale = 3

	lightSquare = "#f0d9b5"
	darkSquare  = "#b58863"
	originColor = "#cdd26a"
	destColor   = "#3a7d44"
	whiteFill   = "#fafafa"
	blackFill   = "#222222"
	promoRing   = "#c0392b"
)

type Options struct {
	// Size 长边的像素数，0 用 DefaultSize
	Size   int
	Origin premove.Key
	Dests  []premove.Key
	// Flip 从黑方视角画（rank 0 在上）
	Flip bool
}

func (o Options) size() int {
	switch {
	case o.Size <= 0:
		return DefaultSize
	case o.Size > MaxSize:
		return MaxSize
	}
	return o.Size
}

// cellSize 每格像素，保证至少 1
func cellSize(dims premove.Dimensions, size int) int {
	n := dims.Width
	if dims.Height > n {
		n = dims.Height
	}
	c := size / n
	if c < 1 {
		c = 1
	}
	return c
}

// SVG 以格为单位的 viewBox 生成棋盘
func SVG(pieces premove.Pieces, dims premove.Dimensions, opts Options) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		dims.Width, dims.Height, dims.Width, dims.Height)

	toXY := func(p premove.Position) (float64, float64) {
		x, y := p.File, dims.Height-1-p.Rank
		if opts.Flip {
			x, y = dims.Width-1-p.File, p.Rank
		}
		return float64(x), float64(y)
	}

	for _, p := range premove.AllPositions(dims) {
		x, y := toXY(p)
		fill := lightSquare
		if (p.File+p.Rank)%2 == 0 {
			fill = darkSquare
		}
		if opts.Origin != "" && premove.PositionToKey(p, dims) == opts.Origin {
			fill = originColor
		}
		fmt.Fprintf(&b, `<rect x="%g" y="%g" width="1" height="1" fill="%s"/>`, x, y, fill)
	}

	for _, p := range premove.AllPositions(dims) {
		pc, ok := pieces[premove.PositionToKey(p, dims)]
		if !ok {
			continue
		}
		x, y := toXY(p)
		fill, stroke := whiteFill, blackFill
		if pc.Color == premove.Black {
			fill, stroke = blackFill, whiteFill
		}
		fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="0.38" fill="%s" stroke="%s" stroke-width="0.05"/>`,
			x+0.5, y+0.5, fill, stroke)
		if isRoyal(pc.Role) {
			fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="0.18" fill="%s"/>`, x+0.5, y+0.5, stroke)
		}
		if pc.Promoted {
			fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="0.44" fill="none" stroke="%s" stroke-width="0.05"/>`,
				x+0.5, y+0.5, promoRing)
		}
	}

	for _, k := range opts.Dests {
		x, y := toXY(premove.KeyToPosition(k))
		fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="0.15" fill="%s"/>`, x+0.5, y+0.5, destColor)
	}

	b.WriteString(`</svg>`)
	return b.Bytes()
}

func isRoyal(r premove.Role) bool {
	switch r {
	case premove.RoleKing, premove.RolePhoenix, premove.RoleLion:
		return true
	}
	return false
}

// Image 画出 RGBA 图片，尺寸为 (Width*cell) x (Height*cell)
func Image(pieces premove.Pieces, dims premove.Dimensions, opts Options) (*image.RGBA, error) {
	if dims.Width <= 0 || dims.Height <= 0 {
		return nil, fmt.Errorf("render: bad dimensions %s", dims)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(SVG(pieces, dims, opts)))
	if err != nil {
		return nil, fmt.Errorf("render: parse svg: %w", err)
	}

	cell := cellSize(dims, opts.size())
	w, h := dims.Width*cell, dims.Height*cell
	rw, rh := w*renderScale, h*renderScale

	icon.SetTarget(0, 0, float64(rw), float64(rh))
	big := image.NewRGBA(image.Rect(0, 0, rw, rh))
	scanner := rasterx.NewScannerGV(rw, rh, big, big.Bounds())
	raster := rasterx.NewDasher(rw, rh, scanner)
	icon.Draw(raster, 1.0)

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), draw.Src, nil)
	return out, nil
}

// PNG 画图并编码写入 w
func PNG(w io.Writer, pieces premove.Pieces, dims premove.Dimensions, opts Options) error {
	img, err := Image(pieces, dims, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
