// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cs330/deskscene/gfx"
)

// texture is a texture image in straight alpha floating point.
// Row 0 is at texture coordinate v = 0.
type texture struct {
	w, h   int
	pix    []mgl32.Vec4
	params gfx.TextureParams
}

func newTexture(img *image.RGBA, params gfx.TextureParams) *texture {
	b := img.Bounds()
	tx := &texture{w: b.Dx(), h: b.Dy(), params: params}
	tx.pix = make([]mgl32.Vec4, tx.w*tx.h)
	for y := range tx.h {
		for x := range tx.w {
			c := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
			v := mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}.Mul(1.0 / 255)
			switch {
			case params.Format == gfx.RGB8:
				v[3] = 1
			case v[3] > 0 && v[3] < 1:
				v = mgl32.Vec4{v[0] / v[3], v[1] / v[3], v[2] / v[3], v[3]}
			}
			tx.pix[y*tx.w+x] = v
		}
	}
	return tx
}

// wrap maps texel coordinate i into [0, n) for the wrap mode.
func wrap(i, n int, w gfx.Wrap) int {
	if w == gfx.ClampToEdge {
		return min(max(i, 0), n-1)
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func (tx *texture) texel(x, y int) mgl32.Vec4 {
	x = wrap(x, tx.w, tx.params.WrapS)
	y = wrap(y, tx.h, tx.params.WrapT)
	return tx.pix[y*tx.w+x]
}

// sample returns the filtered color at the texture coordinate.
func (tx *texture) sample(uv mgl32.Vec2) mgl32.Vec4 {
	fx := uv[0]*float32(tx.w) - 0.5
	fy := uv[1]*float32(tx.h) - 0.5
	if tx.params.MagFilter == gfx.Nearest {
		return tx.texel(int(math32.Floor(fx+0.5)), int(math32.Floor(fy+0.5)))
	}
	x0f, y0f := math32.Floor(fx), math32.Floor(fy)
	ax, ay := fx-x0f, fy-y0f
	x0, y0 := int(x0f), int(y0f)
	c00 := tx.texel(x0, y0)
	c10 := tx.texel(x0+1, y0)
	c01 := tx.texel(x0, y0+1)
	c11 := tx.texel(x0+1, y0+1)
	top := c00.Mul(1 - ax).Add(c10.Mul(ax))
	bot := c01.Mul(1 - ax).Add(c11.Mul(ax))
	return top.Mul(1 - ay).Add(bot.Mul(ay))
}
