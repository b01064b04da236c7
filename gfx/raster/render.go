// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// bandHeight is the number of rows rasterized by one goroutine.
const bandHeight = 32

// frame is the color and depth buffer being rendered.
type frame struct {
	w, h  int
	color []mgl32.Vec4
	depth []float32
}

// Render rasterizes the queued draws in order and returns the image.
// The queued draws are kept, so Render can be called again after
// changing the size.
func (d *Device) Render(ctx context.Context) (*image.RGBA, error) {
	s := max(d.Samples, 1)
	w, h := d.Width*s, d.Height*s
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: image size %dx%d is not valid", d.Width, d.Height)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	per := make([][]triangle, len(d.draws))
	for i := range d.draws {
		g.Go(func() error {
			per[i] = setup(&d.draws[i], w, h)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var tris []triangle
	for _, ts := range per {
		tris = append(tris, ts...)
	}

	fr := &frame{w: w, h: h, color: make([]mgl32.Vec4, w*h), depth: make([]float32, w*h)}
	bg := mgl32.Vec4{float32(d.Background.R), float32(d.Background.G), float32(d.Background.B), float32(d.Background.A)}.Mul(1.0 / 255)
	for i := range fr.color {
		fr.color[i] = bg
		fr.depth[i] = 1
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y0 := 0; y0 < h; y0 += bandHeight {
		y1 := min(y0+bandHeight, h)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := range tris {
				if tris[i].maxY >= y0 && tris[i].minY < y1 {
					fr.raster(&tris[i], y0, y1)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	img := fr.image()
	if s > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, d.Width, d.Height))
		draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}
	return img, nil
}

// raster draws the part of the triangle in rows [y0, y1), with a depth
// test against the z buffer and alpha blending over the current color.
func (fr *frame) raster(tri *triangle, y0, y1 int) {
	v := &tri.v
	minX := int(math32.Floor(max(min(v[0].x, v[1].x, v[2].x), 0)))
	maxX := min(int(math32.Ceil(min(max(v[0].x, v[1].x, v[2].x), float32(fr.w)))), fr.w-1)
	ys := max(tri.minY, y0)
	ye := min(tri.maxY, y1-1)
	inv := 1 / tri.area
	for y := ys; y <= ye; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			b0 := edge(v[1].x, v[1].y, v[2].x, v[2].y, px, py) * inv
			b1 := edge(v[2].x, v[2].y, v[0].x, v[0].y, px, py) * inv
			b2 := edge(v[0].x, v[0].y, v[1].x, v[1].y, px, py) * inv
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}
			z := b0*v[0].z + b1*v[1].z + b2*v[2].z
			i := y*fr.w + x
			if z > 1 || z >= fr.depth[i] {
				continue
			}
			iw := b0*v[0].invW + b1*v[1].invW + b2*v[2].invW
			w := 1 / iw
			world := v[0].world.Mul(b0).Add(v[1].world.Mul(b1)).Add(v[2].world.Mul(b2)).Mul(w)
			normal := v[0].normal.Mul(b0).Add(v[1].normal.Mul(b1)).Add(v[2].normal.Mul(b2)).Mul(w)
			uv := v[0].uv.Mul(b0).Add(v[1].uv.Mul(b1)).Add(v[2].uv.Mul(b2)).Mul(w)

			c := tri.sh.shade(world, normal, uv)
			if a := c[3]; a < 1 {
				dst := fr.color[i]
				rgb := c.Vec3().Mul(a).Add(dst.Vec3().Mul(1 - a))
				c = rgb.Vec4(a + dst[3]*(1-a))
			}
			fr.color[i] = c
			fr.depth[i] = z
		}
	}
}

func (fr *frame) image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fr.w, fr.h))
	for i, c := range fr.color {
		// the color is straight alpha and image.RGBA is premultiplied
		a := min(max(c[3], 0), 1)
		p := img.Pix[i*4 : i*4+4 : i*4+4]
		p[0] = uint8(c[0]*a*255 + 0.5)
		p[1] = uint8(c[1]*a*255 + 0.5)
		p[2] = uint8(c[2]*a*255 + 0.5)
		p[3] = uint8(a*255 + 0.5)
	}
	return img
}
