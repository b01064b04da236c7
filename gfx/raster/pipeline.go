// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cs330/deskscene/gfx"
)

// varying is the output of the vertex stage for one vertex.
type varying struct {
	clip   mgl32.Vec4
	world  mgl32.Vec3
	normal mgl32.Vec3
	uv     mgl32.Vec2
}

func lerpVarying(a, b varying, t float32) varying {
	return varying{
		clip:   a.clip.Add(b.clip.Sub(a.clip).Mul(t)),
		world:  a.world.Add(b.world.Sub(a.world).Mul(t)),
		normal: a.normal.Add(b.normal.Sub(a.normal).Mul(t)),
		uv:     a.uv.Add(b.uv.Sub(a.uv).Mul(t)),
	}
}

// screenVertex is a vertex after the perspective divide and viewport
// transform. The attributes are divided by w, so that interpolating
// them linearly in screen space and dividing by the interpolated
// invW gives perspective correct values.
type screenVertex struct {
	x, y, z float32
	invW    float32
	world   mgl32.Vec3
	normal  mgl32.Vec3
	uv      mgl32.Vec2
}

// triangle is a screen space triangle ready for rasterization.
type triangle struct {
	v          [3]screenVertex
	area       float32
	minY, maxY int
	sh         *shader
}

// matrixOr returns the named matrix uniform, or def if it is not set.
func matrixOr(u gfx.Uniforms, name string, def mgl32.Mat4) mgl32.Mat4 {
	if m, ok := u.Mat4(name); ok {
		return m
	}
	return def
}

// setup runs the vertex stage for the draw and returns its triangles,
// clipped against the near plane, for an image of the given size.
func setup(dc *drawCall, width, height int) []triangle {
	id := mgl32.Ident4()
	model := matrixOr(dc.u, gfx.ModelName, id)
	view := matrixOr(dc.u, gfx.ViewName, id)
	proj := matrixOr(dc.u, gfx.ProjectionName, id)
	mvp := proj.Mul4(view).Mul4(model)
	nm := gfx.NormalMatrix(model)

	ms := dc.mesh
	vs := make([]varying, len(ms.Vertex))
	for i, v := range ms.Vertex {
		p := v.Pos.Vec4(1)
		vs[i] = varying{
			clip:   mvp.Mul4x1(p),
			world:  model.Mul4x1(p).Vec3(),
			normal: gfx.TransformNormal(nm, v.Normal),
			uv:     v.UV,
		}
	}

	sh := newShader(dc)
	var tris []triangle
	var in, poly []varying
	for t := 0; t+2 < len(ms.Index); t += 3 {
		in = append(in[:0], vs[ms.Index[t]], vs[ms.Index[t+1]], vs[ms.Index[t+2]])
		poly = clipNear(in, poly[:0])
		for i := 1; i+1 < len(poly); i++ {
			tri, ok := toScreen(poly[0], poly[i], poly[i+1], width, height)
			if ok {
				tri.sh = sh
				tris = append(tris, tri)
			}
		}
	}
	return tris
}

// clipNear clips the polygon against the near plane z = -w,
// appending the result to out.
func clipNear(in, out []varying) []varying {
	for i := range in {
		a, b := in[i], in[(i+1)%len(in)]
		da, db := a.clip[2]+a.clip[3], b.clip[2]+b.clip[3]
		if da >= 0 {
			out = append(out, a)
		}
		if (da >= 0) != (db >= 0) {
			out = append(out, lerpVarying(a, b, da/(da-db)))
		}
	}
	return out
}

func project(v varying, width, height int) screenVertex {
	iw := 1 / v.clip[3]
	return screenVertex{
		x:      (v.clip[0]*iw + 1) * 0.5 * float32(width),
		y:      (1 - v.clip[1]*iw) * 0.5 * float32(height),
		z:      v.clip[2] * iw,
		invW:   iw,
		world:  v.world.Mul(iw),
		normal: v.normal.Mul(iw),
		uv:     v.uv.Mul(iw),
	}
}

// edge is twice the signed area of the triangle a, b, p.
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func toScreen(a, b, c varying, width, height int) (triangle, bool) {
	tri := triangle{v: [3]screenVertex{project(a, width, height), project(b, width, height), project(c, width, height)}}
	v := &tri.v
	tri.area = edge(v[0].x, v[0].y, v[1].x, v[1].y, v[2].x, v[2].y)
	if math32.Abs(tri.area) < 1e-12 || math32.IsNaN(tri.area) {
		return tri, false
	}
	lo := min(v[0].y, v[1].y, v[2].y)
	hi := max(v[0].y, v[1].y, v[2].y)
	if hi < 0 || lo > float32(height) {
		return tri, false
	}
	tri.minY = int(math32.Floor(max(lo, 0)))
	tri.maxY = min(int(math32.Ceil(min(hi, float32(height)))), height-1)
	return tri, true
}
