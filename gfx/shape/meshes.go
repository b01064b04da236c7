// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/core/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cs330/deskscene/gfx"
)

// NewPlane returns a 2x2 plane in the XZ plane, centered at the
// origin, facing +Y. Texture v runs from the front (+Z) to the back.
func NewPlane() *gfx.Mesh {
	b := &builder{}
	b.quad(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1})
	return b.mesh()
}

// NewBox returns a unit cube centered at the origin, with each face
// mapping the full texture.
func NewBox() *gfx.Mesh {
	b := &builder{}
	const h = 0.5
	b.quad(mgl32.Vec3{0, 0, h}, mgl32.Vec3{h, 0, 0}, mgl32.Vec3{0, h, 0})   // +z
	b.quad(mgl32.Vec3{0, 0, -h}, mgl32.Vec3{-h, 0, 0}, mgl32.Vec3{0, h, 0}) // -z
	b.quad(mgl32.Vec3{h, 0, 0}, mgl32.Vec3{0, 0, -h}, mgl32.Vec3{0, h, 0})  // +x
	b.quad(mgl32.Vec3{-h, 0, 0}, mgl32.Vec3{0, 0, h}, mgl32.Vec3{0, h, 0})  // -x
	b.quad(mgl32.Vec3{0, h, 0}, mgl32.Vec3{h, 0, 0}, mgl32.Vec3{0, 0, -h})  // +y
	b.quad(mgl32.Vec3{0, -h, 0}, mgl32.Vec3{h, 0, 0}, mgl32.Vec3{0, 0, h})  // -y
	return b.mesh()
}

// NewFrustum returns a capped cone frustum of height 1 standing on the
// XZ plane, with the given bottom and top radius. A top radius of 1
// gives a cylinder, and 0 gives a cone. Caps are only added for
// non-zero radius ends that are requested.
func NewFrustum(bottom, top float32, segs int, capBottom, capTop bool) *gfx.Mesh {
	b := &builder{}
	slope := bottom - top
	for i := 0; i <= segs; i++ {
		u := float32(i) / float32(segs)
		c, s := sincos(u)
		n := mgl32.Vec3{c, slope, s}.Normalize()
		i0 := b.vertex(mgl32.Vec3{bottom * c, 0, bottom * s}, n, mgl32.Vec2{u, 0})
		b.vertex(mgl32.Vec3{top * c, 1, top * s}, n, mgl32.Vec2{u, 1})
		if i == segs {
			break
		}
		// i0, i0+1 are this column; i0+2, i0+3 the next
		b.tri(i0, i0+1, i0+3)
		b.tri(i0, i0+3, i0+2)
	}
	if capBottom && bottom > 0 {
		b.disc(0, bottom, mgl32.Vec3{0, -1, 0}, segs)
	}
	if capTop && top > 0 {
		b.disc(1, top, mgl32.Vec3{0, 1, 0}, segs)
	}
	return b.mesh()
}

// disc adds a flat circular cap at height y.
func (b *builder) disc(y, radius float32, n mgl32.Vec3, segs int) {
	ctr := b.vertex(mgl32.Vec3{0, y, 0}, n, mgl32.Vec2{0.5, 0.5})
	for i := 0; i <= segs; i++ {
		c, s := sincos(float32(i) / float32(segs))
		b.vertex(mgl32.Vec3{radius * c, y, radius * s}, n, mgl32.Vec2{0.5 + 0.5*c, 0.5 + 0.5*s})
	}
	for i := range uint32(segs) {
		a, z := ctr+1+i, ctr+2+i
		if n.Y() > 0 {
			b.tri(ctr, z, a)
		} else {
			b.tri(ctr, a, z)
		}
	}
}

// NewTorus returns a torus in the XY plane around the origin,
// with the given ring and tube radius.
func NewTorus(radius, tube float32, ringSegs, tubeSegs int) *gfx.Mesh {
	b := &builder{}
	for i := 0; i <= ringSegs; i++ {
		u := float32(i) / float32(ringSegs)
		ct, st := sincos(u)
		for j := 0; j <= tubeSegs; j++ {
			v := float32(j) / float32(tubeSegs)
			cp, sp := sincos(v)
			n := mgl32.Vec3{cp * ct, cp * st, sp}
			pos := mgl32.Vec3{radius * ct, radius * st, 0}.Add(n.Mul(tube))
			b.vertex(pos, n, mgl32.Vec2{u, v})
		}
	}
	b.grid(ringSegs, tubeSegs)
	return b.mesh()
}

// NewSphere returns a UV sphere centered at the origin.
func NewSphere(radius float32, slices, stacks int) *gfx.Mesh {
	b := &builder{}
	for i := 0; i <= slices; i++ {
		u := float32(i) / float32(slices)
		ct, st := sincos(u)
		for j := 0; j <= stacks; j++ {
			v := float32(j) / float32(stacks)
			sp, cp := math32.Sincos(v * math32.Pi)
			n := mgl32.Vec3{sp * ct, cp, sp * st}
			b.vertex(n.Mul(radius), n, mgl32.Vec2{u, 1 - v})
		}
	}
	b.grid(slices, stacks)
	return b.mesh()
}

// grid adds the triangles of a (nu+1) x (nv+1) vertex grid laid out
// with v varying fastest.
func (b *builder) grid(nu, nv int) {
	row := uint32(nv + 1)
	for i := range uint32(nu) {
		for j := range uint32(nv) {
			a := i*row + j
			c := (i+1)*row + j
			b.tri(a, c, c+1)
			b.tri(a, c+1, a+1)
		}
	}
}

// sincos returns the cosine and sine of a full turn fraction.
func sincos(turn float32) (c, s float32) {
	s, c = math32.Sincos(2 * math32.Pi * turn)
	return
}
