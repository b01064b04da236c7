// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzdev

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs330/deskscene/gfx"
)

func quat(t *testing.T, m mgl32.Mat4) mgl32.Quat {
	t.Helper()
	_, _, r := Decompose(m)
	return mgl32.Quat{W: r.W, V: mgl32.Vec3{r.X, r.Y, r.Z}}
}

func TestDecompose(t *testing.T) {
	m := gfx.ModelMatrix(mgl32.Vec3{2, 3, 4}, 30, 45, 60, mgl32.Vec3{1, -2, 5})
	pos, scale, _ := Decompose(m)
	assert.InDelta(t, 1, pos.X, 1e-5)
	assert.InDelta(t, -2, pos.Y, 1e-5)
	assert.InDelta(t, 5, pos.Z, 1e-5)
	assert.InDelta(t, 2, scale.X, 1e-5)
	assert.InDelta(t, 3, scale.Y, 1e-5)
	assert.InDelta(t, 4, scale.Z, 1e-5)

	// the rotation rebuilds the same matrix
	q := quat(t, m)
	rebuilt := mgl32.Translate3D(1, -2, 5).Mul4(q.Mat4()).Mul4(mgl32.Scale3D(2, 3, 4))
	assert.InDeltaSlice(t, m[:], rebuilt[:], 1e-4, "%v != %v", m, rebuilt)
}

func TestDecomposeFlat(t *testing.T) {
	// zero Y scale keeps the X rotation
	m := gfx.ModelMatrix(mgl32.Vec3{5, 0, 3}, 90, 0, 0, mgl32.Vec3{})
	_, scale, _ := Decompose(m)
	assert.Equal(t, float32(0), scale.Y)
	q := quat(t, m)
	want := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0})
	// q and -q are the same rotation
	assert.InDelta(t, 1, math.Abs(float64(q.Dot(want))), 1e-5, "%v", q)

	// nothing to recover with two flat axes
	q = quat(t, gfx.ModelMatrix(mgl32.Vec3{0, 0, 1}, 0, 45, 0, mgl32.Vec3{}))
	assert.Equal(t, mgl32.QuatIdent(), q)
}

func TestDecomposeMirror(t *testing.T) {
	m := mgl32.Scale3D(-2, 1, 1)
	_, scale, _ := Decompose(m)
	assert.InDelta(t, -2, scale.X, 1e-5)
	q := quat(t, m)
	assert.InDelta(t, 1, q.W*q.W, 1e-5)
}

func TestLookAtPerspective(t *testing.T) {
	eye := mgl32.Vec3{0, 10, 18}
	view := mgl32.LookAtV(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	pos, target, up := LookAt(view)
	require.InDeltaSlice(t, eye[:], pos[:], 1e-4, "%v", pos)
	fwd := target.Sub(pos)
	assert.InDelta(t, 1, fwd.Len(), 1e-5)
	assert.InDelta(t, 1, fwd.Dot(eye.Mul(-1).Normalize()), 1e-5)
	assert.InDelta(t, 0, up.Dot(fwd), 1e-5)
	assert.Greater(t, up.Y(), float32(0))

	fov, near, far := Perspective(mgl32.Perspective(mgl32.DegToRad(45), 16.0/9, 0.1, 100))
	assert.InDelta(t, 45, fov, 1e-3)
	assert.InDelta(t, 0.1, near, 1e-4)
	assert.InDelta(t, 100, far, 0.05)
}

func TestColors(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, RGB(mgl32.Vec3{1, 0.5, -1}))
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, RGBA(mgl32.Vec4{1, 0, 0, 0.5}))
}

func TestGenMesh(t *testing.T) {
	ms := &gfx.Mesh{
		Name: "tri",
		Vertex: []gfx.Vertex{
			{Pos: mgl32.Vec3{0, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 0}},
			{Pos: mgl32.Vec3{1, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 0}},
			{Pos: mgl32.Vec3{0, 1, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 1}},
		},
		Index: []uint32{0, 1, 2},
	}
	gm := GenMesh(ms)
	assert.Equal(t, "tri", gm.Name)
	assert.Len(t, gm.Vertex, 9)
	assert.Equal(t, float32(1), gm.Vertex[3])
	assert.Len(t, gm.TexCoord, 6)
	assert.Equal(t, float32(1), gm.TexCoord[5])
	assert.Equal(t, []uint32{0, 1, 2}, []uint32(gm.Index))
	nv, ni, _ := gm.MeshSize()
	assert.Equal(t, 3, nv)
	assert.Equal(t, 3, ni)
}
