// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzdev

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-6

// Decompose splits a T * R * S model matrix into position, scale and
// rotation. An axis with zero scale gets its rotation column from the
// cross product of the other two, so flattened solids keep their
// orientation. A mirroring matrix is returned with a negative X scale.
func Decompose(model mgl32.Mat4) (pos, scale math32.Vector3, rot math32.Quat) {
	var axes [3]mgl32.Vec3
	var s [3]float32
	zero := -1
	nzero := 0
	for i := range 3 {
		axes[i] = model.Col(i).Vec3()
		s[i] = axes[i].Len()
		if s[i] < epsilon {
			s[i] = 0
			zero = i
			nzero++
			continue
		}
		axes[i] = axes[i].Mul(1 / s[i])
	}
	pos = vector3(model.Col(3).Vec3())

	var q mgl32.Quat
	switch nzero {
	case 0, 1:
		if nzero == 1 {
			axes[zero] = axes[(zero+1)%3].Cross(axes[(zero+2)%3])
		}
		if axes[0].Cross(axes[1]).Dot(axes[2]) < 0 {
			s[0] = -s[0]
			axes[0] = axes[0].Mul(-1)
		}
		q = mgl32.Mat4ToQuat(mgl32.Mat3FromCols(axes[0], axes[1], axes[2]).Mat4()).Normalize()
	default:
		q = mgl32.QuatIdent()
	}
	scale = math32.Vec3(s[0], s[1], s[2])
	rot = math32.Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
	return
}

// LookAt recovers the camera position, a target one unit in front of
// it, and the up direction from a view matrix.
func LookAt(view mgl32.Mat4) (pos, target, up mgl32.Vec3) {
	pos = view.Inv().Col(3).Vec3()
	fwd := mgl32.Vec3{-view.At(2, 0), -view.At(2, 1), -view.At(2, 2)}
	up = mgl32.Vec3{view.At(1, 0), view.At(1, 1), view.At(1, 2)}
	return pos, pos.Add(fwd), up
}

// Perspective recovers the vertical field of view in degrees and the
// near and far planes from a perspective projection matrix.
func Perspective(proj mgl32.Mat4) (fov, near, far float32) {
	a, b := proj.At(2, 2), proj.At(2, 3)
	fov = mgl32.RadToDeg(2 * math32.Atan(1/proj.At(1, 1)))
	return fov, b / (a - 1), b / (a + 1)
}

// RGBA converts a straight alpha color with components in [0,1]
// to a premultiplied [color.RGBA].
func RGBA(c mgl32.Vec4) color.RGBA {
	a := mgl32.Clamp(c[3], 0, 1)
	ch := func(v float32) uint8 {
		return uint8(mgl32.Clamp(v, 0, 1)*a*255 + 0.5)
	}
	return color.RGBA{ch(c[0]), ch(c[1]), ch(c[2]), uint8(a*255 + 0.5)}
}

// RGB converts an opaque color with components in [0,1].
func RGB(c mgl32.Vec3) color.RGBA {
	return RGBA(c.Vec4(1))
}
