// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import "github.com/go-gl/mathgl/mgl32"

// ModelMatrix returns the model matrix for the given scale, rotations
// about the X, Y and Z axes in degrees, and position. The scale is
// applied first, then the rotations in X, Y, Z order, then the
// translation: T * Rz * Ry * Rx * S.
func ModelMatrix(scale mgl32.Vec3, rx, ry, rz float32, pos mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(rx))
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(ry))
	rotZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(rz))
	t := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	return t.Mul4(rotZ).Mul4(rotY).Mul4(rotX).Mul4(s)
}

// NormalMatrix returns the matrix that transforms normals for the
// given model matrix. It is the cofactor matrix of the upper 3x3,
// which equals the inverse transpose up to a positive scale, but is
// still defined when an axis has zero scale. Transformed normals
// must be normalized.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	m := model.Mat3()
	a, b, c := m.Col(0), m.Col(1), m.Col(2)
	return mgl32.Mat3FromCols(b.Cross(c), c.Cross(a), a.Cross(b))
}

// TransformNormal transforms n by the normal matrix and normalizes it.
// A normal that collapses to zero is returned unchanged.
func TransformNormal(nm mgl32.Mat3, n mgl32.Vec3) mgl32.Vec3 {
	r := nm.Mul3x1(n)
	if l := r.Len(); l > 1e-12 {
		return r.Mul(1 / l)
	}
	return n
}
