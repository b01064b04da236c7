// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates the basic meshes used to build the desk scene
// and manages loading and drawing them on a [gfx.Device].
package shape

//go:generate core generate

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cs330/deskscene/gfx"
)

// Kinds are the basic mesh shapes.
type Kinds int32 //enums:enum -transform kebab -accept-lower

const (
	// Plane is a flat square in the XZ plane, facing up.
	Plane Kinds = iota

	// Box is a unit cube centered on the origin.
	Box

	// Cylinder is a unit cylinder standing on the XZ plane.
	Cylinder

	// Cone is a unit cone standing on the XZ plane.
	Cone

	// TaperedCylinder is a cylinder with a top half the radius of its base.
	TaperedCylinder

	// Torus is a ring in the XY plane.
	Torus

	// Sphere is a unit sphere centered on the origin.
	Sphere
)

// Segments is the number of radial segments for round shapes.
const Segments = 36

// TorusTubeRadius is the tube radius of the unit torus.
const TorusTubeRadius = 0.2

// TaperedTopRadius is the top radius of the tapered cylinder.
const TaperedTopRadius = 0.5

// New generates the mesh for the given kind.
// The mesh is named after the kind.
func New(k Kinds) (*gfx.Mesh, error) {
	var ms *gfx.Mesh
	switch k {
	case Plane:
		ms = NewPlane()
	case Box:
		ms = NewBox()
	case Cylinder:
		ms = NewFrustum(1, 1, Segments, true, true)
	case Cone:
		ms = NewFrustum(1, 0, Segments, true, false)
	case TaperedCylinder:
		ms = NewFrustum(1, TaperedTopRadius, Segments, true, true)
	case Torus:
		ms = NewTorus(1, TorusTubeRadius, Segments, 24)
	case Sphere:
		ms = NewSphere(1, Segments, Segments/2)
	default:
		return nil, fmt.Errorf("shape.New: unknown shape %v", k)
	}
	ms.Name = k.String()
	ms.UpdateBBox()
	return ms, nil
}

// builder accumulates vertexes and triangle indexes.
type builder struct {
	ms gfx.Mesh
}

func (b *builder) vertex(pos, norm mgl32.Vec3, uv mgl32.Vec2) uint32 {
	b.ms.Vertex = append(b.ms.Vertex, gfx.Vertex{Pos: pos, Normal: norm, UV: uv})
	return uint32(len(b.ms.Vertex) - 1)
}

func (b *builder) tri(i0, i1, i2 uint32) {
	b.ms.Index = append(b.ms.Index, i0, i1, i2)
}

// quad adds a face from its center and two half-extent axes,
// with the normal given by u x v.
func (b *builder) quad(center, u, v mgl32.Vec3) {
	n := u.Cross(v).Normalize()
	i0 := b.vertex(center.Sub(u).Sub(v), n, mgl32.Vec2{0, 0})
	i1 := b.vertex(center.Add(u).Sub(v), n, mgl32.Vec2{1, 0})
	i2 := b.vertex(center.Add(u).Add(v), n, mgl32.Vec2{1, 1})
	i3 := b.vertex(center.Sub(u).Add(v), n, mgl32.Vec2{0, 1})
	b.tri(i0, i1, i2)
	b.tri(i0, i2, i3)
}

func (b *builder) mesh() *gfx.Mesh {
	ms := b.ms
	return &ms
}
