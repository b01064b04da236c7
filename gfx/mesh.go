// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one mesh vertex.
type Vertex struct {
	Pos    mgl32.Vec3
	Normal mgl32.Vec3
	UV     mgl32.Vec2
}

// BBox is an axis aligned bounding box.
type BBox struct {
	Min, Max mgl32.Vec3
}

// Size returns the extent of the box on each axis.
func (bb BBox) Size() mgl32.Vec3 {
	return bb.Max.Sub(bb.Min)
}

// Mesh is an indexed triangle list. Only triangles are supported,
// so len(Index) is always a multiple of 3.
type Mesh struct {
	// Name links the mesh to draw calls.
	Name string

	Vertex []Vertex

	Index []uint32

	// BBox is the bounding box of the vertex positions, set by [Mesh.UpdateBBox].
	BBox BBox
}

// NumTriangles returns the number of triangles.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Index) / 3
}

// UpdateBBox recomputes the bounding box from the vertex positions.
func (ms *Mesh) UpdateBBox() {
	if len(ms.Vertex) == 0 {
		ms.BBox = BBox{}
		return
	}
	bb := BBox{Min: ms.Vertex[0].Pos, Max: ms.Vertex[0].Pos}
	for _, v := range ms.Vertex[1:] {
		for i := range 3 {
			bb.Min[i] = min(bb.Min[i], v.Pos[i])
			bb.Max[i] = max(bb.Max[i], v.Pos[i])
		}
	}
	ms.BBox = bb
}

// Validate checks that the mesh has a name, that the index list
// forms whole triangles, and that every index is in range.
func (ms *Mesh) Validate() error {
	if ms.Name == "" {
		return fmt.Errorf("gfx.Mesh: name is empty")
	}
	if len(ms.Index)%3 != 0 {
		return fmt.Errorf("gfx.Mesh: %s has %d indexes, not a multiple of 3", ms.Name, len(ms.Index))
	}
	nv := uint32(len(ms.Vertex))
	for i, idx := range ms.Index {
		if idx >= nv {
			return fmt.Errorf("gfx.Mesh: %s index %d = %d is out of range for %d vertexes", ms.Name, i, idx, nv)
		}
	}
	return nil
}
