// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"github.com/cs330/deskscene/gfx"
)

// Library loads basic meshes onto a device and draws them.
// Only one instance of a mesh is loaded no matter how many
// times it is drawn.
type Library struct {
	dev    gfx.Device
	meshes [KindsN]*gfx.Mesh
}

// NewLibrary returns a library drawing on the given device.
func NewLibrary(dev gfx.Device) *Library {
	return &Library{dev: dev}
}

// Load generates and uploads the meshes of the given kinds.
// Kinds already loaded are skipped.
func (lb *Library) Load(kinds ...Kinds) error {
	for _, k := range kinds {
		if k < 0 || k >= KindsN {
			return fmt.Errorf("shape.Library: unknown shape %v", k)
		}
		if lb.meshes[k] != nil {
			continue
		}
		ms, err := New(k)
		if err != nil {
			return err
		}
		if err := lb.dev.LoadMesh(ms); err != nil {
			return fmt.Errorf("shape.Library: loading %s: %w", k, err)
		}
		lb.meshes[k] = ms
	}
	return nil
}

// IsLoaded returns whether the mesh of the given kind has been loaded.
func (lb *Library) IsLoaded(k Kinds) bool {
	return k >= 0 && k < KindsN && lb.meshes[k] != nil
}

// Mesh returns the loaded mesh of the given kind, or nil.
func (lb *Library) Mesh(k Kinds) *gfx.Mesh {
	if !lb.IsLoaded(k) {
		return nil
	}
	return lb.meshes[k]
}

// Draw draws the mesh of the given kind with the given uniforms.
// It is an error to draw a mesh that was not loaded.
func (lb *Library) Draw(k Kinds, u gfx.Uniforms) error {
	if !lb.IsLoaded(k) {
		return fmt.Errorf("shape.Library: %v mesh is not loaded", k)
	}
	return lb.dev.Draw(lb.meshes[k].Name, u)
}
