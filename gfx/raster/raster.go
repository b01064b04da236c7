// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a [gfx.Device] that renders on the CPU into
// an image, shading fragments the way the scene shader does: a texture
// or solid color, lit by a directional light and point lights with
// Phong ambient, diffuse and specular terms.
//
// Draw calls are queued and rendered by [Device.Render], which splits
// the image into bands of rows that are rasterized in parallel.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/cs330/deskscene/gfx"
)

// Device is a software rendering device.
type Device struct {

	// Width and Height are the size of the rendered image in pixels.
	Width, Height int

	// Samples is the supersampling factor on each axis: the scene is
	// rendered at Samples times the size and scaled down. Values
	// below 2 turn supersampling off.
	Samples int

	// Background is the clear color.
	Background color.RGBA

	nextID   gfx.TextureID
	textures map[gfx.TextureID]*texture
	units    [gfx.MaxTextureUnits]*texture
	meshes   map[string]*gfx.Mesh
	draws    []drawCall
}

// drawCall is a queued draw with the state captured at Draw time.
type drawCall struct {
	mesh *gfx.Mesh
	u    gfx.Uniforms
	tex  *texture
}

// New returns a new device rendering images of the given size.
func New(width, height int) *Device {
	return &Device{
		Width:      width,
		Height:     height,
		Background: color.RGBA{0, 0, 0, 255},
		textures:   make(map[gfx.TextureID]*texture),
		meshes:     make(map[string]*gfx.Mesh),
	}
}

func (d *Device) NewTexture(img *image.RGBA, params gfx.TextureParams) (gfx.TextureID, error) {
	sz := img.Bounds().Size()
	if sz.X == 0 || sz.Y == 0 {
		return gfx.NoTexture, fmt.Errorf("raster: texture is empty")
	}
	d.nextID++
	d.textures[d.nextID] = newTexture(img, params)
	return d.nextID, nil
}

func (d *Device) DeleteTexture(id gfx.TextureID) {
	tx, ok := d.textures[id]
	if !ok {
		return
	}
	for i, b := range d.units {
		if b == tx {
			d.units[i] = nil
		}
	}
	delete(d.textures, id)
}

func (d *Device) BindTexture(unit int, id gfx.TextureID) error {
	if unit < 0 || unit >= gfx.MaxTextureUnits {
		return fmt.Errorf("raster: texture unit %d out of range", unit)
	}
	tx, ok := d.textures[id]
	if !ok {
		return fmt.Errorf("raster: texture %d does not exist", id)
	}
	d.units[unit] = tx
	return nil
}

func (d *Device) LoadMesh(ms *gfx.Mesh) error {
	if err := ms.Validate(); err != nil {
		return err
	}
	d.meshes[ms.Name] = ms
	return nil
}

// Draw queues a draw of the mesh with the given uniforms. The texture
// bound to the unit of the objectTexture sampler is captured now, so
// later binds do not affect it.
func (d *Device) Draw(mesh string, u gfx.Uniforms) error {
	ms, ok := d.meshes[mesh]
	if !ok {
		return fmt.Errorf("raster: mesh %q is not loaded", mesh)
	}
	dc := drawCall{mesh: ms, u: u}
	if unit, ok := u.Int(gfx.TextureValueName); ok && unit >= 0 && int(unit) < gfx.MaxTextureUnits {
		dc.tex = d.units[unit]
	}
	d.draws = append(d.draws, dc)
	return nil
}

// NumDraws returns the number of queued draws.
func (d *Device) NumDraws() int {
	return len(d.draws)
}

// Clear drops the queued draws.
func (d *Device) Clear() {
	d.draws = nil
}
