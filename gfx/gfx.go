// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gfx defines the small graphics API that the desk scene renders
// through: a [Program] holding named shader uniforms, indexed triangle
// [Mesh] data, and the [Device] that owns textures and executes draws.
//
// Backends live in subpackages: trace records calls, raster renders on
// the CPU into an image, and xyzdev builds a cogentcore xyz scene.
package gfx

//go:generate core generate

import (
	"image"
)

// MaxTextureUnits is the number of texture units a [Device] provides,
// which is also the capacity of the texture registry.
const MaxTextureUnits = 16

// TextureID is a device handle for an uploaded texture.
// Valid ids are positive; -1 is used for "not found".
type TextureID int32

// NoTexture is returned by lookups that do not find a texture.
const NoTexture TextureID = -1

// TextureFormat is the internal storage format of a texture.
type TextureFormat int32 //enums:enum

const (
	// RGB8 is an opaque 3 channel texture.
	RGB8 TextureFormat = iota

	// RGBA8 is a 4 channel texture with transparency.
	RGBA8
)

// Channels returns the number of color channels for the format.
func (tf TextureFormat) Channels() int {
	if tf == RGBA8 {
		return 4
	}
	return 3
}

// Wrap is a texture coordinate wrapping mode.
type Wrap int32 //enums:enum -transform kebab

const (
	// Repeat tiles the texture outside of [0,1].
	Repeat Wrap = iota

	// ClampToEdge clamps coordinates to the edge texels.
	ClampToEdge
)

// Filter is a texture sampling filter.
type Filter int32 //enums:enum -transform lower

const (
	// Linear interpolates between the 4 nearest texels.
	Linear Filter = iota

	// Nearest takes the closest texel.
	Nearest
)

// TextureParams are the sampling parameters of a texture.
type TextureParams struct {
	Format TextureFormat

	WrapS, WrapT Wrap

	MinFilter, MagFilter Filter

	// Mipmaps requests mipmap generation for minification.
	Mipmaps bool
}

// DefaultTextureParams returns repeat wrapping on both axes, linear
// filtering and mipmaps, for the given format.
func DefaultTextureParams(format TextureFormat) TextureParams {
	return TextureParams{
		Format:    format,
		WrapS:     Repeat,
		WrapT:     Repeat,
		MinFilter: Linear,
		MagFilter: Linear,
		Mipmaps:   true,
	}
}

// Device is the graphics API used by the scene.
// A Device is not safe for concurrent use.
type Device interface {

	// NewTexture uploads the image and returns its handle.
	// The image rows are in the device's bottom-up order.
	NewTexture(img *image.RGBA, params TextureParams) (TextureID, error)

	// DeleteTexture releases the texture. Unknown ids are ignored.
	DeleteTexture(id TextureID)

	// BindTexture binds the texture to the given texture unit.
	BindTexture(unit int, id TextureID) error

	// LoadMesh uploads the mesh, replacing any mesh of the same name.
	LoadMesh(ms *Mesh) error

	// Draw draws the named mesh with the given uniform state.
	Draw(mesh string, u Uniforms) error
}
