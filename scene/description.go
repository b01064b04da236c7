// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cs330/deskscene/gfx"
	"github.com/cs330/deskscene/gfx/shape"
)

// Version is the scene description format version written by this package.
const Version = "1.0.0"

// Description is a complete scene: the textures to load, the materials
// and lights to define, the camera, and the objects to draw in order.
type Description struct {

	// Version is the description format version.
	Version string `toml:"version" yaml:"version"`

	// Name is the scene name.
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	// Textures are loaded in order, which determines their texture slots.
	Textures []TextureFile `toml:"textures" yaml:"textures"`

	Materials []Material `toml:"materials" yaml:"materials"`

	Lights Lights `toml:"lights" yaml:"lights"`

	Camera Camera `toml:"camera" yaml:"camera"`

	// Objects are drawn in order.
	Objects []Object `toml:"objects" yaml:"objects"`
}

// TextureFile is a texture image file and the tag objects use for it.
type TextureFile struct {
	Tag  string `toml:"tag" yaml:"tag"`
	File string `toml:"file" yaml:"file"`
}

// Material holds the lighting response of a surface.
type Material struct {
	Tag string `toml:"tag" yaml:"tag"`

	// Diffuse scales the diffuse light.
	Diffuse mgl32.Vec3 `toml:"diffuse" yaml:"diffuse,flow"`

	// Specular scales the specular highlight.
	Specular mgl32.Vec3 `toml:"specular" yaml:"specular,flow"`

	// Shininess is the specular exponent.
	Shininess float32 `toml:"shininess" yaml:"shininess"`
}

// Lights are the scene light sources.
type Lights struct {
	Directional DirectionalLight `toml:"directional" yaml:"directional"`

	// Points are the point lights, at most [gfx.MaxPointLights].
	Points []PointLight `toml:"points" yaml:"points"`
}

// DirectionalLight is a light with parallel rays, like the sun.
type DirectionalLight struct {
	Direction mgl32.Vec3 `toml:"direction" yaml:"direction,flow"`
	Ambient   mgl32.Vec3 `toml:"ambient" yaml:"ambient,flow"`
	Diffuse   mgl32.Vec3 `toml:"diffuse" yaml:"diffuse,flow"`
	Specular  mgl32.Vec3 `toml:"specular" yaml:"specular,flow"`
	Active    bool       `toml:"active" yaml:"active"`
}

// PointLight is a light at a position radiating in all directions.
type PointLight struct {
	Position mgl32.Vec3 `toml:"position" yaml:"position,flow"`
	Ambient  mgl32.Vec3 `toml:"ambient" yaml:"ambient,flow"`
	Diffuse  mgl32.Vec3 `toml:"diffuse" yaml:"diffuse,flow"`
	Specular mgl32.Vec3 `toml:"specular" yaml:"specular,flow"`
	Active   bool       `toml:"active" yaml:"active"`
}

// Camera is a fixed perspective camera.
type Camera struct {
	Position mgl32.Vec3 `toml:"position" yaml:"position,flow"`
	Target   mgl32.Vec3 `toml:"target" yaml:"target,flow"`
	Up       mgl32.Vec3 `toml:"up" yaml:"up,flow"`

	// FOV is the vertical field of view in degrees.
	FOV  float32 `toml:"fov" yaml:"fov"`
	Near float32 `toml:"near" yaml:"near"`
	Far  float32 `toml:"far" yaml:"far"`
}

// DefaultCamera returns the camera used when a description has none:
// above and in front of the desk, looking at the origin.
func DefaultCamera() Camera {
	return Camera{
		Position: mgl32.Vec3{0, 10, 18},
		Up:       mgl32.Vec3{0, 1, 0},
		FOV:      45,
		Near:     0.1,
		Far:      100,
	}
}

// IsZero returns true if the camera has not been set.
func (c Camera) IsZero() bool {
	return c == Camera{}
}

// View returns the view matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the perspective projection matrix for the
// given width / height aspect ratio.
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// Transform places a mesh: scale, then rotation about X, Y and Z in
// degrees, then translation to Position.
type Transform struct {
	Scale    mgl32.Vec3 `toml:"scale" yaml:"scale,flow"`
	Rotation mgl32.Vec3 `toml:"rotation" yaml:"rotation,flow"`
	Position mgl32.Vec3 `toml:"position" yaml:"position,flow"`
}

// Matrix returns the model matrix of the transform.
func (tr Transform) Matrix() mgl32.Mat4 {
	return gfx.ModelMatrix(tr.Scale, tr.Rotation.X(), tr.Rotation.Y(), tr.Rotation.Z(), tr.Position)
}

// Object is one draw call in the scene.
type Object struct {
	Name  string      `toml:"name" yaml:"name"`
	Shape shape.Kinds `toml:"shape" yaml:"shape"`

	Transform Transform `toml:"transform" yaml:"transform"`

	// Texture is the tag of the texture to draw with. When it is
	// empty or not loaded, the object is drawn with Color.
	Texture string `toml:"texture,omitempty" yaml:"texture,omitempty"`

	// Color is the solid RGBA color; white when unset.
	Color *mgl32.Vec4 `toml:"color,omitempty" yaml:"color,omitempty,flow"`

	// UVScale multiplies the texture coordinates; (1, 1) when unset.
	UVScale mgl32.Vec2 `toml:"uv_scale" yaml:"uv_scale,flow"`

	// Material is the material tag. When it is empty the material
	// uniforms keep the values of the previous object.
	Material string `toml:"material,omitempty" yaml:"material,omitempty"`
}

// SolidColor returns the color used when the object is not textured.
func (ob *Object) SolidColor() mgl32.Vec4 {
	if ob.Color == nil {
		return mgl32.Vec4{1, 1, 1, 1}
	}
	return *ob.Color
}

// TexScale returns the UV scale, defaulting to (1, 1).
func (ob *Object) TexScale() mgl32.Vec2 {
	if ob.UVScale == (mgl32.Vec2{}) {
		return mgl32.Vec2{1, 1}
	}
	return ob.UVScale
}

// TextureTags returns the tags of all textures, in load order.
func (d *Description) TextureTags() []string {
	tags := make([]string, len(d.Textures))
	for i, tx := range d.Textures {
		tags[i] = tx.Tag
	}
	return tags
}
