// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene prepares and renders a scene [Description]: it loads
// the textures, defines the materials and lights, loads the basic
// meshes, and then draws each object by setting its transform,
// texture or color, and material uniforms on a [gfx.Program] before
// issuing a draw call on the [gfx.Device].
package scene

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/ordmap"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cs330/deskscene/gfx"
	"github.com/cs330/deskscene/gfx/shape"
	"github.com/cs330/deskscene/texture"
)

// Manager manages the preparing and rendering of a scene.
// It is not safe for concurrent use.
type Manager struct {

	// Desc is the scene being rendered.
	Desc *Description

	// Program holds the shader uniforms. It is shared by all draws,
	// so a uniform keeps its value until it is set again.
	Program *gfx.Program

	// Textures is the texture registry.
	Textures *texture.Registry

	// Meshes is the basic mesh library.
	Meshes *shape.Library

	// Dir is the directory that relative texture files are read from,
	// the working directory if empty. It is not used if FS is set.
	Dir string

	// FS, if set, is the file system texture files are read from.
	FS fs.FS

	// OnTexture, if set, is called after each attempt to load a texture.
	OnTexture func(tf TextureFile, err error)

	materials ordmap.Map[string, Material]
}

// NewManager returns a new manager rendering desc onto dev.
func NewManager(dev gfx.Device, desc *Description) *Manager {
	return &Manager{
		Desc:     desc,
		Program:  gfx.NewProgram("scene"),
		Textures: texture.NewRegistry(dev),
		Meshes:   shape.NewLibrary(dev),
	}
}

// SetTransformations sets the model matrix for the next draw, from
// the scale, the rotations about X, Y and Z in degrees, and the position.
func (m *Manager) SetTransformations(scale mgl32.Vec3, rx, ry, rz float32, pos mgl32.Vec3) {
	m.Program.SetMat4(gfx.ModelName, gfx.ModelMatrix(scale, rx, ry, rz, pos))
}

// SetShaderColor draws the next objects with the given solid color
// instead of a texture.
func (m *Manager) SetShaderColor(r, g, b, a float32) {
	m.Program.SetBool(gfx.UseTextureName, false)
	m.Program.SetVec4(gfx.ColorValueName, mgl32.Vec4{r, g, b, a})
}

// SetShaderTexture draws the next objects with the texture of the
// given tag. The sampler is set to the texture slot, which is -1
// if no texture has that tag.
func (m *Manager) SetShaderTexture(tag string) {
	m.Program.SetBool(gfx.UseTextureName, true)
	slot := m.Textures.FindTextureSlot(tag)
	if slot < 0 {
		slog.Warn("scene: texture not loaded", "tag", tag)
	}
	m.Program.SetSampler2D(gfx.TextureValueName, int32(slot))
}

// SetTextureUVScale sets the texture coordinate scale, so that
// the texture repeats u times across and v times down.
func (m *Manager) SetTextureUVScale(u, v float32) {
	m.Program.SetVec2(gfx.UVScaleName, mgl32.Vec2{u, v})
}

// SetShaderMaterial sets the material uniforms to the material with
// the given tag. If there is no such material the uniforms are left
// unchanged and false is returned.
func (m *Manager) SetShaderMaterial(tag string) bool {
	mat, ok := m.FindMaterial(tag)
	if !ok {
		slog.Warn("scene: material not defined", "tag", tag)
		return false
	}
	m.Program.SetVec3(gfx.MaterialDiffuseName, mat.Diffuse)
	m.Program.SetVec3(gfx.MaterialSpecularName, mat.Specular)
	m.Program.SetFloat(gfx.MaterialShininessName, mat.Shininess)
	return true
}

// DefineMaterial adds the material, replacing any existing
// material with the same tag.
func (m *Manager) DefineMaterial(mat Material) {
	m.materials.Add(mat.Tag, mat)
}

// FindMaterial returns the material with the given tag,
// and false if there is none.
func (m *Manager) FindMaterial(tag string) (Material, bool) {
	return m.materials.ValueByKeyTry(tag)
}

// Materials returns the defined materials in definition order.
func (m *Manager) Materials() []Material {
	return m.materials.Values()
}

// DefineObjectMaterials defines the materials of the scene description.
func (m *Manager) DefineObjectMaterials() {
	for _, mat := range m.Desc.Materials {
		m.DefineMaterial(mat)
	}
}

// LoadSceneTextures loads the scene textures in order and binds each
// one to the texture unit of its slot. A texture that fails to load
// is skipped, so the remaining textures keep their load order; all
// such failures are returned together.
func (m *Manager) LoadSceneTextures(ctx context.Context) error {
	var errs []error
	for _, tf := range m.Desc.Textures {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := m.loadTexture(tf)
		if err != nil {
			errs = append(errs, err)
		}
		if m.OnTexture != nil {
			m.OnTexture(tf, err)
		}
	}
	if err := m.Textures.BindTextures(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (m *Manager) loadTexture(tf TextureFile) error {
	if m.FS != nil {
		return m.Textures.CreateTextureFS(m.FS, tf.File, tf.Tag)
	}
	fn := tf.File
	if m.Dir != "" && !filepath.IsAbs(fn) {
		fn = filepath.Join(m.Dir, fn)
	}
	return m.Textures.CreateTexture(fn, tf.Tag)
}

// SetupSceneLights turns on lighting and sets the light uniforms.
// Point lights beyond the ones in the description are turned off.
func (m *Manager) SetupSceneLights() error {
	lt := &m.Desc.Lights
	if len(lt.Points) > gfx.MaxPointLights {
		return fmt.Errorf("scene: %d point lights, at most %d are supported", len(lt.Points), gfx.MaxPointLights)
	}
	p := m.Program
	p.SetBool(gfx.UseLightingName, true)

	dl := &lt.Directional
	p.SetVec3(gfx.DirectionalLightField("direction"), dl.Direction)
	p.SetVec3(gfx.DirectionalLightField("ambient"), dl.Ambient)
	p.SetVec3(gfx.DirectionalLightField("diffuse"), dl.Diffuse)
	p.SetVec3(gfx.DirectionalLightField("specular"), dl.Specular)
	p.SetBool(gfx.DirectionalLightField("bActive"), dl.Active)

	for i := range gfx.MaxPointLights {
		if i >= len(lt.Points) {
			p.SetBool(gfx.PointLightField(i, "bActive"), false)
			continue
		}
		pl := &lt.Points[i]
		p.SetVec3(gfx.PointLightField(i, "position"), pl.Position)
		p.SetVec3(gfx.PointLightField(i, "ambient"), pl.Ambient)
		p.SetVec3(gfx.PointLightField(i, "diffuse"), pl.Diffuse)
		p.SetVec3(gfx.PointLightField(i, "specular"), pl.Specular)
		p.SetBool(gfx.PointLightField(i, "bActive"), pl.Active)
	}
	return nil
}

// SetCamera sets the view and projection matrices and the view position
// for the given camera and width / height aspect ratio. If the camera
// is not set, [DefaultCamera] is used.
func (m *Manager) SetCamera(cam Camera, aspect float32) {
	if cam.IsZero() {
		cam = DefaultCamera()
	}
	m.Program.SetMat4(gfx.ViewName, cam.View())
	m.Program.SetMat4(gfx.ProjectionName, cam.Projection(aspect))
	m.Program.SetVec3(gfx.ViewPositionName, cam.Position)
}

// PrepareScene loads the textures, defines the materials and lights,
// and loads the basic meshes. Textures that fail to load do not stop
// the preparation: objects using them are drawn with their color, and
// the failures are returned as a [TextureError] once everything else
// is ready.
func (m *Manager) PrepareScene(ctx context.Context) error {
	texErr := m.LoadSceneTextures(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}
	m.DefineObjectMaterials()
	if err := m.SetupSceneLights(); err != nil {
		return err
	}
	// only one instance of each mesh is needed, however often it is drawn
	err := m.Meshes.Load(shape.Plane, shape.Cylinder, shape.Torus, shape.Box,
		shape.Cone, shape.Sphere, shape.TaperedCylinder)
	if err != nil {
		return err
	}
	if texErr != nil {
		return &TextureError{Err: texErr}
	}
	return nil
}

// TextureError reports the textures that could not be loaded.
// The scene is ready to render when [Manager.PrepareScene] returns one.
type TextureError struct {
	Err error
}

func (e *TextureError) Error() string {
	return "loading textures: " + e.Err.Error()
}

func (e *TextureError) Unwrap() error {
	return e.Err
}

// RenderScene draws all of the objects in order.
func (m *Manager) RenderScene() error {
	for i := range m.Desc.Objects {
		if err := m.RenderObject(&m.Desc.Objects[i]); err != nil {
			return err
		}
	}
	return nil
}

// RenderObject sets the uniforms for the object and draws it.
func (m *Manager) RenderObject(ob *Object) error {
	tr := &ob.Transform
	m.SetTransformations(tr.Scale, tr.Rotation.X(), tr.Rotation.Y(), tr.Rotation.Z(), tr.Position)
	if ob.Texture != "" && m.Textures.FindTextureSlot(ob.Texture) >= 0 {
		m.SetShaderTexture(ob.Texture)
	} else {
		c := ob.SolidColor()
		m.SetShaderColor(c[0], c[1], c[2], c[3])
	}
	uv := ob.TexScale()
	m.SetTextureUVScale(uv[0], uv[1])
	if ob.Material != "" {
		m.SetShaderMaterial(ob.Material)
	}
	if err := m.Meshes.Draw(ob.Shape, m.Program.Snapshot()); err != nil {
		return fmt.Errorf("drawing %q: %w", ob.Name, err)
	}
	return nil
}

// Destroy deletes the textures.
func (m *Manager) Destroy() {
	m.Textures.DestroyTextures()
}
