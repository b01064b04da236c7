// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"slices"
	"testing"
	"testing/fstest"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs330/deskscene/gfx"
	"github.com/cs330/deskscene/gfx/shape"
	"github.com/cs330/deskscene/gfx/trace"
)

// textureFS returns a file system with a small image for every
// texture of the description except the skipped tags.
func textureFS(t *testing.T, d *Description, skip ...string) fstest.MapFS {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	require.NoError(t, imagex.Write(img, &buf, imagex.PNG))
	fsys := fstest.MapFS{}
	for _, tf := range d.Textures {
		if !slices.Contains(skip, tf.Tag) {
			fsys[tf.File] = &fstest.MapFile{Data: buf.Bytes()}
		}
	}
	return fsys
}

func TestFindMaterial(t *testing.T) {
	m := NewManager(trace.New(), Desk())
	_, ok := m.FindMaterial("wood")
	assert.False(t, ok, "no materials defined yet")

	m.DefineObjectMaterials()
	assert.Len(t, m.Materials(), 5)

	wood, ok := m.FindMaterial("wood")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0.6, 0.5, 0.4}, wood.Diffuse)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, wood.Specular)
	assert.Equal(t, float32(64), wood.Shininess)

	glass, ok := m.FindMaterial("glass")
	require.True(t, ok)
	assert.Equal(t, float32(128), glass.Shininess)

	metal, ok := m.FindMaterial("metal")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0.7, 0.7, 0.6}, metal.Specular)

	_, ok = m.FindMaterial("gold")
	assert.False(t, ok)

	m.DefineMaterial(Material{Tag: "wood", Shininess: 8})
	wood, _ = m.FindMaterial("wood")
	assert.Equal(t, float32(8), wood.Shininess)
	assert.Len(t, m.Materials(), 5)
}

func TestSetShaderMaterial(t *testing.T) {
	m := NewManager(trace.New(), Desk())
	m.DefineObjectMaterials()

	require.True(t, m.SetShaderMaterial("leather"))
	u := m.Program.Snapshot()
	d, _ := u.Vec3(gfx.MaterialDiffuseName)
	assert.Equal(t, mgl32.Vec3{0.5, 0.4, 0.3}, d)
	s, _ := u.Float(gfx.MaterialShininessName)
	assert.Equal(t, float32(0.001), s)
	_, ok := u.Int(gfx.TextureValueName)
	assert.False(t, ok, "material does not touch the texture sampler")

	assert.False(t, m.SetShaderMaterial("velvet"))
	d, _ = m.Program.Snapshot().Vec3(gfx.MaterialDiffuseName)
	assert.Equal(t, mgl32.Vec3{0.5, 0.4, 0.3}, d, "unknown material leaves uniforms unchanged")
}

func TestShaderColorAndTexture(t *testing.T) {
	m := NewManager(trace.New(), Desk())
	require.NoError(t, m.Textures.AddImage(image.NewRGBA(image.Rect(0, 0, 2, 2)), "wood"))
	require.NoError(t, m.Textures.AddImage(image.NewRGBA(image.Rect(0, 0, 2, 2)), "gold"))

	m.SetShaderTexture("gold")
	u := m.Program.Snapshot()
	assert.True(t, u.Bool(gfx.UseTextureName))
	slot, _ := u.Int(gfx.TextureValueName)
	assert.Equal(t, int32(1), slot)

	m.SetShaderColor(1, 0.5, 0.25, 1)
	u = m.Program.Snapshot()
	assert.False(t, u.Bool(gfx.UseTextureName))
	c, _ := u.Vec4(gfx.ColorValueName)
	assert.Equal(t, mgl32.Vec4{1, 0.5, 0.25, 1}, c)
	slot, _ = u.Int(gfx.TextureValueName)
	assert.Equal(t, int32(1), slot, "sampler persists")

	m.SetShaderTexture("pen")
	slot, _ = m.Program.Snapshot().Int(gfx.TextureValueName)
	assert.Equal(t, int32(-1), slot)

	m.SetTextureUVScale(5, 1)
	uv, _ := m.Program.Snapshot().Vec2(gfx.UVScaleName)
	assert.Equal(t, mgl32.Vec2{5, 1}, uv)

	m.SetTransformations(mgl32.Vec3{1, 2, 1}, 0, 0, 0, mgl32.Vec3{5, 0, 3})
	model, _ := m.Program.Snapshot().Mat4(gfx.ModelName)
	assert.Equal(t, mgl32.Vec4{5, 0, 3, 1}, model.Col(3))
	assert.Equal(t, float32(2), model.At(1, 1))
}

func TestSetupSceneLights(t *testing.T) {
	m := NewManager(trace.New(), Desk())
	require.NoError(t, m.SetupSceneLights())
	u := m.Program.Snapshot()
	assert.True(t, u.Bool(gfx.UseLightingName))
	dir, _ := u.Vec3(gfx.DirectionalLightField("direction"))
	assert.Equal(t, mgl32.Vec3{-0.3, -1, -0.2}, dir)
	assert.True(t, u.Bool(gfx.DirectionalLightField("bActive")))

	pos, _ := u.Vec3(gfx.PointLightField(0, "position"))
	assert.Equal(t, mgl32.Vec3{2, 3, 2}, pos)
	diff, _ := u.Vec3(gfx.PointLightField(0, "diffuse"))
	assert.Equal(t, mgl32.Vec3{1, 0.8, 0.7}, diff)
	assert.True(t, u.Bool(gfx.PointLightField(0, "bActive")))
	for i := 1; i < gfx.MaxPointLights; i++ {
		assert.False(t, u.Bool(gfx.PointLightField(i, "bActive")))
	}

	d := Desk()
	d.Lights.Points = make([]PointLight, gfx.MaxPointLights+1)
	assert.Error(t, NewManager(trace.New(), d).SetupSceneLights())
}

func TestSetCamera(t *testing.T) {
	m := NewManager(trace.New(), Desk())
	m.SetCamera(Camera{}, 16.0/9)
	u := m.Program.Snapshot()
	vp, _ := u.Vec3(gfx.ViewPositionName)
	assert.Equal(t, DefaultCamera().Position, vp)
	view, _ := u.Mat4(gfx.ViewName)
	// the target maps onto the -Z axis in view space
	p := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-4)
	assert.InDelta(t, 0, p.Y(), 1e-4)
	assert.Less(t, p.Z(), float32(0))
	_, ok := u.Mat4(gfx.ProjectionName)
	assert.True(t, ok)
}

func TestRenderDesk(t *testing.T) {
	dev := trace.New()
	d := Desk()
	m := NewManager(dev, d)
	m.FS = textureFS(t, d, "pen")
	var loaded []string
	m.OnTexture = func(tf TextureFile, err error) {
		if err == nil {
			loaded = append(loaded, tf.Tag)
		}
	}

	err := m.PrepareScene(context.Background())
	require.Error(t, err)
	var te *TextureError
	assert.ErrorAs(t, err, &te)
	assert.ErrorContains(t, err, `"pen"`)
	assert.Len(t, loaded, 9)
	assert.Equal(t, 9, m.Textures.Len())
	for _, k := range shape.KindsValues() {
		assert.True(t, m.Meshes.IsLoaded(k), k.String())
	}

	m.SetCamera(d.Camera, 4.0/3)
	require.NoError(t, m.RenderScene())
	draws := dev.Draws()
	require.Len(t, draws, len(d.Objects))
	assert.Len(t, draws, 14)

	wantMesh := []shape.Kinds{shape.Plane, shape.Cylinder, shape.Torus, shape.Cylinder,
		shape.Plane, shape.Box, shape.Box, shape.Box, shape.Cylinder, shape.Cone,
		shape.Cylinder, shape.TaperedCylinder, shape.Box, shape.Box}
	for i, dr := range draws {
		ob := &d.Objects[i]
		assert.Equal(t, wantMesh[i].String(), dr.Mesh, ob.Name)
		model, _ := dr.Uniforms.Mat4(gfx.ModelName)
		assert.True(t, model.ApproxEqual(ob.Transform.Matrix()), ob.Name)

		slot := m.Textures.FindTextureSlot(ob.Texture)
		if slot >= 0 {
			assert.True(t, dr.Uniforms.Bool(gfx.UseTextureName), ob.Name)
			s, _ := dr.Uniforms.Int(gfx.TextureValueName)
			assert.Equal(t, int32(slot), s, ob.Name)
		} else {
			assert.False(t, dr.Uniforms.Bool(gfx.UseTextureName), ob.Name)
		}
		mat, _ := m.FindMaterial(ob.Material)
		diff, _ := dr.Uniforms.Vec3(gfx.MaterialDiffuseName)
		assert.Equal(t, mat.Diffuse, diff, ob.Name)
	}

	// the pen texture is missing, so the pen is drawn white
	pen := draws[10]
	c, _ := pen.Uniforms.Vec4(gfx.ColorValueName)
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, c)

	handle := draws[2]
	uv, _ := handle.Uniforms.Vec2(gfx.UVScaleName)
	assert.Equal(t, mgl32.Vec2{5, 1}, uv)

	m.Destroy()
	assert.Equal(t, 0, dev.LiveTextures())
	assert.Equal(t, 0, m.Textures.Len())
}

func TestMaterialPersists(t *testing.T) {
	dev := trace.New()
	d := &Description{
		Materials: []Material{{Tag: "metal", Shininess: 52}},
		Objects: []Object{
			{Name: "a", Shape: shape.Box, Material: "metal"},
			{Name: "b", Shape: shape.Box},
		},
	}
	m := NewManager(dev, d)
	require.NoError(t, m.PrepareScene(context.Background()))
	require.NoError(t, m.RenderScene())
	draws := dev.Draws()
	require.Len(t, draws, 2)
	s, ok := draws[1].Uniforms.Float(gfx.MaterialShininessName)
	assert.True(t, ok)
	assert.Equal(t, float32(52), s)
	uv, _ := draws[1].Uniforms.Vec2(gfx.UVScaleName)
	assert.Equal(t, mgl32.Vec2{1, 1}, uv)
}

func TestPrepareSceneCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewManager(trace.New(), Desk())
	assert.ErrorIs(t, m.PrepareScene(ctx), context.Canceled)
	assert.Equal(t, 0, m.Textures.Len())
}

func TestRenderUnloadedMesh(t *testing.T) {
	d := &Description{Objects: []Object{{Name: "ball", Shape: shape.Sphere}}}
	m := NewManager(trace.New(), d)
	err := m.RenderScene()
	assert.ErrorContains(t, err, `"ball"`)
}
