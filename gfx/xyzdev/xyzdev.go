// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzdev provides a [gfx.Device] that builds a cogentcore
// [xyz.Scene] for interactive viewing. Each draw call becomes an
// [xyz.Solid] whose pose is decomposed from the model matrix, and
// the shader lights map onto xyz ambient, directional and point lights.
package xyzdev

import (
	"fmt"
	"image"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cs330/deskscene/gfx"
)

// Device adds meshes, textures, solids and lights to a scene.
type Device struct {
	Scene *xyz.Scene

	nextID   gfx.TextureID
	textures map[gfx.TextureID]*xyz.TextureBase
	units    [gfx.MaxTextureUnits]*xyz.TextureBase
	meshes   map[string]*xyz.GenMesh
	solids   []*xyz.Solid
	lit      bool
	view     mgl32.Mat4
}

// New returns a device that builds into the given scene.
func New(sc *xyz.Scene) *Device {
	return &Device{
		Scene:    sc,
		textures: make(map[gfx.TextureID]*xyz.TextureBase),
		meshes:   make(map[string]*xyz.GenMesh),
	}
}

// NewTexture adds the image to the scene. xyz images are top-down,
// so the rows are flipped back.
func (d *Device) NewTexture(img *image.RGBA, params gfx.TextureParams) (gfx.TextureID, error) {
	sz := img.Bounds().Size()
	if sz.X == 0 || sz.Y == 0 {
		return gfx.NoTexture, fmt.Errorf("xyzdev: texture is empty")
	}
	d.nextID++
	tx := &xyz.TextureBase{
		Name:        fmt.Sprintf("texture%d", d.nextID),
		Transparent: params.Format == gfx.RGBA8,
		RGBA:        transform.FlipV(img),
	}
	d.Scene.SetTexture(tx)
	d.textures[d.nextID] = tx
	return d.nextID, nil
}

// DeleteTexture forgets the texture. The scene keeps its copy
// until the scene itself is destroyed.
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
		return fmt.Errorf("xyzdev: texture unit %d out of range", unit)
	}
	tx, ok := d.textures[id]
	if !ok {
		return fmt.Errorf("xyzdev: texture %d does not exist", id)
	}
	d.units[unit] = tx
	return nil
}

func (d *Device) LoadMesh(ms *gfx.Mesh) error {
	if err := ms.Validate(); err != nil {
		return err
	}
	gm := GenMesh(ms)
	d.Scene.SetMesh(gm)
	d.meshes[ms.Name] = gm
	return nil
}

// GenMesh converts the mesh to an [xyz.GenMesh] of the same name.
func GenMesh(ms *gfx.Mesh) *xyz.GenMesh {
	nv := len(ms.Vertex)
	gm := &xyz.GenMesh{
		Vertex:   make(math32.ArrayF32, 0, nv*3),
		Normal:   make(math32.ArrayF32, 0, nv*3),
		TexCoord: make(math32.ArrayF32, 0, nv*2),
		Index:    make(math32.ArrayU32, len(ms.Index)),
	}
	gm.Name = ms.Name
	for _, v := range ms.Vertex {
		gm.Vertex = append(gm.Vertex, v.Pos[0], v.Pos[1], v.Pos[2])
		gm.Normal = append(gm.Normal, v.Normal[0], v.Normal[1], v.Normal[2])
		gm.TexCoord = append(gm.TexCoord, v.UV[0], v.UV[1])
	}
	copy(gm.Index, ms.Index)
	return gm
}

// Draw adds a solid for the mesh, with its pose and material taken
// from the uniforms. The first draw with lighting enabled also adds
// the scene lights, and every draw updates the camera.
func (d *Device) Draw(mesh string, u gfx.Uniforms) error {
	gm, ok := d.meshes[mesh]
	if !ok {
		return fmt.Errorf("xyzdev: mesh %q is not loaded", mesh)
	}
	if view, ok := u.Mat4(gfx.ViewName); ok && view != d.view {
		d.view = view
		d.setCamera(u, view)
	}
	if !d.lit && u.Bool(gfx.UseLightingName) {
		d.lit = true
		d.addLights(u)
	}

	sld := xyz.NewSolid(d.Scene)
	sld.SetName(fmt.Sprintf("%s%d", mesh, len(d.solids)))
	sld.SetMesh(gm)
	if model, ok := u.Mat4(gfx.ModelName); ok {
		sld.Pose.Pos, sld.Pose.Scale, sld.Pose.Quat = Decompose(model)
	}

	var tex *xyz.TextureBase
	if unit, ok := u.Int(gfx.TextureValueName); ok && unit >= 0 && int(unit) < gfx.MaxTextureUnits {
		tex = d.units[unit]
	}
	if u.Bool(gfx.UseTextureName) && tex != nil {
		sld.SetColor(RGBA(mgl32.Vec4{1, 1, 1, 1}))
		sld.SetTexture(tex)
		if uv, ok := u.Vec2(gfx.UVScaleName); ok {
			sld.Material.Tiling.Repeat.Set(uv[0], uv[1])
		}
	} else {
		c, _ := u.Vec4(gfx.ColorValueName)
		sld.SetColor(RGBA(c))
	}
	if sh, ok := u.Float(gfx.MaterialShininessName); ok {
		sld.SetShiny(sh)
	}
	if spec, ok := u.Vec3(gfx.MaterialSpecularName); ok {
		sld.SetReflective(max(spec[0], spec[1], spec[2]))
	}
	d.solids = append(d.solids, sld)
	return nil
}

// NumSolids returns the number of solids added by draws.
func (d *Device) NumSolids() int {
	return len(d.solids)
}

func (d *Device) addLights(u gfx.Uniforms) {
	vec3 := func(name string) mgl32.Vec3 {
		v, _ := u.Vec3(name)
		return v
	}
	if u.Bool(gfx.DirectionalLightField("bActive")) {
		amb := xyz.NewAmbient(d.Scene, "ambient", 1, xyz.DirectSun)
		amb.Color = RGB(vec3(gfx.DirectionalLightField("ambient")))
		dir := xyz.NewDirectional(d.Scene, "directional", 1, xyz.DirectSun)
		dir.Color = RGB(vec3(gfx.DirectionalLightField("diffuse")))
		// xyz directional lights shine from Pos toward the origin
		dir.Pos = vector3(vec3(gfx.DirectionalLightField("direction")).Mul(-1))
	}
	for i := range gfx.MaxPointLights {
		if !u.Bool(gfx.PointLightField(i, "bActive")) {
			continue
		}
		pt := xyz.NewPoint(d.Scene, fmt.Sprintf("point%d", i), 1, xyz.DirectSun)
		pt.Color = RGB(vec3(gfx.PointLightField(i, "diffuse")))
		pt.Pos = vector3(vec3(gfx.PointLightField(i, "position")))
	}
}

func (d *Device) setCamera(u gfx.Uniforms, view mgl32.Mat4) {
	cam := &d.Scene.Camera
	pos, target, up := LookAt(view)
	cam.Pose.Pos = vector3(pos)
	cam.LookAt(vector3(target), vector3(up))
	if proj, ok := u.Mat4(gfx.ProjectionName); ok {
		cam.FOV, cam.Near, cam.Far = Perspective(proj)
	}
}

func vector3(v mgl32.Vec3) math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}
