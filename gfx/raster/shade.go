// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cs330/deskscene/gfx"
)

// light is an active light source. Directional lights have no
// position and a fixed direction toward the light.
type light struct {
	point    bool
	toLight  mgl32.Vec3
	position mgl32.Vec3
	ambient  mgl32.Vec3
	diffuse  mgl32.Vec3
	specular mgl32.Vec3
}

// shader is the fragment stage for one draw, with its uniforms
// read once up front.
type shader struct {
	useTexture  bool
	useLighting bool
	color       mgl32.Vec4
	tex         *texture
	uvScale     mgl32.Vec2
	viewPos     mgl32.Vec3
	matDiffuse  mgl32.Vec3
	matSpecular mgl32.Vec3
	shininess   float32
	lights      []light
}

func vec3(u gfx.Uniforms, name string) mgl32.Vec3 {
	v, _ := u.Vec3(name)
	return v
}

func newShader(dc *drawCall) *shader {
	u := dc.u
	sh := &shader{
		useTexture:  u.Bool(gfx.UseTextureName),
		useLighting: u.Bool(gfx.UseLightingName),
		tex:         dc.tex,
		viewPos:     vec3(u, gfx.ViewPositionName),
		matDiffuse:  vec3(u, gfx.MaterialDiffuseName),
		matSpecular: vec3(u, gfx.MaterialSpecularName),
	}
	sh.color, _ = u.Vec4(gfx.ColorValueName)
	sh.shininess, _ = u.Float(gfx.MaterialShininessName)
	var ok bool
	if sh.uvScale, ok = u.Vec2(gfx.UVScaleName); !ok {
		sh.uvScale = mgl32.Vec2{1, 1}
	}
	if !sh.useLighting {
		return sh
	}
	if u.Bool(gfx.DirectionalLightField("bActive")) {
		dir := vec3(u, gfx.DirectionalLightField("direction"))
		if dir.Len() > 0 {
			sh.lights = append(sh.lights, light{
				toLight:  dir.Mul(-1).Normalize(),
				ambient:  vec3(u, gfx.DirectionalLightField("ambient")),
				diffuse:  vec3(u, gfx.DirectionalLightField("diffuse")),
				specular: vec3(u, gfx.DirectionalLightField("specular")),
			})
		}
	}
	for i := range gfx.MaxPointLights {
		if !u.Bool(gfx.PointLightField(i, "bActive")) {
			continue
		}
		sh.lights = append(sh.lights, light{
			point:    true,
			position: vec3(u, gfx.PointLightField(i, "position")),
			ambient:  vec3(u, gfx.PointLightField(i, "ambient")),
			diffuse:  vec3(u, gfx.PointLightField(i, "diffuse")),
			specular: vec3(u, gfx.PointLightField(i, "specular")),
		})
	}
	return sh
}

// base returns the unlit surface color.
func (sh *shader) base(uv mgl32.Vec2) mgl32.Vec4 {
	if !sh.useTexture {
		return sh.color
	}
	if sh.tex == nil {
		// an incomplete texture samples as opaque black
		return mgl32.Vec4{0, 0, 0, 1}
	}
	return sh.tex.sample(mgl32.Vec2{uv[0] * sh.uvScale[0], uv[1] * sh.uvScale[1]})
}

// shade returns the fragment color for the interpolated attributes.
func (sh *shader) shade(world, normal mgl32.Vec3, uv mgl32.Vec2) mgl32.Vec4 {
	c := sh.base(uv)
	if !sh.useLighting {
		return clamp(c)
	}
	bc := c.Vec3()
	n := normal
	if l := n.Len(); l > 0 {
		n = n.Mul(1 / l)
	}
	view := sh.viewPos.Sub(world)
	if l := view.Len(); l > 0 {
		view = view.Mul(1 / l)
	}
	var sum mgl32.Vec3
	for i := range sh.lights {
		lt := &sh.lights[i]
		toLight := lt.toLight
		if lt.point {
			toLight = lt.position.Sub(world)
			if l := toLight.Len(); l > 0 {
				toLight = toLight.Mul(1 / l)
			}
		}
		diff := max(n.Dot(toLight), 0)
		// reflect(-toLight, n)
		refl := n.Mul(2 * n.Dot(toLight)).Sub(toLight)
		spec := math32.Pow(max(view.Dot(refl), 0), sh.shininess)

		sum = sum.Add(mul3(lt.ambient, bc))
		sum = sum.Add(mul3(mul3(lt.diffuse, sh.matDiffuse), bc).Mul(diff))
		sum = sum.Add(mul3(lt.specular, sh.matSpecular).Mul(spec))
	}
	return clamp(sum.Vec4(c[3]))
}

func mul3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func clamp(c mgl32.Vec4) mgl32.Vec4 {
	for i := range c {
		c[i] = min(max(c[i], 0), 1)
	}
	return c
}
