// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cs330/deskscene/gfx/shape"
)

// Desk returns the built-in desk scene: a wooden desk top with a
// coffee cup, a laptop, a desk lamp, a pen and a book.
//
// Every object names its material, including the ones that rely on the
// material of the previous draw, so the objects can be drawn in any order.
func Desk() *Description {
	return &Description{
		Version:   Version,
		Name:      "desk",
		Textures:  deskTextures(),
		Materials: deskMaterials(),
		Lights:    deskLights(),
		Camera:    DefaultCamera(),
		Objects:   deskObjects(),
	}
}

func deskTextures() []TextureFile {
	return []TextureFile{
		{Tag: "glasscup", File: "textures/glasscup.jpg"},
		{Tag: "wood", File: "textures/wood.jpg"},
		{Tag: "coffee", File: "textures/vinous-liquid-with-foam-blobs.jpg"},
		{Tag: "lamp", File: "textures/lamp.jpg"},
		{Tag: "gold", File: "textures/gold.jpg"},
		{Tag: "keyboard", File: "textures/keyboard.png"},
		{Tag: "aluminum", File: "textures/aluminum.png"},
		{Tag: "login", File: "textures/login.jpg"},
		{Tag: "leather", File: "textures/leather.jpg"},
		{Tag: "pen", File: "textures/pen.jpg"},
	}
}

func deskMaterials() []Material {
	return []Material{
		{Tag: "wood", Diffuse: mgl32.Vec3{0.6, 0.5, 0.4}, Specular: mgl32.Vec3{0.5, 0.5, 0.5}, Shininess: 64},
		{Tag: "glass", Diffuse: mgl32.Vec3{0.7, 0.7, 0.8}, Specular: mgl32.Vec3{1, 1, 1}, Shininess: 128},
		{Tag: "metal", Diffuse: mgl32.Vec3{0.4, 0.4, 0.4}, Specular: mgl32.Vec3{0.7, 0.7, 0.6}, Shininess: 52},
		{Tag: "leather", Diffuse: mgl32.Vec3{0.5, 0.4, 0.3}, Specular: mgl32.Vec3{0.01, 0.01, 0.01}, Shininess: 0.001},
		{Tag: "canvas", Diffuse: mgl32.Vec3{0.7, 0.6, 0.5}, Specular: mgl32.Vec3{0.02, 0.02, 0.02}, Shininess: 0.001},
	}
}

func deskLights() Lights {
	return Lights{
		Directional: DirectionalLight{
			Direction: mgl32.Vec3{-0.3, -1, -0.2},
			Ambient:   mgl32.Vec3{0.4, 0.4, 0.4},
			Diffuse:   mgl32.Vec3{0.6, 0.6, 0.6},
			Specular:  mgl32.Vec3{0.3, 0.3, 0.3},
			Active:    true,
		},
		Points: []PointLight{{
			Position: mgl32.Vec3{2, 3, 2},
			Ambient:  mgl32.Vec3{0.2, 0.2, 0.2},
			Diffuse:  mgl32.Vec3{1, 0.8, 0.7},
			Specular: mgl32.Vec3{0.9, 0.8, 0.7},
			Active:   true,
		}},
	}
}

func xform(scale, rot, pos mgl32.Vec3) Transform {
	return Transform{Scale: scale, Rotation: rot, Position: pos}
}

func deskObjects() []Object {
	white := mgl32.Vec4{1, 1, 1, 1}
	one := mgl32.Vec2{1, 1}
	return []Object{
		{
			Name: "floor", Shape: shape.Plane,
			Transform: xform(mgl32.Vec3{20, 1, 10}, mgl32.Vec3{}, mgl32.Vec3{}),
			Texture:   "wood", UVScale: one, Material: "wood",
		},
		{
			Name: "cup", Shape: shape.Cylinder,
			Transform: xform(mgl32.Vec3{1, 2, 1}, mgl32.Vec3{}, mgl32.Vec3{5, 0, 3}),
			Texture:   "glasscup", UVScale: one, Material: "glass",
		},
		{
			Name: "cup handle", Shape: shape.Torus,
			Transform: xform(mgl32.Vec3{0.8, 0.8, 1}, mgl32.Vec3{}, mgl32.Vec3{6, 1, 3.5}),
			Texture:   "glasscup", UVScale: mgl32.Vec2{5, 1}, Material: "glass",
		},
		{
			// thin disc just inside the top of the cup
			Name: "coffee", Shape: shape.Cylinder,
			Transform: xform(mgl32.Vec3{0.95, 0.05, 0.95}, mgl32.Vec3{}, mgl32.Vec3{5, 2, 3}),
			Texture:   "coffee", UVScale: one, Material: "glass",
		},
		{
			Name: "laptop screen", Shape: shape.Plane,
			Transform: xform(mgl32.Vec3{4, 0, 2.5}, mgl32.Vec3{90, 0, 0}, mgl32.Vec3{-1, 2, -5.5}),
			Texture:   "login", UVScale: one, Material: "glass",
		},
		{
			Name: "laptop keyboard", Shape: shape.Box,
			Transform: xform(mgl32.Vec3{8.1, 0.5, 6}, mgl32.Vec3{}, mgl32.Vec3{-1, 0, -2.5}),
			Texture:   "keyboard", UVScale: one, Material: "glass",
		},
		{
			Name: "laptop base", Shape: shape.Box,
			Transform: xform(mgl32.Vec3{8.1, 0.49, 6.1}, mgl32.Vec3{}, mgl32.Vec3{-1, 0, -2.5}),
			Texture:   "gold", UVScale: one, Material: "metal",
		},
		{
			Name: "lamp base", Shape: shape.Box,
			Transform: xform(mgl32.Vec3{3, 1, 2}, mgl32.Vec3{}, mgl32.Vec3{-10, 0, -3}),
			Texture:   "gold", UVScale: one, Material: "metal",
		},
		{
			Name: "lamp stand", Shape: shape.Cylinder,
			Transform: xform(mgl32.Vec3{0.5, 7, 0.5}, mgl32.Vec3{0, 90, 0}, mgl32.Vec3{-10, 0, -3}),
			Texture:   "gold", UVScale: one, Material: "metal",
		},
		{
			Name: "lamp shade", Shape: shape.Cone,
			Transform: xform(mgl32.Vec3{3, 3, 1}, mgl32.Vec3{}, mgl32.Vec3{-10, 6, -3}),
			Texture:   "lamp", UVScale: one, Material: "canvas",
		},
		{
			Name: "pen", Shape: shape.Cylinder,
			Transform: xform(mgl32.Vec3{0.2, 1, 0.2}, mgl32.Vec3{90, 130, 0}, mgl32.Vec3{-6, 0.5, 4}),
			Texture:   "pen", UVScale: one, Material: "metal",
		},
		{
			Name: "pen tip", Shape: shape.TaperedCylinder,
			Transform: xform(mgl32.Vec3{0.16, 0.2, 0.16}, mgl32.Vec3{270, 130, 0}, mgl32.Vec3{-6, 0.5, 4}),
			Texture:   "aluminum", UVScale: one, Material: "metal",
		},
		{
			Name: "book cover", Shape: shape.Box,
			Transform: xform(mgl32.Vec3{4, 2, 0.3}, mgl32.Vec3{270, 130, 0}, mgl32.Vec3{-8, 0.5, 4}),
			Texture:   "leather", UVScale: one, Material: "leather",
		},
		{
			Name: "book pages", Shape: shape.Box,
			Transform: xform(mgl32.Vec3{4, 1.98, 0.2}, mgl32.Vec3{270, 130, 0}, mgl32.Vec3{-7.93, 0.5, 4}),
			Color:     &white, UVScale: one, Material: "leather",
		},
	}
}
