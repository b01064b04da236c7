// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import "fmt"

// Uniform names used by the scene shader.
const (
	ModelName        = "model"
	ViewName         = "view"
	ProjectionName   = "projection"
	ViewPositionName = "viewPosition"

	ColorValueName   = "objectColor"
	TextureValueName = "objectTexture"
	UseTextureName   = "bUseTexture"
	UseLightingName  = "bUseLighting"
	UVScaleName      = "UVscale"

	MaterialDiffuseName   = "material.diffuseColor"
	MaterialSpecularName  = "material.specularColor"
	MaterialShininessName = "material.shininess"
)

// MaxPointLights is the size of the pointLights uniform array.
const MaxPointLights = 5

// DirectionalLightField returns the uniform name of a directional light
// field: direction, ambient, diffuse, specular or bActive.
func DirectionalLightField(field string) string {
	return "directionalLight." + field
}

// PointLightField returns the uniform name of a field of point light i:
// position, ambient, diffuse, specular or bActive.
func PointLightField(i int, field string) string {
	return fmt.Sprintf("pointLights[%d].%s", i, field)
}
