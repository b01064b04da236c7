// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs330/deskscene/config"
	"github.com/cs330/deskscene/scene"
	"github.com/cs330/deskscene/scenefile"
)

// deskDir writes the desk scene and small texture images to a
// temporary directory, leaving out the skipped texture tags.
func deskDir(t *testing.T, skip ...string) string {
	t.Helper()
	dir := t.TempDir()
	d := scene.Desk()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := range 2 {
		for x := range 4 {
			img.Set(x, y, color.RGBA{uint8(60 * x), 120, 200, 255})
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "textures"), 0o755))
	for i := range d.Textures {
		tf := &d.Textures[i]
		tf.File = strings.TrimSuffix(tf.File, ".jpg") + ".png"
		if !slices.Contains(skip, tf.Tag) {
			require.NoError(t, imagex.Save(img, filepath.Join(dir, tf.File)))
		}
	}
	require.NoError(t, scenefile.Save(d, filepath.Join(dir, "desk.toml")))
	return dir
}

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	stdout, stderr = &buf, io.Discard
	t.Cleanup(func() {
		stdout, stderr = os.Stdout, os.Stderr
	})
	return &buf
}

func TestCommands(t *testing.T) {
	cmds, err := cli.CmdsFromCmdOrFuncs[*config.Config](commands())
	require.NoError(t, err)
	var roots []string
	names := make([]string, len(cmds))
	for i, cmd := range cmds {
		names[i] = cmd.Name
		assert.NotEmpty(t, cmd.Doc, cmd.Name)
		assert.NotNil(t, cmd.Func, cmd.Name)
		if cmd.Root {
			roots = append(roots, cmd.Name)
		}
	}
	assert.Equal(t, []string{"render"}, roots)
	assert.Equal(t, []string{"render", "trace", "view", "export", "textures"}, names)
}

func TestRender(t *testing.T) {
	capture(t)
	dir := deskDir(t)
	c := &config.Config{
		Scene:   filepath.Join(dir, "desk.toml"),
		Output:  filepath.Join(dir, "out.png"),
		Width:   64,
		Height:  36,
		Samples: 1,
	}
	require.NoError(t, Render(c))
	img, _, err := imagex.Open(c.Output)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(64, 36), img.Bounds().Size())

	// the floor fills the bottom of the image
	_, _, _, a := img.At(32, 27).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	r, g, b, _ := img.At(32, 27).RGBA()
	assert.NotZero(t, r+g+b)
}

func TestRenderMissingTexture(t *testing.T) {
	capture(t)
	dir := deskDir(t, "wood", "pen")
	c := &config.Config{
		Scene:   filepath.Join(dir, "desk.toml"),
		Output:  filepath.Join(dir, "out.png"),
		Width:   32,
		Height:  18,
		Samples: 2,
	}
	require.NoError(t, Render(c))
	assert.FileExists(t, c.Output)
}

func TestRenderWatchNeedsScene(t *testing.T) {
	capture(t)
	dir := t.TempDir()
	c := &config.Config{Dir: dir, Output: filepath.Join(dir, "desk.png"), Width: 8, Height: 8, Watch: true}
	assert.ErrorContains(t, Render(c), "needs a scene file")
}

func TestTrace(t *testing.T) {
	out := capture(t)
	dir := deskDir(t)
	c := &config.Config{Scene: filepath.Join(dir, "desk.toml"), Width: 16, Height: 9}
	require.NoError(t, Trace(c))
	s := out.String()
	assert.Contains(t, s, "NewTexture")
	assert.Contains(t, s, "LoadMesh")
	assert.Equal(t, 14, bytes.Count(out.Bytes(), []byte("Draw ")))
	assert.Contains(t, s, "DeleteTexture")
}

func TestTextures(t *testing.T) {
	out := capture(t)
	dir := deskDir(t, "coffee")
	c := &config.Config{Scene: filepath.Join(dir, "desk.toml")}
	require.NoError(t, Textures(c))
	s := out.String()
	assert.Contains(t, s, "SLOT")
	assert.Contains(t, s, "glasscup")
	assert.Contains(t, s, "4x2")
	assert.NotContains(t, s, "coffee")
	// the header and one line per loaded texture
	assert.Equal(t, 10, bytes.Count(out.Bytes(), []byte("\n")))
}

func TestExport(t *testing.T) {
	capture(t)
	dir := t.TempDir()
	c := &config.Config{Output: filepath.Join(dir, "desk.yaml")}
	require.NoError(t, Export(c))
	d, err := scenefile.Open(c.Output)
	require.NoError(t, err)
	assert.Equal(t, scene.Desk(), d)

	c = &config.Config{Scene: c.Output, Output: filepath.Join(dir, "copy.toml")}
	require.NoError(t, Export(c))
	d, err = scenefile.Open(c.Output)
	require.NoError(t, err)
	assert.Equal(t, scene.Desk(), d)
}

func TestLoadSceneError(t *testing.T) {
	c := &config.Config{Scene: filepath.Join(t.TempDir(), "none.toml")}
	_, err := loadScene(c)
	assert.Error(t, err)
}
