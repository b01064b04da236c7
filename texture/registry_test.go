// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs330/deskscene/gfx"
	"github.com/cs330/deskscene/gfx/trace"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// twoRows returns a 2x2 image with a red top row and blue bottom row.
func twoRows(alpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for x := range 2 {
		img.Set(x, 0, color.NRGBA{255, 0, 0, alpha})
		img.Set(x, 1, color.NRGBA{0, 0, 255, 255})
	}
	return img
}

func saveImage(t *testing.T, img image.Image, name string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, imagex.Save(img, fn))
	return fn
}

// opaqueRows returns twoRows(255) in RGBA, as PNG decodes truecolor
// without an alpha channel.
func opaqueRows() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	draw.Draw(img, img.Bounds(), twoRows(255), image.Point{}, draw.Src)
	return img
}

// rgbaPNG encodes img as a PNG with an alpha channel (color type 6),
// which image/png only writes for images that are not opaque.
func rgbaPNG(t *testing.T, img *image.NRGBA) []byte {
	t.Helper()
	var b bytes.Buffer
	chunk := func(typ string, data []byte) {
		require.NoError(t, binary.Write(&b, binary.BigEndian, uint32(len(data))))
		crc := crc32.NewIEEE()
		crc.Write([]byte(typ))
		crc.Write(data)
		b.WriteString(typ)
		b.Write(data)
		require.NoError(t, binary.Write(&b, binary.BigEndian, crc.Sum32()))
	}
	b.WriteString("\x89PNG\r\n\x1a\n")
	sz := img.Bounds().Size()
	hdr := make([]byte, 13)
	binary.BigEndian.PutUint32(hdr[0:], uint32(sz.X))
	binary.BigEndian.PutUint32(hdr[4:], uint32(sz.Y))
	hdr[8], hdr[9] = 8, 6
	chunk("IHDR", hdr)
	var raw bytes.Buffer
	zw := zlib.NewWriter(&raw)
	for y := range sz.Y {
		zw.Write([]byte{0})
		zw.Write(img.Pix[y*img.Stride : y*img.Stride+4*sz.X])
	}
	require.NoError(t, zw.Close())
	chunk("IDAT", raw.Bytes())
	chunk("IEND", nil)
	return b.Bytes()
}

func TestPrepareFlips(t *testing.T) {
	rgba, format, err := Prepare(opaqueRows())
	require.NoError(t, err)
	assert.Equal(t, gfx.RGB8, format)
	assert.Equal(t, blue, rgba.RGBAAt(0, 0), "bottom row comes first")
	assert.Equal(t, red, rgba.RGBAAt(1, 1))

	_, format, err = Prepare(twoRows(255))
	require.NoError(t, err)
	assert.Equal(t, gfx.RGBA8, format)
}

func TestChannels(t *testing.T) {
	assert.Equal(t, 3, Channels(opaqueRows()))
	assert.Equal(t, 4, Channels(twoRows(255)), "NRGBA has an alpha channel")
	assert.Equal(t, 4, Channels(twoRows(128)))
	assert.Equal(t, 1, Channels(image.NewGray(image.Rect(0, 0, 1, 1))))
	assert.Equal(t, 3, Channels(image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420)))

	pal := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{red, blue})
	assert.Equal(t, 3, Channels(pal))
	pal.Palette = append(pal.Palette, color.RGBA{})
	assert.Equal(t, 4, Channels(pal))

	_, _, err := Prepare(image.NewGray(image.Rect(0, 0, 1, 1)))
	assert.ErrorContains(t, err, "1 channels")
}

func TestOpaqueAlphaPNG(t *testing.T) {
	img, err := ReadImage(bytes.NewReader(rgbaPNG(t, twoRows(255))))
	require.NoError(t, err)
	require.IsType(t, &image.NRGBA{}, img)
	assert.True(t, img.(*image.NRGBA).Opaque())
	assert.Equal(t, 4, Channels(img))

	rg := NewRegistry(trace.New())
	require.NoError(t, rg.AddImage(img, "lamp"))
	assert.Equal(t, gfx.RGBA8, rg.Entries()[0].Format)
}

func TestCreateTexture(t *testing.T) {
	dev := trace.New()
	rg := NewRegistry(dev)

	require.NoError(t, rg.CreateTexture(saveImage(t, twoRows(255), "wood.png"), "wood"))
	require.NoError(t, rg.CreateTexture(saveImage(t, twoRows(100), "glass.png"), "glasscup"))
	require.NoError(t, rg.CreateTexture(saveImage(t, twoRows(255), "gold.jpg"), "gold"))

	assert.Equal(t, 3, rg.Len())
	assert.Equal(t, 0, rg.FindTextureSlot("wood"))
	assert.Equal(t, 1, rg.FindTextureSlot("glasscup"))
	assert.Equal(t, 2, rg.FindTextureSlot("gold"))
	assert.Equal(t, -1, rg.FindTextureSlot("pen"))
	assert.Equal(t, gfx.NoTexture, rg.FindTextureID("pen"))

	es := rg.Entries()
	assert.Equal(t, gfx.RGB8, es[0].Format)
	assert.Equal(t, gfx.RGBA8, es[1].Format)
	assert.Equal(t, gfx.RGB8, es[2].Format, "jpeg is 3 channel")
	assert.Equal(t, image.Pt(2, 2), es[0].Size)
	assert.Equal(t, es[1].ID, rg.FindTextureID("glasscup"))

	nt := dev.Filter(trace.NewTexture)
	require.Len(t, nt, 3)
	assert.Equal(t, gfx.DefaultTextureParams(gfx.RGBA8), nt[1].Params)

	require.NoError(t, rg.BindTextures())
	for i, e := range es {
		assert.Equal(t, e.ID, dev.Bound(i))
	}

	rg.DestroyTextures()
	assert.Equal(t, 0, rg.Len())
	assert.Equal(t, 0, dev.LiveTextures())
	assert.Len(t, dev.Filter(trace.DeleteTexture), 3)
}

func TestCreateTextureErrors(t *testing.T) {
	dev := trace.New()
	rg := NewRegistry(dev)

	assert.Error(t, rg.CreateTexture(filepath.Join(t.TempDir(), "missing.jpg"), "missing"))

	txt := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(txt, []byte("this is not an image at all"), 0o644))
	assert.ErrorContains(t, rg.CreateTexture(txt, "notes"), "not a recognized image")

	gray := saveImage(t, image.NewGray(image.Rect(0, 0, 4, 4)), "gray.png")
	assert.ErrorContains(t, rg.CreateTexture(gray, "gray"), "channels")

	fn := saveImage(t, twoRows(255), "wood.png")
	require.NoError(t, rg.CreateTexture(fn, "wood"))
	assert.ErrorContains(t, rg.CreateTexture(fn, "wood"), "already loaded")
	assert.Error(t, rg.CreateTexture(fn, ""))

	assert.Equal(t, 1, rg.Len())
	assert.Equal(t, 1, dev.LiveTextures())
}

// captureLog sends the default logger to the returned buffer
// for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestAddImageLogs(t *testing.T) {
	logs := captureLog(t)
	rg := NewRegistry(trace.New())
	require.NoError(t, rg.AddImage(twoRows(255), "lamp"))
	assert.NotContains(t, logs.String(), "level=ERROR")

	assert.Error(t, rg.AddImage(twoRows(255), "lamp"))
	assert.Contains(t, logs.String(), "Could not add image")
	assert.Contains(t, logs.String(), "already loaded")

	logs.Reset()
	assert.Error(t, rg.AddImage(twoRows(255), ""))
	assert.Contains(t, logs.String(), "texture tag is empty")
}

func TestRegistryCapacity(t *testing.T) {
	rg := NewRegistry(trace.New())
	for i := range gfx.MaxTextureUnits {
		require.NoError(t, rg.AddImage(twoRows(255), fmt.Sprintf("t%d", i)))
	}
	err := rg.AddImage(twoRows(255), "one-too-many")
	assert.ErrorContains(t, err, "slots are in use")
	assert.Equal(t, gfx.MaxTextureUnits, rg.Len())
	assert.Equal(t, gfx.MaxTextureUnits-1, rg.FindTextureSlot(fmt.Sprintf("t%d", gfx.MaxTextureUnits-1)))
}

func TestCreateTextureFS(t *testing.T) {
	fn := saveImage(t, twoRows(255), "lamp.png")
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	fsys := fstest.MapFS{"textures/lamp.png": {Data: b}}

	rg := NewRegistry(trace.New())
	require.NoError(t, rg.CreateTextureFS(fsys, "textures/lamp.png", "lamp"))
	assert.Equal(t, "textures/lamp.png", rg.Entries()[0].File)
	assert.Error(t, rg.CreateTextureFS(fsys, "textures/none.png", "none"))
}
