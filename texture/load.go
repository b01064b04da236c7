// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"

	"github.com/cs330/deskscene/gfx"
)

// sniffLen is the number of header bytes filetype needs.
const sniffLen = 262

// ReadImageFS reads and decodes the image file from fsys. The content
// is checked to be an image before decoding, so that a misnamed file
// gives a clear error rather than a decoder failure.
func ReadImageFS(fsys fs.FS, filename string) (image.Image, error) {
	b, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, err
	}
	return ReadImage(bytes.NewReader(b))
}

// ReadImage decodes an image, checking its content type first.
// png, jpeg, gif, tiff, bmp, and webp are supported.
func ReadImage(r io.ReadSeeker) (image.Image, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	head = head[:n]
	if !filetype.IsImage(head) {
		kind, _ := filetype.Match(head)
		if kind == filetype.Unknown {
			return nil, fmt.Errorf("content is not a recognized image")
		}
		return nil, fmt.Errorf("content is %s, not an image", kind.MIME.Value)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, _, err := imagex.Read(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Channels returns the number of color channels the image was encoded
// with: 1 for gray, 3 for opaque color and 4 for color with alpha.
// PNG decodes color with an alpha channel to NRGBA, which reports 4
// even when every pixel is opaque. Gray images with alpha decode to
// NRGBA and so also report 4.
func Channels(img image.Image) int {
	switch im := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.NYCbCrA, *image.NRGBA, *image.NRGBA64:
		return 4
	case *image.Paletted:
		for _, c := range im.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	}
	if op, ok := img.(interface{ Opaque() bool }); ok && op.Opaque() {
		return 3
	}
	if img.ColorModel() == color.GrayModel || img.ColorModel() == color.Gray16Model {
		return 1
	}
	return 4
}

// Prepare converts a decoded image into device layout: flipped
// vertically so the first row is the bottom of the image, in RGBA,
// with the format given by its channel count. Images that are not
// RGB or RGBA are rejected.
func Prepare(img image.Image) (*image.RGBA, gfx.TextureFormat, error) {
	var format gfx.TextureFormat
	switch ch := Channels(img); ch {
	case 3:
		format = gfx.RGB8
	case 4:
		format = gfx.RGBA8
	default:
		return nil, format, fmt.Errorf("not implemented to handle image with %d channels", ch)
	}
	return transform.FlipV(img), format, nil
}
