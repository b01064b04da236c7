// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture manages the scene textures: loading image files,
// uploading them to a [gfx.Device], and looking them up by tag.
//
// Textures occupy numbered slots in load order, and slot i is
// bound to texture unit i, so a shader sampler selects a texture
// by its slot. There are [gfx.MaxTextureUnits] slots.
package texture

import (
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/fsx"

	"github.com/cs330/deskscene/gfx"
)

// Entry is a registered texture.
type Entry struct {
	// Tag is the name objects use to refer to the texture.
	Tag string

	// ID is the device handle.
	ID gfx.TextureID

	// File is the file the texture was loaded from, if any.
	File string

	// Size is the image size in pixels.
	Size image.Point

	// Format is the device storage format.
	Format gfx.TextureFormat
}

// Registry holds the loaded textures in slot order.
type Registry struct {
	dev     gfx.Device
	entries []Entry
}

// NewRegistry returns an empty registry uploading to dev.
func NewRegistry(dev gfx.Device) *Registry {
	return &Registry{dev: dev}
}

// CreateTexture loads the image file and registers it under tag in the
// next free slot. Failures are logged and returned.
func (rg *Registry) CreateTexture(filename, tag string) error {
	fsys, fname, err := fsx.DirFS(filename)
	if err != nil {
		slog.Error("Could not load image", "file", filename, "error", err)
		return err
	}
	return rg.createTexture(fsys, fname, filename, tag)
}

// CreateTextureFS is [Registry.CreateTexture] for a file in fsys,
// such as embedded assets.
func (rg *Registry) CreateTextureFS(fsys fs.FS, filename, tag string) error {
	return rg.createTexture(fsys, filename, filename, tag)
}

func (rg *Registry) createTexture(fsys fs.FS, fname, display, tag string) error {
	if err := rg.checkAdd(tag); err != nil {
		slog.Error("Could not load image", "file", display, "error", err)
		return err
	}
	img, err := ReadImageFS(fsys, fname)
	if err != nil {
		err = fmt.Errorf("texture %q: %w", tag, err)
		slog.Error("Could not load image", "file", display, "error", err)
		return err
	}
	return rg.add(img, tag, display)
}

// AddImage registers an already decoded image under tag.
func (rg *Registry) AddImage(img image.Image, tag string) error {
	if err := rg.checkAdd(tag); err != nil {
		slog.Error("Could not add image", "tag", tag, "error", err)
		return err
	}
	return rg.add(img, tag, "")
}

func (rg *Registry) checkAdd(tag string) error {
	if tag == "" {
		return fmt.Errorf("texture tag is empty")
	}
	if rg.FindTextureSlot(tag) >= 0 {
		return fmt.Errorf("texture %q is already loaded", tag)
	}
	if len(rg.entries) >= gfx.MaxTextureUnits {
		return fmt.Errorf("texture %q: all %d texture slots are in use", tag, gfx.MaxTextureUnits)
	}
	return nil
}

func (rg *Registry) add(img image.Image, tag, file string) error {
	rgba, format, err := Prepare(img)
	if err != nil {
		err = fmt.Errorf("texture %q: %w", tag, err)
		slog.Error("Could not load image", "file", file, "error", err)
		return err
	}
	id, err := rg.dev.NewTexture(rgba, gfx.DefaultTextureParams(format))
	if err != nil {
		err = fmt.Errorf("texture %q: %w", tag, err)
		slog.Error("Could not create texture", "file", file, "error", err)
		return err
	}
	sz := rgba.Bounds().Size()
	rg.entries = append(rg.entries, Entry{Tag: tag, ID: id, File: file, Size: sz, Format: format})
	slog.Info("Successfully loaded image", "file", file, "width", sz.X, "height", sz.Y, "channels", format.Channels())
	return nil
}

// BindTextures binds each loaded texture to the texture unit
// matching its slot.
func (rg *Registry) BindTextures() error {
	for i, e := range rg.entries {
		if err := rg.dev.BindTexture(i, e.ID); err != nil {
			return fmt.Errorf("binding texture %q to unit %d: %w", e.Tag, i, err)
		}
	}
	return nil
}

// DestroyTextures deletes all textures from the device and
// empties the registry.
func (rg *Registry) DestroyTextures() {
	for _, e := range rg.entries {
		rg.dev.DeleteTexture(e.ID)
	}
	rg.entries = nil
}

// FindTextureID returns the device handle of the texture with the
// given tag, or [gfx.NoTexture].
func (rg *Registry) FindTextureID(tag string) gfx.TextureID {
	if i := rg.FindTextureSlot(tag); i >= 0 {
		return rg.entries[i].ID
	}
	return gfx.NoTexture
}

// FindTextureSlot returns the slot of the texture with the given tag,
// or -1.
func (rg *Registry) FindTextureSlot(tag string) int {
	return slices.IndexFunc(rg.entries, func(e Entry) bool { return e.Tag == tag })
}

// Len returns the number of loaded textures.
func (rg *Registry) Len() int {
	return len(rg.entries)
}

// Entries returns the loaded textures in slot order.
func (rg *Registry) Entries() []Entry {
	return slices.Clone(rg.entries)
}
