// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the deskscene tool.
package config

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// Config contains the configuration options for all of the
// deskscene commands. Values can also be set in deskscene.toml.
type Config struct {

	// the scene description file (.toml, .yaml or .yml); the built-in
	// desk scene is used if it is not specified
	Scene string `posarg:"0" required:"-"`

	// the directory that texture files are read from; defaults to the
	// directory of the scene file, or the current directory for the desk
	Dir string `flag:"d,dir"`

	// the output file: an image for render, a scene file for export
	Output string `cmd:"render,export" flag:"o,output"`

	// the width of the rendered image and the viewer window
	Width int `cmd:"render,view" default:"1280"`

	// the height of the rendered image and the viewer window
	Height int `cmd:"render,view" default:"720"`

	// the supersampling factor on each axis; 1 turns it off
	Samples int `cmd:"render" default:"2"`

	// re-render whenever the scene file changes
	Watch bool `cmd:"render" flag:"w,watch"`
}

// ExpandPaths expands a leading ~ in the file and directory fields.
func (c *Config) ExpandPaths() error {
	for _, p := range []*string{&c.Scene, &c.Dir, &c.Output} {
		if *p == "" {
			continue
		}
		ep, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = ep
	}
	return nil
}

// TextureDir returns the directory texture files are read from.
func (c *Config) TextureDir() string {
	if c.Dir != "" || c.Scene == "" {
		return c.Dir
	}
	return filepath.Dir(c.Scene)
}

// Aspect returns the width / height aspect ratio, or 1 when the
// height is not positive.
func (c *Config) Aspect() float32 {
	if c.Height <= 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}
