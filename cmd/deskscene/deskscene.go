// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command deskscene renders, traces, views and exports the desk scene,
// or any other scene described in a TOML or YAML file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"github.com/schollz/progressbar/v3"

	"github.com/cs330/deskscene/config"
	"github.com/cs330/deskscene/gfx"
	"github.com/cs330/deskscene/scene"
	"github.com/cs330/deskscene/scenefile"
)

// stdout is where command output is written.
var stdout io.Writer = os.Stdout

// stderr is where progress is shown.
var stderr io.Writer = os.Stderr

func main() {
	opts := cli.DefaultOptions("deskscene", "Deskscene renders a 3D desk scene of basic shapes, textures, materials and lights.")
	opts.DefaultFiles = []string{"deskscene.toml"}
	cli.Run(opts, &config.Config{}, commands()...)
}

// commands returns the deskscene commands, with render as the root.
func commands() []*cli.Cmd[*config.Config] {
	return []*cli.Cmd[*config.Config]{
		{Func: Render, Name: "render", Root: true,
			Doc: "Render renders the scene on the CPU and saves it as an image, defaulting to desk.png. With -watch, the image is rendered again each time the scene file changes."},
		{Func: Trace, Name: "trace",
			Doc: "Trace prints the device calls made to prepare and render the scene."},
		{Func: View, Name: "view",
			Doc: "View opens the scene in a window, where it can be orbited and zoomed."},
		{Func: Export, Name: "export",
			Doc: "Export writes the scene description to a TOML or YAML file, defaulting to desk.toml."},
		{Func: Textures, Name: "textures",
			Doc: "Textures loads the scene textures and prints the slot, size and channels of each one."},
	}
}

// loadScene returns the scene named in the config, or the built-in desk.
func loadScene(c *config.Config) (*scene.Description, error) {
	if err := c.ExpandPaths(); err != nil {
		return nil, err
	}
	if c.Scene == "" {
		return scene.Desk(), nil
	}
	return scenefile.Open(c.Scene)
}

// newManager returns a manager for the scene on dev, reading textures
// from the config directory and showing their progress.
func newManager(c *config.Config, dev gfx.Device, desc *scene.Description) *scene.Manager {
	m := scene.NewManager(dev, desc)
	m.Dir = c.TextureDir()
	if n := len(desc.Textures); n > 1 {
		bar := progressbar.NewOptions(n,
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("textures"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish())
		m.OnTexture = func(tf scene.TextureFile, err error) {
			bar.Describe(tf.Tag)
			errors.Log(bar.Add(1))
		}
	}
	return m
}

// prepare prepares the scene and sets the camera. Textures that fail
// to load are logged and the scene is drawn without them.
func prepare(ctx context.Context, c *config.Config, m *scene.Manager) error {
	err := m.PrepareScene(ctx)
	var te *scene.TextureError
	if errors.As(err, &te) {
		errors.Log(err)
	} else if err != nil {
		return err
	}
	m.SetCamera(m.Desc.Camera, c.Aspect())
	return nil
}

// Export writes the scene description to a TOML or YAML file,
// defaulting to desk.toml.
func Export(c *config.Config) error {
	desc, err := loadScene(c)
	if err != nil {
		return err
	}
	if c.Output == "" {
		c.Output = "desk.toml"
	}
	if err := scenefile.Validate(desc); err != nil {
		return err
	}
	if err := scenefile.Save(desc, c.Output); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s\n", c.Output)
	return nil
}
