// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"

	"github.com/cs330/deskscene/config"
	"github.com/cs330/deskscene/gfx/raster"
	"github.com/cs330/deskscene/gfx/trace"
	"github.com/cs330/deskscene/scene"
	"github.com/cs330/deskscene/scenefile"
)

// Render renders the scene on the CPU and saves it as an image,
// defaulting to desk.png. With -watch, the image is rendered again
// each time the scene file changes, until interrupted.
func Render(c *config.Config) error {
	desc, err := loadScene(c)
	if err != nil {
		return err
	}
	if c.Output == "" {
		c.Output = "desk.png"
	}
	if err := renderImage(context.Background(), c, desc); err != nil {
		return err
	}
	if !c.Watch {
		return nil
	}
	if c.Scene == "" {
		return fmt.Errorf("render: -watch needs a scene file")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	slog.Info("watching scene", "file", c.Scene)
	return scenefile.Watch(ctx, c.Scene, func(d *scene.Description, err error) {
		if err == nil {
			errors.Log(renderImage(ctx, c, d))
		}
	})
}

// renderImage renders the scene and saves the image to the output file.
func renderImage(ctx context.Context, c *config.Config, desc *scene.Description) error {
	dev := raster.New(c.Width, c.Height)
	dev.Samples = c.Samples
	m := newManager(c, dev, desc)
	defer m.Destroy()
	if err := prepare(ctx, c, m); err != nil {
		return err
	}
	if err := m.RenderScene(); err != nil {
		return err
	}
	img, err := dev.Render(ctx)
	if err != nil {
		return err
	}
	if err := imagex.Save(img, c.Output); err != nil {
		return err
	}
	slog.Info("rendered scene", "file", c.Output, "draws", dev.NumDraws())
	return nil
}

// Trace prints the device calls made to prepare and render the scene.
func Trace(c *config.Config) error {
	desc, err := loadScene(c)
	if err != nil {
		return err
	}
	rec := trace.New()
	m := newManager(c, rec, desc)
	if err := prepare(context.Background(), c, m); err != nil {
		return err
	}
	if err := m.RenderScene(); err != nil {
		return err
	}
	m.Destroy()
	return rec.Fprint(stdout)
}

// Textures loads the scene textures and prints the slot, size and
// channels of each one.
func Textures(c *config.Config) error {
	desc, err := loadScene(c)
	if err != nil {
		return err
	}
	m := newManager(c, trace.New(), desc)
	defer m.Destroy()
	errors.Log(m.LoadSceneTextures(context.Background()))

	tw := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tTAG\tSIZE\tCHANNELS\tFILE")
	for i, e := range m.Textures.Entries() {
		fmt.Fprintf(tw, "%d\t%s\t%dx%d\t%d\t%s\n", i, e.Tag, e.Size.X, e.Size.Y, e.Format.Channels(), e.File)
	}
	return tw.Flush()
}
