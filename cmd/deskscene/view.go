// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/xyz/xyzcore"

	"github.com/cs330/deskscene/config"
	"github.com/cs330/deskscene/gfx/xyzdev"
)

// View opens the scene in a window, where it can be orbited and
// zoomed with the scene editor controls.
func View(c *config.Config) error {
	desc, err := loadScene(c)
	if err != nil {
		return err
	}
	title := desc.Name
	if title == "" {
		title = "Desk scene"
	}
	b := core.NewBody("deskscene").SetTitle(title)
	se := xyzcore.NewSceneEditor(b)
	se.UpdateWidget()
	sc := se.SceneXYZ()
	sc.Background = colors.Uniform(color.RGBA{0, 0, 0, 255})

	dev := xyzdev.New(sc)
	m := newManager(c, dev, desc)
	if err := prepare(context.Background(), c, m); err != nil {
		return err
	}
	if err := m.RenderScene(); err != nil {
		return err
	}
	sc.SaveCamera("default")
	b.RunMainWindow()
	return nil
}
