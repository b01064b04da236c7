// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/cs330/deskscene/scene"
)

// Watch calls fn with the freshly read description each time the given
// file is written, until ctx is done. If the file cannot be read or is
// not valid, fn is called with the error, and watching continues.
// The directory of the file is watched, so that editors that replace
// the file on save are handled.
func Watch(ctx context.Context, filename string, fn func(d *scene.Description, err error)) error {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			d, err := Open(abs)
			if err != nil {
				slog.Error("scenefile: reading changed scene", "file", filename, "error", err)
			}
			fn(d, err)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("scenefile: watching scene", "file", filename, "error", err)
		}
	}
}
