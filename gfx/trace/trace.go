// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trace provides a [gfx.Device] that records every call,
// for inspecting the command stream a scene produces.
package trace

//go:generate core generate

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/cs330/deskscene/gfx"
)

// Ops are the recorded device operations.
type Ops int32 //enums:enum

const (
	NewTexture Ops = iota
	DeleteTexture
	BindTexture
	LoadMesh
	Draw
)

// Call is one recorded device call. Only the fields relevant
// to the Op are set.
type Call struct {
	Op Ops

	// Texture is the texture for NewTexture, DeleteTexture and BindTexture.
	Texture gfx.TextureID

	// Unit is the texture unit for BindTexture.
	Unit int

	// Params and Size describe the texture for NewTexture.
	Params gfx.TextureParams
	Size   image.Point

	// Mesh is the mesh name for LoadMesh and Draw.
	Mesh string

	// Triangles is the triangle count for LoadMesh.
	Triangles int

	// Uniforms is the uniform state for Draw.
	Uniforms gfx.Uniforms
}

// Recorder is a [gfx.Device] that records calls and validates them,
// failing the way a real device would on unknown meshes or units.
type Recorder struct {
	// Calls are the recorded calls in order.
	Calls []Call

	nextID   gfx.TextureID
	textures map[gfx.TextureID]image.Point
	meshes   map[string]*gfx.Mesh
	units    [gfx.MaxTextureUnits]gfx.TextureID
}

// New returns a new empty recorder.
func New() *Recorder {
	return &Recorder{
		textures: make(map[gfx.TextureID]image.Point),
		meshes:   make(map[string]*gfx.Mesh),
	}
}

func (r *Recorder) NewTexture(img *image.RGBA, params gfx.TextureParams) (gfx.TextureID, error) {
	if img == nil {
		return gfx.NoTexture, fmt.Errorf("trace.NewTexture: image is nil")
	}
	r.nextID++
	id := r.nextID
	sz := img.Bounds().Size()
	r.textures[id] = sz
	r.Calls = append(r.Calls, Call{Op: NewTexture, Texture: id, Params: params, Size: sz})
	return id, nil
}

func (r *Recorder) DeleteTexture(id gfx.TextureID) {
	if _, ok := r.textures[id]; !ok {
		return
	}
	delete(r.textures, id)
	for i, u := range r.units {
		if u == id {
			r.units[i] = 0
		}
	}
	r.Calls = append(r.Calls, Call{Op: DeleteTexture, Texture: id})
}

func (r *Recorder) BindTexture(unit int, id gfx.TextureID) error {
	if unit < 0 || unit >= gfx.MaxTextureUnits {
		return fmt.Errorf("trace.BindTexture: unit %d out of range", unit)
	}
	if _, ok := r.textures[id]; !ok {
		return fmt.Errorf("trace.BindTexture: texture %d does not exist", id)
	}
	r.units[unit] = id
	r.Calls = append(r.Calls, Call{Op: BindTexture, Unit: unit, Texture: id})
	return nil
}

func (r *Recorder) LoadMesh(ms *gfx.Mesh) error {
	if err := ms.Validate(); err != nil {
		return err
	}
	r.meshes[ms.Name] = ms
	r.Calls = append(r.Calls, Call{Op: LoadMesh, Mesh: ms.Name, Triangles: ms.NumTriangles()})
	return nil
}

func (r *Recorder) Draw(mesh string, u gfx.Uniforms) error {
	if _, ok := r.meshes[mesh]; !ok {
		return fmt.Errorf("trace.Draw: mesh %q is not loaded", mesh)
	}
	r.Calls = append(r.Calls, Call{Op: Draw, Mesh: mesh, Uniforms: u})
	return nil
}

// Bound returns the texture bound to the unit, or 0 if none.
func (r *Recorder) Bound(unit int) gfx.TextureID {
	if unit < 0 || unit >= gfx.MaxTextureUnits {
		return 0
	}
	return r.units[unit]
}

// LiveTextures returns the number of textures not yet deleted.
func (r *Recorder) LiveTextures() int {
	return len(r.textures)
}

// Draws returns only the Draw calls.
func (r *Recorder) Draws() []Call {
	return r.Filter(Draw)
}

// Filter returns the calls with the given op.
func (r *Recorder) Filter(op Ops) []Call {
	var cs []Call
	for _, c := range r.Calls {
		if c.Op == op {
			cs = append(cs, c)
		}
	}
	return cs
}

// Reset clears the recorded calls, keeping the device state.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Fprint writes a readable listing of the calls to w. Colors are
// used only when w is a terminal that supports them.
func (r *Recorder) Fprint(w io.Writer) error {
	out := termenv.NewOutput(w)
	opc := out.Color("4")
	namec := out.Color("6")
	for i, c := range r.Calls {
		var b strings.Builder
		fmt.Fprintf(&b, "%4d %s", i, out.String(fmt.Sprintf("%-13s", c.Op)).Foreground(opc).Bold())
		switch c.Op {
		case NewTexture:
			fmt.Fprintf(&b, " id=%d %dx%d %s", c.Texture, c.Size.X, c.Size.Y, c.Params.Format)
		case DeleteTexture:
			fmt.Fprintf(&b, " id=%d", c.Texture)
		case BindTexture:
			fmt.Fprintf(&b, " unit=%d id=%d", c.Unit, c.Texture)
		case LoadMesh:
			fmt.Fprintf(&b, " %s tris=%d", c.Mesh, c.Triangles)
		case Draw:
			fmt.Fprintf(&b, " %s", c.Mesh)
			for _, nm := range c.Uniforms.Names() {
				v, _ := c.Uniforms.Value(nm)
				fmt.Fprintf(&b, "\n       %s = %s", out.String(nm).Foreground(namec), v)
			}
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
