// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenefile reads and writes scene descriptions
// as TOML or YAML files.
package scenefile

//go:generate core generate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/fsx"
	"github.com/Masterminds/semver/v3"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cs330/deskscene/gfx"
	"github.com/cs330/deskscene/gfx/shape"
	"github.com/cs330/deskscene/scene"
)

// Formats are the supported file formats.
type Formats int32 //enums:enum -transform lower

const (
	// TOML is the format of .toml files.
	TOML Formats = iota

	// YAML is the format of .yaml and .yml files.
	YAML
)

// ExtToFormat returns the format for the extension of the given filename.
func ExtToFormat(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("scenefile: %q is not a .toml, .yaml or .yml file", filename)
}

// VersionConstraint is the range of description versions that can be read.
const VersionConstraint = "^1.0"

// CheckVersion returns an error if the version is not in [VersionConstraint].
func CheckVersion(version string) error {
	if version == "" {
		return errors.New("scenefile: version is missing")
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("scenefile: version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(VersionConstraint)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("scenefile: version %s is not supported, need %s", v, VersionConstraint)
	}
	return nil
}

// Open reads the scene description from the given file.
func Open(filename string) (*scene.Description, error) {
	fsys, fname, err := fsx.DirFS(filename)
	if err != nil {
		return nil, err
	}
	return OpenFS(fsys, fname)
}

// OpenFS reads the scene description from the given file in fsys.
func OpenFS(fsys fs.FS, filename string) (*scene.Description, error) {
	f, err := ExtToFormat(filename)
	if err != nil {
		return nil, err
	}
	b, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, err
	}
	d, err := Read(bytes.NewReader(b), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return d, nil
}

// Read decodes a scene description in the given format,
// checks its version, and validates it.
func Read(r io.Reader, f Formats) (*scene.Description, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	d := &scene.Description{}
	switch f {
	case TOML:
		err = toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(d)
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(d)
	default:
		err = fmt.Errorf("scenefile: format %v not valid", f)
	}
	if err != nil {
		return nil, err
	}
	if err := CheckVersion(d.Version); err != nil {
		return nil, err
	}
	if err := checkShapes(b, f); err != nil {
		return nil, err
	}
	if err := Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

// objectShapes holds the shape names of the objects as written,
// so that a missing or unknown shape is not read as a plane.
type objectShapes struct {
	Objects []struct {
		Name  string  `toml:"name" yaml:"name"`
		Shape *string `toml:"shape" yaml:"shape"`
	} `toml:"objects" yaml:"objects"`
}

// checkShapes returns an error for each object in the encoded
// description whose shape is missing or is not a [shape.Kinds] name.
func checkShapes(b []byte, f Formats) error {
	var raw objectShapes
	var err error
	switch f {
	case TOML:
		err = toml.Unmarshal(b, &raw)
	case YAML:
		err = yaml.Unmarshal(b, &raw)
	}
	if err != nil {
		return err
	}
	var errs []error
	for i, ob := range raw.Objects {
		name := ob.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if ob.Shape == nil {
			errs = append(errs, fmt.Errorf("object %s: shape is required", name))
			continue
		}
		var k shape.Kinds
		if err := k.SetString(*ob.Shape); err != nil {
			errs = append(errs, fmt.Errorf("object %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Save writes the scene description to the given file,
// in the format given by its extension.
func Save(d *scene.Description, filename string) error {
	f, err := ExtToFormat(filename)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err := Write(d, &b, f); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0o644)
}

// Write encodes the scene description in the given format.
func Write(d *scene.Description, w io.Writer, f Formats) error {
	switch f {
	case TOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(d)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("scenefile: format %v not valid", f)
}

// Validate checks that the tags of the textures and materials are
// unique, that the objects have known shapes and refer to defined
// textures and materials, and that there are not more textures or
// point lights than the shader supports. All problems are returned.
func Validate(d *scene.Description) error {
	var errs []error
	texs := map[string]bool{}
	for i, tf := range d.Textures {
		switch {
		case tf.Tag == "":
			errs = append(errs, fmt.Errorf("texture %d has no tag", i))
		case texs[tf.Tag]:
			errs = append(errs, fmt.Errorf("texture %q is defined twice", tf.Tag))
		}
		if tf.File == "" {
			errs = append(errs, fmt.Errorf("texture %q has no file", tf.Tag))
		}
		texs[tf.Tag] = true
	}
	if n := len(d.Textures); n > gfx.MaxTextureUnits {
		errs = append(errs, fmt.Errorf("%d textures, at most %d are supported", n, gfx.MaxTextureUnits))
	}
	mats := map[string]bool{}
	for i, mt := range d.Materials {
		switch {
		case mt.Tag == "":
			errs = append(errs, fmt.Errorf("material %d has no tag", i))
		case mats[mt.Tag]:
			errs = append(errs, fmt.Errorf("material %q is defined twice", mt.Tag))
		}
		mats[mt.Tag] = true
	}
	if n := len(d.Lights.Points); n > gfx.MaxPointLights {
		errs = append(errs, fmt.Errorf("%d point lights, at most %d are supported", n, gfx.MaxPointLights))
	}
	for i := range d.Objects {
		ob := &d.Objects[i]
		name := ob.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if ob.Shape < 0 || ob.Shape >= shape.KindsN {
			errs = append(errs, fmt.Errorf("object %s: unknown shape %d", name, ob.Shape))
		}
		if ob.Texture != "" && !texs[ob.Texture] {
			errs = append(errs, fmt.Errorf("object %s: texture %q is not defined", name, ob.Texture))
		}
		if ob.Material != "" && !mats[ob.Material] {
			errs = append(errs, fmt.Errorf("object %s: material %q is not defined", name, ob.Material))
		}
	}
	if c := d.Camera; !c.IsZero() {
		if c.FOV <= 0 || c.FOV >= 180 {
			errs = append(errs, fmt.Errorf("camera fov %g is not in (0, 180)", c.FOV))
		}
		if c.Near <= 0 || c.Far <= c.Near {
			errs = append(errs, fmt.Errorf("camera near %g and far %g are not valid", c.Near, c.Far))
		}
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy of the scene description.
func Clone(d *scene.Description) (*scene.Description, error) {
	c := &scene.Description{}
	if err := copier.CopyWithOption(c, d, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return c, nil
}
