// Copyright (c) 2026, The Deskscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/ordmap"
	"github.com/go-gl/mathgl/mgl32"
)

// Kinds are the uniform value types.
type Kinds int32 //enums:enum -transform lower

const (
	// Int is a signed integer, also used for bools and samplers.
	Int Kinds = iota
	Float
	Vec2
	Vec3
	Vec4
	Mat4
)

// Value is one uniform value. Bools and samplers are stored as
// ints, as the GL uniform API does.
type Value struct {
	Kind Kinds

	// I holds the value for Int.
	I int32

	// F holds the components for all float kinds, column major for Mat4.
	F [16]float32
}

func (v Value) String() string {
	var n int
	switch v.Kind {
	case Int:
		return fmt.Sprintf("%d", v.I)
	case Float:
		return fmt.Sprintf("%g", v.F[0])
	case Vec2:
		n = 2
	case Vec3:
		n = 3
	case Vec4:
		n = 4
	case Mat4:
		n = 16
	}
	var b strings.Builder
	b.WriteString(v.Kind.String())
	b.WriteByte('(')
	for i := range n {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", v.F[i])
	}
	b.WriteByte(')')
	return b.String()
}

// Program is the uniform state of a linked shader program.
// Values persist until they are set again, so a draw sees every
// uniform set since the program was created, not just the latest ones.
// Uniforms are kept in the order they were first set.
type Program struct {
	// Name is the program name, used in traces.
	Name string

	values ordmap.Map[string, Value]
}

// NewProgram returns a new empty program.
func NewProgram(name string) *Program {
	return &Program{Name: name}
}

func (p *Program) set(name string, v Value) {
	p.values.Add(name, v)
}

// SetInt sets an int uniform.
func (p *Program) SetInt(name string, v int32) {
	p.set(name, Value{Kind: Int, I: v})
}

// SetBool sets a bool uniform, stored as 0 or 1.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

// SetSampler2D sets a sampler uniform to the given texture unit.
func (p *Program) SetSampler2D(name string, unit int32) {
	p.SetInt(name, unit)
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	val := Value{Kind: Float}
	val.F[0] = v
	p.set(name, val)
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	val := Value{Kind: Vec2}
	copy(val.F[:], v[:])
	p.set(name, val)
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	val := Value{Kind: Vec3}
	copy(val.F[:], v[:])
	p.set(name, val)
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	val := Value{Kind: Vec4}
	copy(val.F[:], v[:])
	p.set(name, val)
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	p.set(name, Value{Kind: Mat4, F: m})
}

// Reset removes all uniforms.
func (p *Program) Reset() {
	p.values.Reset()
}

// Len returns the number of uniforms that have been set.
func (p *Program) Len() int {
	return p.values.Len()
}

// Snapshot returns a copy of the current uniform state,
// which is not affected by later Set calls.
func (p *Program) Snapshot() Uniforms {
	u := Uniforms{
		names:  make([]string, 0, p.values.Len()),
		values: make(map[string]Value, p.values.Len()),
	}
	for _, kv := range p.values.Order {
		u.names = append(u.names, kv.Key)
		u.values[kv.Key] = kv.Value
	}
	return u
}

// Uniforms is an immutable snapshot of a [Program] uniform state.
// The typed accessors return false if the uniform is missing or
// has a different kind.
type Uniforms struct {
	names  []string
	values map[string]Value
}

// Names returns the uniform names in the order they were first set.
func (u Uniforms) Names() []string {
	return u.names
}

// Value returns the raw value for the name.
func (u Uniforms) Value(name string) (Value, bool) {
	v, ok := u.values[name]
	return v, ok
}

func (u Uniforms) kind(name string, k Kinds) (Value, bool) {
	v, ok := u.values[name]
	if !ok || v.Kind != k {
		return Value{}, false
	}
	return v, true
}

// Int returns an int, bool or sampler uniform.
func (u Uniforms) Int(name string) (int32, bool) {
	v, ok := u.kind(name, Int)
	return v.I, ok
}

// Bool returns a bool uniform: any non-zero int is true.
// A missing uniform is false, as GL zero-initializes uniforms.
func (u Uniforms) Bool(name string) bool {
	v, _ := u.kind(name, Int)
	return v.I != 0
}

// Float returns a float uniform.
func (u Uniforms) Float(name string) (float32, bool) {
	v, ok := u.kind(name, Float)
	return v.F[0], ok
}

// Vec2 returns a vec2 uniform.
func (u Uniforms) Vec2(name string) (mgl32.Vec2, bool) {
	v, ok := u.kind(name, Vec2)
	return mgl32.Vec2{v.F[0], v.F[1]}, ok
}

// Vec3 returns a vec3 uniform.
func (u Uniforms) Vec3(name string) (mgl32.Vec3, bool) {
	v, ok := u.kind(name, Vec3)
	return mgl32.Vec3{v.F[0], v.F[1], v.F[2]}, ok
}

// Vec4 returns a vec4 uniform.
func (u Uniforms) Vec4(name string) (mgl32.Vec4, bool) {
	v, ok := u.kind(name, Vec4)
	return mgl32.Vec4{v.F[0], v.F[1], v.F[2], v.F[3]}, ok
}

// Mat4 returns a mat4 uniform.
func (u Uniforms) Mat4(name string) (mgl32.Mat4, bool) {
	v, ok := u.kind(name, Mat4)
	return mgl32.Mat4(v.F), ok
}
