// Package shaders provides embedded GLSL shader sources.
//
// A program named "lit" is built from lit.vert and lit.frag. Every vertex shader
// reads position, normal and uv from attribute locations 0, 1 and 2.
package shaders

import "embed"

// FS holds every .vert and .frag source.
//
//go:embed *.vert *.frag
var FS embed.FS

// Program names.
const (
	Sunset  = "sunset"
	Unlit   = "unlit"
	Procgen = "procgen"
	Lit     = "lit"
)
