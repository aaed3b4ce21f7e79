// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// StrokeVertexShader is the vertex shader for stroke tubes.
//
//go:embed stroke.vert
var StrokeVertexShader string

// StrokeFragmentShader is the fragment shader for stroke tubes.
//
//go:embed stroke.frag
var StrokeFragmentShader string

// LineVertexShader is the vertex shader for guide lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for guide lines.
//
//go:embed line.frag
var LineFragmentShader string

// HUDVertexShader is the vertex shader for the screen overlay.
//
//go:embed hud.vert
var HUDVertexShader string

// HUDFragmentShader is the fragment shader for the screen overlay.
//
//go:embed hud.frag
var HUDFragmentShader string
