// Package lighting provides lighting utilities for 3D rendering.
package lighting

import "math"

// Sun is a directional light.
type Sun struct {
	Longitude float32 // Rotation around the Y axis, degrees
	Latitude  float32 // Elevation above the horizon, degrees
	Ambient   [3]float32
	Diffuse   [3]float32
}

// DefaultSun returns a light from above and slightly behind the default camera.
func DefaultSun() Sun {
	return Sun{
		Longitude: 35,
		Latitude:  55,
		Ambient:   [3]float32{0.35, 0.35, 0.38},
		Diffuse:   [3]float32{0.75, 0.73, 0.7},
	}
}

// Direction returns the normalized direction the light travels in, from the
// sun towards the scene.
func (s Sun) Direction() [3]float32 {
	d := SunDirection(s.Longitude, s.Latitude)
	return [3]float32{-d[0], -d[1], -d[2]}
}

// SunDirection converts longitude/latitude angles in degrees to a normalized
// vector pointing towards the sun.
func SunDirection(longitude, latitude float32) [3]float32 {
	// Convert degrees to radians
	lonRad := float64(longitude) * math.Pi / 180.0
	latRad := float64(latitude) * math.Pi / 180.0

	// Spherical to Cartesian conversion
	x := float32(math.Cos(latRad) * math.Sin(lonRad))
	y := float32(math.Sin(latRad))
	z := float32(math.Cos(latRad) * math.Cos(lonRad))

	return [3]float32{x, y, z}
}
