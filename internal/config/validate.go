package config

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// Validate reports every setting that cannot be used as-is. Shape segment counts are
// not checked because the generators clamp them; shape dimensions must be finite and positive.
func (c *Config) Validate() error {
	var err error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Near <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera.near %g must be positive", c.Camera.Near))
	}
	if c.Camera.Far <= c.Camera.Near {
		err = multierr.Append(err, fmt.Errorf("camera.far %g must exceed camera.near %g", c.Camera.Far, c.Camera.Near))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		err = multierr.Append(err, fmt.Errorf("camera.fov %g must be in (0, 180)", c.Camera.FOV))
	}
	if c.Camera.OrthoSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera.ortho_size %g must be positive", c.Camera.OrthoSize))
	}
	shapes := []struct {
		name  string
		value float32
	}{
		{"shapes.plane.width", c.Shapes.Plane.Width},
		{"shapes.plane.height", c.Shapes.Plane.Height},
		{"shapes.cylinder.height", c.Shapes.Cylinder.Height},
		{"shapes.cylinder.radius", c.Shapes.Cylinder.Radius},
		{"shapes.sphere.radius", c.Shapes.Sphere.Radius},
	}
	for _, s := range shapes {
		if !finitePositive(s.value) {
			err = multierr.Append(err, fmt.Errorf("%s %g must be a positive finite number", s.name, s.value))
		}
	}
	if c.Lighting.LightCount < 0 {
		err = multierr.Append(err, fmt.Errorf("lighting.light_count %d must not be negative", c.Lighting.LightCount))
	}
	return err
}

func finitePositive(v float32) bool {
	f := float64(v)
	return f > 0 && !math.IsInf(f, 1)
}
