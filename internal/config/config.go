// Package config defines the yaml surface definitions consumed by the
// CLI and the surface builder. Validation lives here, on the caller
// side of the kernel boundary: the mesh and transform packages treat
// parameter domains as unchecked preconditions, so this layer is
// responsible for keeping them sane.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultNx         = 2
	DefaultNy         = 7
	DefaultSpan       = 10.0
	DefaultChord      = 1.0
	DefaultTaperRatio = 1.0
	DefaultShape      = "rect"
)

// Surface describes one lifting surface: the base mesh parameters and
// the deformation stack applied to it. Angles in degrees, lengths in
// meters. Per-station slices, when present, must carry one value per
// spanwise station.
type Surface struct {
	Name      string `yaml:"name"`
	Shape     string `yaml:"shape"` // "rect" or a reference table name, e.g. "CRM:jig"
	Symmetric bool   `yaml:"symmetric"`

	Nx int `yaml:"nx"`
	Ny int `yaml:"ny"` // stations in the built mesh; the half-wing count when symmetric

	Span         float64 `yaml:"span"`  // rect shapes only
	Chord        float64 `yaml:"chord"` // rect shapes only
	SpanSpacing  float64 `yaml:"span_spacing"`
	ChordSpacing float64 `yaml:"chord_spacing"`

	Sweep       float64 `yaml:"sweep"`
	Dihedral    float64 `yaml:"dihedral"`
	TaperRatio  float64 `yaml:"taper_ratio"`
	StretchSpan float64 `yaml:"stretch_span"` // 0 keeps the base span

	Twist           []float64 `yaml:"twist"`
	RotateLocalAxis bool      `yaml:"rotate_local_axis"`
	ChordScale      []float64 `yaml:"chord_scale"`
	XShear          []float64 `yaml:"x_shear"`
	ZShear          []float64 `yaml:"z_shear"`
}

func DefaultSurface() *Surface {
	return &Surface{
		Name:       "wing",
		Shape:      DefaultShape,
		Nx:         DefaultNx,
		Ny:         DefaultNy,
		Span:       DefaultSpan,
		Chord:      DefaultChord,
		TaperRatio: DefaultTaperRatio,
	}
}

func Load(path string) (*Surface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultSurface()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Surface) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the parameter domains the kernel itself does not.
func (c *Surface) Validate() error {
	if c.Nx < 1 || c.Ny < 1 {
		return fmt.Errorf("config: nx and ny must be at least 1, got %d x %d", c.Nx, c.Ny)
	}
	// A symmetric surface keeps one half, so its station count is
	// free; a full wing needs the mirrored distribution to close at
	// the centerline.
	if !c.Symmetric && c.Ny > 1 && c.Ny%2 == 0 {
		return fmt.Errorf("config: ny must be odd so the mesh mirrors about the centerline, got %d", c.Ny)
	}
	if c.ChordSpacing != 0 && c.Nx > 2 && c.Nx%2 == 0 {
		return fmt.Errorf("config: cosine chord spacing needs an odd nx, got %d", c.Nx)
	}
	if c.Shape == DefaultShape && (c.Span <= 0 || c.Chord <= 0) {
		return fmt.Errorf("config: span and chord must be positive, got %g and %g", c.Span, c.Chord)
	}
	if c.SpanSpacing < 0 || c.SpanSpacing > 1 || c.ChordSpacing < 0 || c.ChordSpacing > 1 {
		return fmt.Errorf("config: spacing blends must be in [0,1]")
	}
	if c.TaperRatio < 0 {
		return fmt.Errorf("config: taper ratio must be non-negative, got %g", c.TaperRatio)
	}
	if c.StretchSpan < 0 {
		return fmt.Errorf("config: stretch span must be non-negative, got %g", c.StretchSpan)
	}
	for name, s := range map[string][]float64{
		"twist":       c.Twist,
		"chord_scale": c.ChordScale,
		"x_shear":     c.XShear,
		"z_shear":     c.ZShear,
	} {
		if len(s) != 0 && len(s) != c.Ny {
			return fmt.Errorf("config: %s has %d stations, mesh has %d", name, len(s), c.Ny)
		}
	}
	return nil
}
