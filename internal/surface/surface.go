// Package surface turns a surface definition into a deformed wing
// mesh by running the factory and the full transform stack in the
// canonical order:
//
//	taper -> scale_x -> sweep -> shear_x -> stretch -> dihedral -> shear_z -> rotate
//
// Because each operator pivots on the quarter-chord line of the mesh
// as it currently stands, this order is part of the geometry contract;
// callers wanting a different composition use package transform
// directly.
package surface

import (
	"fmt"

	"github.com/san-kum/aeromesh/internal/config"
	"github.com/san-kum/aeromesh/internal/mesh"
	"github.com/san-kum/aeromesh/internal/transform"
)

// Build constructs the base mesh for cfg and applies its deformation
// stack. The returned mesh is freshly allocated and owned by the
// caller.
//
// A symmetric surface stores only the left half of the wing, root on
// the centerline at the last spanwise index: the factory generates the
// full wing with 2*Ny-1 stations and Build keeps its left half, so the
// result carries exactly cfg.Ny stations either way and per-station
// parameters always have cfg.Ny entries.
func Build(cfg *config.Surface) (*mesh.Mesh[float64], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ny := cfg.Ny
	if cfg.Symmetric {
		ny = 2*cfg.Ny - 1
	}

	var m *mesh.Mesh[float64]
	if cfg.Shape == config.DefaultShape {
		m = mesh.Rect[float64](cfg.Nx, ny, cfg.Span, cfg.Chord, cfg.SpanSpacing, cfg.ChordSpacing)
	} else {
		var err error
		m, _, _, err = mesh.FromReference[float64](cfg.Shape, cfg.Nx, ny, cfg.SpanSpacing, cfg.ChordSpacing)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Symmetric {
		m = m.LeftHalf()
	}

	transform.Taper(m, cfg.TaperRatio, cfg.Symmetric)
	if len(cfg.ChordScale) > 0 {
		if err := transform.ScaleX(m, cfg.ChordScale); err != nil {
			return nil, fmt.Errorf("surface %s: %w", cfg.Name, err)
		}
	}
	transform.Sweep(m, cfg.Sweep, cfg.Symmetric)
	if len(cfg.XShear) > 0 {
		if err := transform.ShearX(m, cfg.XShear); err != nil {
			return nil, fmt.Errorf("surface %s: %w", cfg.Name, err)
		}
	}
	if cfg.StretchSpan > 0 {
		transform.Stretch(m, cfg.StretchSpan, cfg.Symmetric)
	}
	transform.Dihedral(m, cfg.Dihedral, cfg.Symmetric)
	if len(cfg.ZShear) > 0 {
		if err := transform.ShearZ(m, cfg.ZShear); err != nil {
			return nil, fmt.Errorf("surface %s: %w", cfg.Name, err)
		}
	}
	if len(cfg.Twist) > 0 {
		if err := transform.Rotate(m, cfg.Twist, cfg.Symmetric, cfg.RotateLocalAxis); err != nil {
			return nil, fmt.Errorf("surface %s: %w", cfg.Name, err)
		}
	}
	return m, nil
}
