package surface

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/aeromesh/internal/airfoil"
	"github.com/san-kum/aeromesh/internal/config"
	"github.com/san-kum/aeromesh/internal/planform"
)

func TestBuildDefault(t *testing.T) {
	m, err := Build(config.DefaultSurface())
	if err != nil {
		t.Fatal(err)
	}
	if m.Nx() != config.DefaultNx || m.Ny() != config.DefaultNy {
		t.Fatalf("mesh %dx%d, want %dx%d", m.Nx(), m.Ny(), config.DefaultNx, config.DefaultNy)
	}
	if s := planform.Span(m, false); math.Abs(s-config.DefaultSpan) > 1e-12 {
		t.Errorf("span = %g, want %g", s, config.DefaultSpan)
	}
	for j, c := range planform.Chords(m) {
		if math.Abs(c-config.DefaultChord) > 1e-12 {
			t.Errorf("station %d: chord = %g, want %g", j, c, config.DefaultChord)
		}
	}
}

func TestBuildAppliesDeformations(t *testing.T) {
	cfg := config.DefaultSurface()
	cfg.TaperRatio = 0.5
	cfg.Sweep = 30

	m, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}

	c := planform.Chords(m)
	root := (m.Ny() - 1) / 2
	if c[0] >= c[root] {
		t.Errorf("tip chord %g not below root chord %g after taper", c[0], c[root])
	}
	// Swept tips trail the root.
	if m.At(0, 0).X <= m.At(0, root).X {
		t.Errorf("tip leading edge x = %g not behind root %g after sweep", m.At(0, 0).X, m.At(0, root).X)
	}
}

func TestBuildSymmetric(t *testing.T) {
	cfg := config.GetPreset("rect-sym") // taper 0.5, dihedral 3
	if cfg == nil {
		t.Fatal("preset rect-sym missing")
	}
	m, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// The mesh holds the left half only, root on the centerline at
	// the last spanwise index.
	if m.Ny() != cfg.Ny {
		t.Fatalf("mesh has %d stations, want %d", m.Ny(), cfg.Ny)
	}
	root := m.Ny() - 1
	if y := m.At(0, root).Y; y != 0 {
		t.Errorf("root y = %g, want exactly 0", y)
	}
	if y := m.At(0, 0).Y; math.Abs(y+cfg.Span/2) > 1e-12 {
		t.Errorf("tip y = %g, want %g", y, -cfg.Span/2)
	}

	// Taper pivots about the root, not a tip.
	c := planform.Chords(m)
	if math.Abs(c[root]-cfg.Chord) > 1e-12 {
		t.Errorf("root chord = %g, want %g", c[root], cfg.Chord)
	}
	if math.Abs(c[0]-cfg.TaperRatio*cfg.Chord) > 1e-12 {
		t.Errorf("tip chord = %g, want %g", c[0], cfg.TaperRatio*cfg.Chord)
	}

	// Dihedral likewise: root fixed, tip raised.
	if z := m.At(0, root).Z; z != 0 {
		t.Errorf("root z = %g, want exactly 0", z)
	}
	if z := m.At(0, 0).Z; z <= 0 {
		t.Errorf("tip z = %g, want positive", z)
	}

	// The half extent doubles back to the configured span.
	if s := planform.Span(m, true); math.Abs(s-cfg.Span) > 1e-12 {
		t.Errorf("span = %g, want %g", s, cfg.Span)
	}
}

func TestBuildReferencePreset(t *testing.T) {
	cfg := config.GetPreset("crm-jig")
	if cfg == nil {
		t.Fatal("preset crm-jig missing")
	}
	m, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if m.Nx() != cfg.Nx || m.Ny() != cfg.Ny {
		t.Fatalf("mesh %dx%d, want %dx%d", m.Nx(), m.Ny(), cfg.Nx, cfg.Ny)
	}
	for i := 0; i < m.Nx(); i++ {
		for j := 0; j < m.Ny(); j++ {
			p := m.At(i, j)
			for _, v := range []float64{p.X, p.Y, p.Z} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("node (%d,%d) not finite: %+v", i, j, *p)
				}
			}
		}
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSurface()
	cfg.Ny = 8
	if _, err := Build(cfg); err == nil {
		t.Fatal("expected a validation error for even ny")
	}
}

func TestBuildUnknownShape(t *testing.T) {
	cfg := config.DefaultSurface()
	cfg.Shape = "NACA:0012"
	_, err := Build(cfg)
	if !errors.Is(err, airfoil.ErrUnknownShape) {
		t.Fatalf("expected ErrUnknownShape, got %v", err)
	}
}
