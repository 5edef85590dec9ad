package config

// Presets are ready-made surface definitions, keyed by name.
var Presets = map[string]*Surface{
	"rect-flat": {
		Name: "rect-flat", Shape: "rect", Nx: 2, Ny: 7,
		Span: 10, Chord: 1, TaperRatio: 1,
	},
	"rect-tapered": {
		Name: "rect-tapered", Shape: "rect", Nx: 3, Ny: 11,
		Span: 10, Chord: 1.5, TaperRatio: 0.4, Sweep: 15,
	},
	"rect-sym": {
		Name: "rect-sym", Shape: "rect", Nx: 2, Ny: 7, Symmetric: true,
		Span: 10, Chord: 1, TaperRatio: 0.5, Dihedral: 3,
	},
	"crm-jig": {
		Name: "crm-jig", Shape: "CRM:jig", Nx: 3, Ny: 15,
		TaperRatio: 1, SpanSpacing: 0.5,
	},
	"crm-cruise": {
		Name: "crm-cruise", Shape: "CRM:alpha_2.75", Nx: 5, Ny: 21,
		TaperRatio: 1, SpanSpacing: 1, ChordSpacing: 0.5,
	},
}

// GetPreset returns an independent copy of the named preset, or nil if
// no preset matches. Callers are free to mutate the result.
func GetPreset(name string) *Surface {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	c.Twist = append([]float64(nil), p.Twist...)
	c.ChordScale = append([]float64(nil), p.ChordScale...)
	c.XShear = append([]float64(nil), p.XShear...)
	c.ZShear = append([]float64(nil), p.ZShear...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
