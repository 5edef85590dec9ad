package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/aeromesh/internal/mesh"
)

// PlanformSVG renders the top view of the mesh as an SVG string: span
// runs across the page, chord down it. The outline traces the leading
// edge tip to tip and back along the trailing edge; interior chordwise
// rows are drawn as thin lines.
func PlanformSVG(m *mesh.Mesh[float64], width float64) string {
	minX, maxX := m.At(0, 0).X, m.At(0, 0).X
	minY, maxY := m.At(0, 0).Y, m.At(0, 0).Y
	for i := 0; i < m.Nx(); i++ {
		for j := 0; j < m.Ny(); j++ {
			p := m.At(i, j)
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}

	const margin = 20.0
	spanExtent := maxY - minY
	chordExtent := maxX - minX
	if spanExtent == 0 || chordExtent == 0 {
		return ""
	}
	scale := (width - 2*margin) / spanExtent
	height := chordExtent*scale + 2*margin

	px := func(p [2]float64) (float64, float64) {
		return margin + (p[0]-minY)*scale, margin + (p[1]-minX)*scale
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Outline: leading edge out, trailing edge back.
	sb.WriteString(`<polygon fill="none" stroke="#00ff00" stroke-width="1.5" points="`)
	le := m.LeadingEdge()
	te := m.TrailingEdge()
	for _, p := range le {
		x, y := px([2]float64{p.Y, p.X})
		sb.WriteString(fmt.Sprintf("%.1f,%.1f ", x, y))
	}
	for j := len(te) - 1; j >= 0; j-- {
		x, y := px([2]float64{te[j].Y, te[j].X})
		sb.WriteString(fmt.Sprintf("%.1f,%.1f ", x, y))
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(`<g stroke="#007700" stroke-width="0.5" fill="none">` + "\n")
	for i := 1; i < m.Nx()-1; i++ {
		sb.WriteString(`<polyline points="`)
		for _, p := range m.Row(i) {
			x, y := px([2]float64{p.Y, p.X})
			sb.WriteString(fmt.Sprintf("%.1f,%.1f ", x, y))
		}
		sb.WriteString("\"/>\n")
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
