// Package export serializes generated meshes for downstream tools:
// CSV node lists, a JSON document, and a planform-view SVG.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/aeromesh/internal/mesh"
)

// WriteCSV writes a header line followed by one i,j,x,y,z record per
// mesh node, row-major by chordwise station.
func WriteCSV(w io.Writer, m *mesh.Mesh[float64]) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"i", "j", "x", "y", "z"}); err != nil {
		return err
	}
	for i := 0; i < m.Nx(); i++ {
		for j := 0; j < m.Ny(); j++ {
			p := m.At(i, j)
			record := []string{
				strconv.Itoa(i),
				strconv.Itoa(j),
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64),
				strconv.FormatFloat(p.Z, 'f', 6, 64),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// Document is the JSON form of a generated mesh.
type Document struct {
	Name   string       `json:"name"`
	Nx     int          `json:"nx"`
	Ny     int          `json:"ny"`
	Points [][3]float64 `json:"points"` // row-major by chordwise station
}

// WriteJSON writes the mesh as an indented JSON document.
func WriteJSON(w io.Writer, name string, m *mesh.Mesh[float64]) error {
	doc := Document{
		Name:   name,
		Nx:     m.Nx(),
		Ny:     m.Ny(),
		Points: make([][3]float64, 0, m.Nx()*m.Ny()),
	}
	for i := 0; i < m.Nx(); i++ {
		for j := 0; j < m.Ny(); j++ {
			p := m.At(i, j)
			doc.Points = append(doc.Points, [3]float64{p.X, p.Y, p.Z})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
