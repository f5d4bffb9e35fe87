// SPDX-License-Identifier: EPL-2.0

package geometry

import "math"

// spiralRevolutions is the fixed number of turns from center to rim.
const spiralRevolutions = 5.0

// Spiral builds a flat spiral polyline: time maps to both angle and
// radius (growing linearly from the center out to ScaleX), amplitude
// drives height on Z. One vertex per sample, one edge between
// consecutive samples, no faces and no thickness: n samples yield n
// vertices and n-1 edges.
//
// samples must be non-empty. A single sample yields a single vertex
// at the spiral midpoint.
func Spiral(samples []float32, p Params) *Mesh {
	n := len(samples)
	m := &Mesh{
		Vertices: make([]Vec3, 0, n),
		Edges:    make([]Edge, 0, max(n-1, 0)),
	}

	for i := 0; i < n; i++ {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		angle := t * 2 * math.Pi * spiralRevolutions
		radius := t * p.ScaleX

		m.Vertices = append(m.Vertices, Vec3{
			X: math.Cos(angle) * radius,
			Y: math.Sin(angle) * radius,
			Z: float64(samples[i]) * p.ScaleZ,
		})
	}

	for i := 0; i < n-1; i++ {
		m.Edges = append(m.Edges, Edge{i, i + 1})
	}

	return m
}
