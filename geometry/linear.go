// SPDX-License-Identifier: EPL-2.0

package geometry

// Linear builds an open ribbon strip: time on X, amplitude on Y,
// thickness on Z. Each sample emits a bottom/top vertex pair; each
// consecutive pair of samples contributes two rail edges and one quad
// face, so n samples yield 2n vertices, 2(n-1) edges and n-1 faces.
//
// When depth is non-nil it must have len(depth) == len(samples); the
// depth channel then drives the half-thickness per sample (stereo
// depth mode) and p.Thickness is ignored. Otherwise the ribbon has
// fixed thickness p.Thickness*p.ScaleZ.
//
// samples must be non-empty. A single sample yields one degenerate
// vertex pair and no faces.
func Linear(samples, depth []float32, p Params) *Mesh {
	n := len(samples)
	m := &Mesh{
		Vertices: make([]Vec3, 0, 2*n),
		Edges:    make([]Edge, 0, 2*max(n-1, 0)),
		Faces:    make([]Face, 0, max(n-1, 0)),
	}

	for i := 0; i < n; i++ {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		x := t * p.ScaleX
		y := float64(samples[i]) * p.ScaleY

		var halfZ float64
		if depth != nil {
			halfZ = float64(depth[i]) * p.ScaleZ * 0.5
		} else {
			halfZ = p.Thickness * p.ScaleZ * 0.5
		}

		m.Vertices = append(m.Vertices,
			Vec3{x, y, -halfZ}, // bottom
			Vec3{x, y, halfZ},  // top
		)
	}

	for i := 0; i < n-1; i++ {
		v := i * 2
		// Rail edges along the waveform shape.
		m.Edges = append(m.Edges,
			Edge{v, v + 2},
			Edge{v + 1, v + 3},
		)
		m.Faces = append(m.Faces, Face{v, v + 2, v + 3, v + 1})
	}

	return m
}
