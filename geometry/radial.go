// SPDX-License-Identifier: EPL-2.0

package geometry

import "math"

// baseRadius is the unit ring radius the amplitude perturbs.
const baseRadius = 1.0

// Radial builds a closed annular ribbon: time maps to angle around a
// full circle, amplitude perturbs the ring radius, thickness extrudes
// along Z. The angle divisor is n (not n-1) so the last segment wraps
// around and the loop closes exactly: n samples yield 2n vertices and
// n quad faces. Edges are implied by the faces; no separate edge list
// is emitted.
//
// samples must be non-empty. A single sample yields one vertex pair
// and no faces: the closing quad would reference the same pair twice.
func Radial(samples []float32, p Params) *Mesh {
	n := len(samples)
	m := &Mesh{
		Vertices: make([]Vec3, 0, 2*n),
		Faces:    make([]Face, 0, n),
	}

	halfZ := p.Thickness * p.ScaleZ * 0.5

	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		radius := baseRadius + float64(samples[i])*p.ScaleY

		x := math.Cos(angle) * radius * p.ScaleX
		y := math.Sin(angle) * radius * p.ScaleX

		m.Vertices = append(m.Vertices,
			Vec3{x, y, -halfZ},
			Vec3{x, y, halfZ},
		)
	}

	if n < 2 {
		return m
	}

	for i := 0; i < n; i++ {
		v := i * 2
		next := ((i + 1) % n) * 2 // wrap around for the last segment
		m.Faces = append(m.Faces, Face{v, next, next + 1, v + 1})
	}

	return m
}
