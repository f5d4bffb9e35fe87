// SPDX-License-Identifier: EPL-2.0

package geometry

// Vec3 is a position in mesh space.
type Vec3 struct {
	X, Y, Z float64
}

// Edge joins two vertices by index.
type Edge [2]int

// Face is an ordered vertex-index loop with consistent winding.
type Face []int

// Mesh is the builder output: vertex positions in creation order plus
// edges and faces referencing them by index. Indices are positional
// and never renumbered after creation.
type Mesh struct {
	Vertices []Vec3
	Edges    []Edge
	Faces    []Face
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool { return len(m.Vertices) == 0 }

// Validate checks that every edge and face index references an
// existing vertex.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for _, e := range m.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return ErrIndexOutOfRange
		}
	}
	for _, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return ErrIndexOutOfRange
			}
		}
	}
	return nil
}

// Params carries the scaling knobs shared by the builders.
type Params struct {
	// ScaleX scales the time axis (linear), the ring radius (radial)
	// or the outer spiral radius (spiral).
	ScaleX float64
	// ScaleY scales amplitude.
	ScaleY float64
	// ScaleZ scales depth: ribbon thickness in linear/radial styles,
	// amplitude height in the spiral style.
	ScaleZ float64
	// Thickness is the fixed ribbon thickness before ScaleZ is
	// applied. Ignored by the depth-stereo linear variant, which
	// derives thickness from the depth channel instead.
	Thickness float64
}
