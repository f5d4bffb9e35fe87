// SPDX-License-Identifier: EPL-2.0

package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMesh_Validate(t *testing.T) {
	t.Parallel()

	valid := &Mesh{
		Vertices: []Vec3{{}, {}, {}},
		Edges:    []Edge{{0, 1}, {1, 2}},
		Faces:    []Face{{0, 1, 2}},
	}
	assert.NoError(t, valid.Validate())

	badEdge := &Mesh{
		Vertices: []Vec3{{}, {}},
		Edges:    []Edge{{0, 2}},
	}
	assert.ErrorIs(t, badEdge.Validate(), ErrIndexOutOfRange)

	badFace := &Mesh{
		Vertices: []Vec3{{}, {}},
		Faces:    []Face{{0, 1, -1}},
	}
	assert.ErrorIs(t, badFace.Validate(), ErrIndexOutOfRange)
}

func TestMesh_Empty(t *testing.T) {
	t.Parallel()

	m := &Mesh{}
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.VertexCount())
	assert.NoError(t, m.Validate())

	m.Vertices = append(m.Vertices, Vec3{1, 2, 3})
	assert.False(t, m.IsEmpty())
}
