// SPDX-License-Identifier: EPL-2.0

package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundwave3d/wavemesh/geometry"
)

func quadMesh() *geometry.Mesh {
	return &geometry.Mesh{
		Vertices: []geometry.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Faces:    []geometry.Face{{0, 1, 2, 3}},
	}
}

func TestScene_CreateMesh(t *testing.T) {
	t.Parallel()

	scene := NewScene()

	name, err := scene.CreateMesh("clip_Waveform", quadMesh())
	require.NoError(t, err)
	assert.Equal(t, "clip_Waveform", name)
	assert.Equal(t, 1, scene.Len())

	obj, ok := scene.Object(name)
	require.True(t, ok)
	assert.Equal(t, 4, obj.Mesh.VertexCount())
}

func TestScene_EmptyMeshRejected(t *testing.T) {
	t.Parallel()

	scene := NewScene()

	_, err := scene.CreateMesh("empty", &geometry.Mesh{})
	assert.ErrorIs(t, err, ErrEmptyMesh)
	assert.Equal(t, 0, scene.Len())

	_, err = scene.CreateMesh("nil", nil)
	assert.ErrorIs(t, err, ErrEmptyMesh)
}

func TestScene_InvalidTopologyLeavesNoObject(t *testing.T) {
	t.Parallel()

	scene := NewScene()
	bad := &geometry.Mesh{
		Vertices: []geometry.Vec3{{}},
		Faces:    []geometry.Face{{0, 7}},
	}

	_, err := scene.CreateMesh("bad", bad)
	require.ErrorIs(t, err, ErrInvalidTopology)
	assert.ErrorIs(t, err, geometry.ErrIndexOutOfRange)
	assert.Equal(t, 0, scene.Len(), "failed creation must not leave a partial object")
}

func TestScene_NameDeduplication(t *testing.T) {
	t.Parallel()

	scene := NewScene()

	first, err := scene.CreateMesh("clip_Waveform", quadMesh())
	require.NoError(t, err)
	second, err := scene.CreateMesh("clip_Waveform", quadMesh())
	require.NoError(t, err)
	third, err := scene.CreateMesh("clip_Waveform", quadMesh())
	require.NoError(t, err)

	assert.Equal(t, "clip_Waveform", first)
	assert.Equal(t, "clip_Waveform.001", second)
	assert.Equal(t, "clip_Waveform.002", third)
	assert.Equal(t, []string{first, second, third}, scene.Names())
}

func TestScene_FaceNormals(t *testing.T) {
	t.Parallel()

	scene := NewScene()

	name, err := scene.CreateMesh("quad", quadMesh())
	require.NoError(t, err)

	obj, ok := scene.Object(name)
	require.True(t, ok)
	require.Len(t, obj.Normals, 1)

	// CCW quad in the XY plane faces +Z.
	n := obj.Normals[0]
	assert.InDelta(t, 0, n.X, 1e-9)
	assert.InDelta(t, 0, n.Y, 1e-9)
	assert.InDelta(t, 1, n.Z, 1e-9)
}

func TestScene_DegenerateFaceNormal(t *testing.T) {
	t.Parallel()

	scene := NewScene()
	sliver := &geometry.Mesh{
		Vertices: []geometry.Vec3{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}},
		Faces:    []geometry.Face{{0, 1, 2}},
	}

	name, err := scene.CreateMesh("sliver", sliver)
	require.NoError(t, err)

	obj, _ := scene.Object(name)
	require.Len(t, obj.Normals, 1)
	assert.Equal(t, geometry.Vec3{}, obj.Normals[0], "zero-area face gets a zero normal")
}
