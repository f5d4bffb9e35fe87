// SPDX-License-Identifier: EPL-2.0

package host

import (
	"fmt"
	"math"
	"sync"

	"github.com/soundwave3d/wavemesh/geometry"
)

// Object is a mesh registered in a Scene, with per-face unit normals
// derived at registration time.
type Object struct {
	Name    string
	Mesh    *geometry.Mesh
	Normals []geometry.Vec3
}

// Scene is an in-memory Host. It validates topology before
// registering anything, deduplicates object names with a numeric
// suffix, and derives face normals on registration.
type Scene struct {
	objects map[string]*Object
	order   []string

	mtx *sync.Mutex
}

func NewScene() *Scene {
	return &Scene{
		objects: make(map[string]*Object),
		mtx:     &sync.Mutex{},
	}
}

// CreateMesh implements Host. Validation happens before any state
// changes, so a rejected mesh leaves the scene untouched.
func (s *Scene) CreateMesh(name string, mesh *geometry.Mesh) (string, error) {
	if mesh == nil || mesh.IsEmpty() {
		return "", ErrEmptyMesh
	}
	if err := mesh.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTopology, err)
	}
	if name == "" {
		name = "Mesh"
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	final := name
	for i := 1; ; i++ {
		if _, taken := s.objects[final]; !taken {
			break
		}
		final = fmt.Sprintf("%s.%03d", name, i)
	}

	obj := &Object{
		Name:    final,
		Mesh:    mesh,
		Normals: faceNormals(mesh),
	}
	s.objects[final] = obj
	s.order = append(s.order, final)

	return final, nil
}

// Object returns the registered object by name.
func (s *Scene) Object(name string) (*Object, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	obj, ok := s.objects[name]
	return obj, ok
}

// Names returns object names in registration order.
func (s *Scene) Names() []string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len reports the number of registered objects.
func (s *Scene) Len() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return len(s.order)
}

// faceNormals computes one unit normal per face from its first three
// vertices. Degenerate (zero-area) faces get a zero normal.
func faceNormals(m *geometry.Mesh) []geometry.Vec3 {
	normals := make([]geometry.Vec3, len(m.Faces))
	for i, f := range m.Faces {
		if len(f) < 3 {
			continue
		}
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]

		ux, uy, uz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
		vx, vy, vz := c.X-a.X, c.Y-a.Y, c.Z-a.Z

		nx := uy*vz - uz*vy
		ny := uz*vx - ux*vz
		nz := ux*vy - uy*vx

		length := math.Sqrt(nx*nx + ny*ny + nz*nz)
		if length == 0 {
			continue
		}
		normals[i] = geometry.Vec3{X: nx / length, Y: ny / length, Z: nz / length}
	}
	return normals
}
