// SPDX-License-Identifier: EPL-2.0

package host

import "github.com/soundwave3d/wavemesh/geometry"

// Host materializes generated meshes as named objects in some scene
// graph. Implementations must either register the object completely
// or leave no trace: a failed CreateMesh call may not leave a partial
// object behind. The call is not assumed safe to retry.
type Host interface {
	// CreateMesh registers mesh under name (or a deduplicated variant
	// of it), recomputes whatever derived attributes the host needs,
	// and returns the name the object ended up with.
	CreateMesh(name string, mesh *geometry.Mesh) (string, error)
}
