// SPDX-License-Identifier: EPL-2.0

package host

import "errors"

var (
	// ErrEmptyMesh means CreateMesh was handed a mesh without
	// vertices; no object is created for it.
	ErrEmptyMesh = errors.New("mesh has no vertices")

	// ErrInvalidTopology means the mesh references vertices that do
	// not exist. Nothing is registered.
	ErrInvalidTopology = errors.New("invalid mesh topology")
)
