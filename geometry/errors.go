// SPDX-License-Identifier: EPL-2.0

package geometry

import "errors"

var (
	// ErrIndexOutOfRange means an edge or face references a vertex
	// index outside the vertex list.
	ErrIndexOutOfRange = errors.New("edge or face index out of vertex range")
)
