// SPDX-License-Identifier: EPL-2.0

// Package geometry maps prepared waveform samples to mesh geometry.
//
// Three builders share one contract: input is a non-empty sample
// sequence plus Params, output is a fresh Mesh, and nothing else is
// read or written. Builders are pure functions; the same input always
// produces the same mesh.
//
//	p := geometry.Params{ScaleX: 1, ScaleY: 1, ScaleZ: 0.2, Thickness: 0.1}
//
//	ribbon := geometry.Linear(samples, nil, p)   // open ribbon strip
//	ring   := geometry.Radial(samples, p)        // closed annular ribbon
//	line   := geometry.Spiral(samples, p)        // 5-turn polyline
//
// Vertex/edge/face counts per builder, for n input samples:
//
//	Linear:  2n vertices, 2(n-1) edges, n-1 quad faces
//	Radial:  2n vertices, no edges, n quad faces (wraps closed, n >= 2)
//	Spiral:  n vertices, n-1 edges, no faces
//
// A single sample is accepted and yields degenerate but valid
// geometry (a point or a sliver); only an empty sequence is invalid,
// and that is rejected upstream in the signal package.
//
// WriteOBJ serializes any Mesh as Wavefront OBJ for inspection in
// external tools.
package geometry
