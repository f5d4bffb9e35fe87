// SPDX-License-Identifier: EPL-2.0

// Package host defines the mesh-hosting collaborator boundary.
//
// The generation pipeline never talks to a concrete scene graph; it
// hands finished geometry to a Host and reports the name the host
// assigned. The package ships one implementation, Scene, an in-memory
// host useful for tests, the example CLI and any embedding that only
// needs to collect objects:
//
//	scene := host.NewScene()
//	name, err := scene.CreateMesh("clip_Waveform", mesh)
//
// Scene behaves like scene-graph hosts do: name collisions get a
// ".001" style numeric suffix rather than failing, topology is
// validated up front so a failure leaves no partial object, and
// per-face normals are derived on registration.
package host
