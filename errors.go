// SPDX-License-Identifier: EPL-2.0

package wavemesh

import "errors"

var (
	// ErrNoInput means no audio file path was given or the path does
	// not exist. The operation aborts before any processing.
	ErrNoInput = errors.New("no input audio file")

	// ErrEmptyGeometry means the selected builder produced no
	// vertices; no object is created.
	ErrEmptyGeometry = errors.New("no vertices generated")

	// ErrResolutionOutOfRange means Config.Resolution is outside
	// [MinResolution, MaxResolution].
	ErrResolutionOutOfRange = errors.New("resolution out of range")

	// ErrInvalidScale means a scale factor violates its range:
	// ScaleX/ScaleY must be positive, ScaleZ non-negative.
	ErrInvalidScale = errors.New("invalid scale factor")

	// ErrInvalidThickness means Config.Thickness is negative.
	ErrInvalidThickness = errors.New("thickness must be non-negative")

	// ErrUnknownStyle means Config.Style is not a defined Style.
	ErrUnknownStyle = errors.New("unknown visualization style")

	// ErrUnknownStereoMode means Config.Stereo is not a defined
	// StereoMode.
	ErrUnknownStereoMode = errors.New("unknown stereo handling mode")
)
