// SPDX-License-Identifier: EPL-2.0

package wavemesh

// Style selects the geometric projection of the waveform.
type Style int

const (
	// StyleLinear: time on X, amplitude on Y, depth on Z.
	StyleLinear Style = iota
	// StyleRadial: time as angle, amplitude as radius offset.
	StyleRadial
	// StyleSpiral: time as angle and radius, amplitude on Z.
	StyleSpiral
)

func (s Style) String() string {
	switch s {
	case StyleLinear:
		return "linear"
	case StyleRadial:
		return "radial"
	case StyleSpiral:
		return "spiral"
	default:
		return "unknown"
	}
}

// StereoMode selects how a second audio channel is used.
type StereoMode int

const (
	// StereoMono averages all channels together.
	StereoMono StereoMode = iota
	// StereoDepth uses the second channel to drive Z thickness.
	// Only the linear style supports it; other styles degrade to
	// using the first channel only.
	StereoDepth
)

func (s StereoMode) String() string {
	switch s {
	case StereoMono:
		return "mono"
	case StereoDepth:
		return "z-depth"
	default:
		return "unknown"
	}
}

// Resolution bounds for Config.Validate.
const (
	MinResolution = 10
	MaxResolution = 100000
)

// Config is one generation request's parameter set. Construct it
// once per request and do not mutate it mid-run.
type Config struct {
	// Resolution is the target number of samples along the waveform.
	Resolution int
	// ScaleX scales the time axis (or the radius, for the circular
	// styles).
	ScaleX float64
	// ScaleY scales amplitude.
	ScaleY float64
	// ScaleZ scales depth / stereo separation.
	ScaleZ float64
	// Style is the geometric projection.
	Style Style
	// Stereo selects second-channel handling.
	Stereo StereoMode
	// Normalize rescales amplitude to peak at 1.0 before ScaleY and
	// ScaleZ apply.
	Normalize bool
	// Thickness is the ribbon thickness for the linear and radial
	// styles.
	Thickness float64
}

// DefaultConfig returns the default generation parameters.
func DefaultConfig() Config {
	return Config{
		Resolution: 1000,
		ScaleX:     1.0,
		ScaleY:     1.0,
		ScaleZ:     0.2,
		Style:      StyleLinear,
		Stereo:     StereoMono,
		Normalize:  true,
		Thickness:  0.1,
	}
}

// Validate checks the parameter ranges: resolution within
// [MinResolution, MaxResolution], ScaleX/ScaleY positive, ScaleZ and
// Thickness non-negative, known style and stereo mode.
func (c Config) Validate() error {
	if c.Resolution < MinResolution || c.Resolution > MaxResolution {
		return ErrResolutionOutOfRange
	}
	if c.ScaleX <= 0 || c.ScaleY <= 0 {
		return ErrInvalidScale
	}
	if c.ScaleZ < 0 {
		return ErrInvalidScale
	}
	if c.Thickness < 0 {
		return ErrInvalidThickness
	}
	switch c.Style {
	case StyleLinear, StyleRadial, StyleSpiral:
	default:
		return ErrUnknownStyle
	}
	switch c.Stereo {
	case StereoMono, StereoDepth:
	default:
		return ErrUnknownStereoMode
	}
	return nil
}
