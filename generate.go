// SPDX-License-Identifier: EPL-2.0

package wavemesh

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/soundwave3d/wavemesh/audio"
	"github.com/soundwave3d/wavemesh/geometry"
	"github.com/soundwave3d/wavemesh/host"
	"github.com/soundwave3d/wavemesh/signal"
)

// Generate maps a decoded audio buffer to mesh geometry under cfg.
//
// This is the pure core of the pipeline: it prepares the signal
// (channel reduction, downsampling, normalization) and runs the
// selected geometry builder. It touches no host and no filesystem.
// The buffer is read-only for the duration of the call and the
// returned mesh is owned by the caller.
func Generate(buf *audio.Buffer, cfg Config) (*geometry.Mesh, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prep, err := signal.Prepare(buf, signal.Options{
		Resolution: cfg.Resolution,
		Reduction:  reductionFor(cfg),
		Normalize:  cfg.Normalize,
	})
	if err != nil {
		return nil, fmt.Errorf("prepare signal: %w", err)
	}

	if prep.Clamped {
		logrus.WithFields(logrus.Fields{
			"requested": cfg.Resolution,
			"effective": prep.Len(),
		}).Warn("resolution capped at available samples")
	}

	params := geometry.Params{
		ScaleX:    cfg.ScaleX,
		ScaleY:    cfg.ScaleY,
		ScaleZ:    cfg.ScaleZ,
		Thickness: cfg.Thickness,
	}

	switch cfg.Style {
	case StyleLinear:
		return geometry.Linear(prep.Samples, prep.Depth, params), nil
	case StyleRadial:
		return geometry.Radial(prep.Samples, params), nil
	case StyleSpiral:
		return geometry.Spiral(prep.Samples, params), nil
	default:
		return nil, ErrUnknownStyle
	}
}

// reductionFor maps the configured stereo handling to a channel
// reduction. Depth mode only applies to the linear style; any other
// style degrades to first-channel-only, matching the documented
// fallback policy.
func reductionFor(cfg Config) signal.Reduction {
	switch cfg.Stereo {
	case StereoMono:
		return signal.ReduceAverage
	case StereoDepth:
		if cfg.Style == StyleLinear {
			return signal.ReduceKeepPair
		}
		logrus.WithFields(logrus.Fields{
			"style": cfg.Style.String(),
		}).Debug("z-depth stereo unsupported for style, using first channel only")
		return signal.ReduceFirst
	default:
		return signal.ReduceFirst
	}
}

// GenerateObject runs Generate and hands the resulting geometry to h
// under name. An empty result aborts with ErrEmptyGeometry before any
// host call is made. On success the returned string is the name the
// host registered the object under.
func GenerateObject(h host.Host, name string, buf *audio.Buffer, cfg Config) (string, error) {
	mesh, err := Generate(buf, cfg)
	if err != nil {
		return "", err
	}

	if mesh.IsEmpty() {
		logrus.WithFields(logrus.Fields{
			"name": name,
		}).Warn("no vertices generated, skipping object creation")
		return "", ErrEmptyGeometry
	}

	created, err := h.CreateMesh(name, mesh)
	if err != nil {
		return "", fmt.Errorf("create mesh object: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"object":   created,
		"style":    cfg.Style.String(),
		"vertices": mesh.VertexCount(),
		"faces":    len(mesh.Faces),
	}).Info("generated waveform mesh")

	return created, nil
}

// GenerateFromFile decodes the audio file at path using a decoder
// from reg and materializes its waveform mesh in h. The object name
// is derived from the file's base name via MeshName.
//
// Failures map to the pipeline's error kinds: a missing path reports
// ErrNoInput, a missing decoder audio.ErrNoDecoder, and decode
// failures are surfaced verbatim with their underlying cause.
func GenerateFromFile(h host.Host, reg *audio.Registry, path string, cfg Config) (string, error) {
	if path == "" {
		return "", ErrNoInput
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoInput, path)
	}

	format := audio.FormatFromPath(path)
	dec, err := reg.Lookup(format)
	if err != nil {
		return "", fmt.Errorf("%q: %w", format, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoInput, path)
	}
	defer f.Close()

	buf, err := dec.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"path":     path,
		"channels": buf.NumChannels(),
		"rate":     buf.SampleRate,
		"samples":  buf.Len(),
	}).Info("loaded audio")

	return GenerateObject(h, MeshName(path), buf, cfg)
}

// MeshName derives the host object name from an audio file path:
// the base name without extension plus a "_Waveform" suffix.
func MeshName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_Waveform"
}
