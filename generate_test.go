// SPDX-License-Identifier: EPL-2.0

package wavemesh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundwave3d/wavemesh/audio"
	"github.com/soundwave3d/wavemesh/formats/wav"
	"github.com/soundwave3d/wavemesh/host"
	"github.com/soundwave3d/wavemesh/internal/audiotest"
	"github.com/soundwave3d/wavemesh/signal"
)

func TestGenerate_LinearRibbon(t *testing.T) {
	t.Parallel()

	// 100 mono samples at resolution 10: stride 10, 10 retained
	// samples, 20 vertices, 9 quad faces.
	buf := audiotest.NewSineBuffer(8000, 1, 100, 100.0)
	cfg := Config{
		Resolution: 10,
		ScaleX:     1, ScaleY: 1, ScaleZ: 1,
		Style:     StyleLinear,
		Stereo:    StereoMono,
		Thickness: 0.2,
	}

	mesh, err := Generate(buf, cfg)
	require.NoError(t, err)

	assert.Equal(t, 20, mesh.VertexCount())
	assert.Len(t, mesh.Faces, 9)
	assert.Len(t, mesh.Edges, 18)
	assert.NoError(t, mesh.Validate())
}

func TestGenerate_RadialAndSpiral(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewSineBuffer(8000, 1, 1000, 100.0)
	cfg := DefaultConfig()
	cfg.Resolution = 50

	cfg.Style = StyleRadial
	ring, err := Generate(buf, cfg)
	require.NoError(t, err)
	assert.Equal(t, 100, ring.VertexCount())
	assert.Len(t, ring.Faces, 50)

	cfg.Style = StyleSpiral
	line, err := Generate(buf, cfg)
	require.NoError(t, err)
	assert.Equal(t, 50, line.VertexCount())
	assert.Len(t, line.Edges, 49)
	assert.Empty(t, line.Faces)
}

func TestGenerate_StereoDepth(t *testing.T) {
	t.Parallel()

	mk := func(left, right float32) *audio.Buffer {
		return audiotest.NewBuffer(8000, 2, 100, func(sample, channel int) float32 {
			if channel == 0 {
				return left
			}
			return right
		})
	}

	cfg := Config{
		Resolution: 10,
		ScaleX:     1, ScaleY: 1, ScaleZ: 1,
		Style:  StyleLinear,
		Stereo: StereoDepth,
	}

	mesh, err := Generate(mk(0.5, 0.2), cfg)
	require.NoError(t, err)

	// Left drives Y, right drives the half-thickness on Z.
	assert.InDelta(t, 0.5, mesh.Vertices[0].Y, 1e-6)
	assert.InDelta(t, -0.1, mesh.Vertices[0].Z, 1e-6)
	assert.InDelta(t, 0.1, mesh.Vertices[1].Z, 1e-6)

	// Swapping the channels swaps the driven axes.
	swapped, err := Generate(mk(0.2, 0.5), cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, swapped.Vertices[0].Y, 1e-6)
	assert.InDelta(t, -0.25, swapped.Vertices[0].Z, 1e-6)
}

func TestGenerate_StereoDepthDegradesForRadial(t *testing.T) {
	t.Parallel()

	// Channel 0 silent, channel 1 loud: the radial style must ignore
	// the second channel entirely and keep the unit ring.
	buf := audiotest.NewBuffer(8000, 2, 100, func(sample, channel int) float32 {
		if channel == 0 {
			return 0
		}
		return 0.9
	})

	cfg := Config{
		Resolution: 10,
		ScaleX:     1, ScaleY: 1, ScaleZ: 0,
		Style:  StyleRadial,
		Stereo: StereoDepth,
	}

	mesh, err := Generate(buf, cfg)
	require.NoError(t, err)

	for i, v := range mesh.Vertices {
		r := v.X*v.X + v.Y*v.Y
		assert.InDelta(t, 1.0, r, 1e-6, "vertex %d should sit on the unit circle", i)
	}
}

func TestGenerate_EmptyBuffer(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewSilentBuffer(8000, 1, 0)

	_, err := Generate(buf, DefaultConfig())
	assert.ErrorIs(t, err, signal.ErrEmptySignal)
}

func TestGenerate_SingleSampleBuffer(t *testing.T) {
	t.Parallel()

	// Effective n clamps to 1; degenerate geometry is accepted.
	buf := audiotest.NewConstantBuffer(8000, 1, 1, 0.4)
	cfg := DefaultConfig()

	mesh, err := Generate(buf, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, mesh.VertexCount())
	assert.Empty(t, mesh.Faces)

	cfg.Style = StyleSpiral
	mesh, err = Generate(buf, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, mesh.VertexCount())
	assert.Empty(t, mesh.Edges)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewSilentBuffer(8000, 1, 100)

	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"resolution too low", func(c *Config) { c.Resolution = 5 }, ErrResolutionOutOfRange},
		{"resolution too high", func(c *Config) { c.Resolution = MaxResolution + 1 }, ErrResolutionOutOfRange},
		{"zero scale x", func(c *Config) { c.ScaleX = 0 }, ErrInvalidScale},
		{"negative scale y", func(c *Config) { c.ScaleY = -1 }, ErrInvalidScale},
		{"negative scale z", func(c *Config) { c.ScaleZ = -0.1 }, ErrInvalidScale},
		{"negative thickness", func(c *Config) { c.Thickness = -0.1 }, ErrInvalidThickness},
		{"unknown style", func(c *Config) { c.Style = Style(99) }, ErrUnknownStyle},
		{"unknown stereo mode", func(c *Config) { c.Stereo = StereoMode(99) }, ErrUnknownStereoMode},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tc.mutate(&cfg)

			_, err := Generate(buf, cfg)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGenerateObject(t *testing.T) {
	t.Parallel()

	scene := host.NewScene()
	buf := audiotest.NewSineBuffer(8000, 1, 1000, 100.0)

	name, err := GenerateObject(scene, "clip_Waveform", buf, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "clip_Waveform", name)

	obj, ok := scene.Object(name)
	require.True(t, ok)
	assert.Equal(t, 2000, obj.Mesh.VertexCount())
	assert.Len(t, obj.Normals, len(obj.Mesh.Faces))
}

func TestGenerateObject_EmptySignalMakesNoHostCall(t *testing.T) {
	t.Parallel()

	scene := host.NewScene()
	buf := audiotest.NewSilentBuffer(8000, 1, 0)

	_, err := GenerateObject(scene, "clip_Waveform", buf, DefaultConfig())
	assert.ErrorIs(t, err, signal.ErrEmptySignal)
	assert.Equal(t, 0, scene.Len())
}

func TestGenerateFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "clip.wav")

	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16(i % 256 * 100)
	}
	require.NoError(t, os.WriteFile(path, audiotest.WAVBytes(8000, [][]int16{samples}), 0o644))

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	scene := host.NewScene()

	cfg := DefaultConfig()
	cfg.Resolution = 100

	name, err := GenerateFromFile(scene, reg, path, cfg)
	require.NoError(t, err)
	assert.Equal(t, "clip_Waveform", name)

	obj, ok := scene.Object(name)
	require.True(t, ok)
	assert.Equal(t, 200, obj.Mesh.VertexCount())
	assert.Len(t, obj.Mesh.Faces, 99)
}

func TestGenerateFromFile_MissingInput(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry()
	scene := host.NewScene()

	_, err := GenerateFromFile(scene, reg, "", DefaultConfig())
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = GenerateFromFile(scene, reg, "/does/not/exist.wav", DefaultConfig())
	assert.ErrorIs(t, err, ErrNoInput)
	assert.Equal(t, 0, scene.Len())
}

func TestGenerateFromFile_NoDecoder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "clip.xyz")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	reg := audio.NewRegistry()
	scene := host.NewScene()

	_, err := GenerateFromFile(scene, reg, path, DefaultConfig())
	assert.ErrorIs(t, err, audio.ErrNoDecoder)
	assert.Equal(t, 0, scene.Len())
}

func TestMeshName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "clip_Waveform", MeshName("/music/clip.wav"))
	assert.Equal(t, "clip_Waveform", MeshName("clip.flac"))
	assert.Equal(t, "noext_Waveform", MeshName("noext"))
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, DefaultConfig().Validate())
}
