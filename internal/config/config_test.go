package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/McGIllicuddy7/psi/internal/core/observability/log"
	"github.com/McGIllicuddy7/psi/internal/core/systems/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsReferenceRun(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 1000, c.Image.Width)
	assert.Equal(t, 1000, c.Image.Height)
	assert.Equal(t, 0.005, c.Image.Scale)
	assert.Equal(t, physics.NewRegion(-2.5, -2.5, 5, 5), c.Integrate.Region.Physics())
	assert.Equal(t, 400.0, c.Integrate.Resolution)
	assert.Equal(t, physics.Zero(), c.Field.Location.Vector())
	assert.Equal(t, log.LevelInfo, c.Level())
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	src := `
field:
  location: {x: 1.5, y: -0.5}
  velocity: {x: 2, y: 0}
image:
  width: 64
  height: 32
  format: bmp
  output: out.bmp
integrate:
  resolution: 10
workers: 3
log_level: debug
`
	c, err := LoadYAML(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, physics.NewVector2(1.5, -0.5), c.Field.Location.Vector())
	assert.Equal(t, physics.NewVector2(2, 0), c.Field.Velocity.Vector())
	assert.Equal(t, 64, c.Image.Width)
	assert.Equal(t, 32, c.Image.Height)
	assert.Equal(t, 0.005, c.Image.Scale)
	assert.Equal(t, "bmp", c.Image.Format)
	assert.Equal(t, 10.0, c.Integrate.Resolution)
	assert.Equal(t, physics.NewRegion(-2.5, -2.5, 5, 5), c.Integrate.Region.Physics())
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, log.LevelDebug, c.Level())
}

func TestLoadYAMLEmpty(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadYAMLRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown field":  "bogus: 1\n",
		"bad format":     "image: {format: gif}\n",
		"zero size":      "image: {width: 0}\n",
		"bad resolution": "integrate: {resolution: -1}\n",
		"negative width": "integrate: {region: {w: -1}}\n",
		"bad level":      "log_level: loud\n",
		"negative pool":  "workers: -2\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(src))
			assert.Error(t, err)
		})
	}

	_, err := LoadYAML(strings.NewReader("image: {format: gif}\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "psi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("image: {width: 10, height: 10}\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Image.Width)

	c, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
