package sprite3d

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultMethod, cfg.Method)
	require.Equal(t, DefaultDepth, cfg.Depth)
	require.Equal(t, DefaultLayerCount, cfg.LayerCount)
	require.Equal(t, DefaultFlags(), cfg.Export)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprite3d.yaml")
	data := `method: voxel
depth: 0.1
layer_count: 16
export:
  materials: true
  normals: false
  texcoords: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, VOXEL, cfg.Method)
	require.Equal(t, 0.1, cfg.Depth)
	require.Equal(t, 16, cfg.LayerCount)
	require.False(t, cfg.Export.Normals)
	require.True(t, cfg.Export.TexCoords)
}

func TestLoadConfigBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("method: [unclosed"), 0644))
	_, err := LoadConfig(path)
	require.Error(t, err)
}
