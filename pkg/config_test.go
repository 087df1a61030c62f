package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ManouchehrRasoulli/notefs/pkg/filehandler"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "notefs.yml")
	content := `
watch:
  buffer_size: 8
  ignore:
    - "*.swp"
    - "**/.git/**"
notes:
  default_content: "# Title\n"
opener:
  command: nautilus
log:
  prefix: "test --> "
  color: false
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	cfg, err := ReadConfig(file, false)
	require.NoError(t, err, "read configuration file.")
	require.Equal(t, 8, cfg.Watch.BufferSize)
	require.Equal(t, []string{"*.swp", "**/.git/**"}, cfg.Watch.Ignore)
	require.Equal(t, "# Title\n", cfg.Notes.DefaultContent)
	require.Equal(t, "nautilus", cfg.Opener.Command)
	require.Equal(t, "test --> ", cfg.Log.Prefix)
	require.NotNil(t, cfg.Log.Color)
	require.False(t, *cfg.Log.Color)
}

func TestReadConfig_Defaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "partial.yml")
	require.NoError(t, os.WriteFile(file, []byte("watch:\n  buffer_size: 0\n"), 0644))

	cfg, err := ReadConfig(file, false)
	require.NoError(t, err)
	require.Equal(t, defaultBufferSize, cfg.Watch.BufferSize)
	require.Equal(t, filehandler.DefaultMarkdownContent, cfg.Notes.DefaultContent)
	require.Nil(t, cfg.Log.Color)
}

func TestReadConfig_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yml")

	cfg, err := ReadConfig(missing, true)
	require.NoError(t, err, "optional config may be absent.")
	require.Equal(t, DefaultConfig(), cfg)

	_, err = ReadConfig(missing, false)
	require.Error(t, err)
}

func TestReadConfig_Invalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(file, []byte("watch: [1, 2"), 0644))

	_, err := ReadConfig(file, false)
	require.Error(t, err)
}
