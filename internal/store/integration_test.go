package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-manager/internal/config"
	"github.com/MKhiriev/go-config-manager/internal/fragment"
	"github.com/MKhiriev/go-config-manager/internal/loader"
)

func writeConfigTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"logger.json":         `{"active": false, "level": "debug", "colors": {"blue": false}, "outputs": ["stdout"]}`,
		"develop/logger.yaml": "level: info\noutputs:\n  - file\n",
		"db.yml":              "hostname: localhost\nport: 5432\n",
		"broken.json":         `{"a": `,
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return root
}

// TestIntegration_FileTree exercises the store with the OS file manager.
func TestIntegration_FileTree(t *testing.T) {
	root := writeConfigTree(t)
	environ := map[string]string{
		"LOGGER__WITH_COLOR":   "true",
		"LOGGER__COLORS__BLUE": "ncm_boolean:true",
		"LOG_DIR":              "/var/log",
		"LOGGER__PATH":         "${LOG_DIR}/app.log",
	}

	s, err := New(
		WithFileLoader(loader.NewFileManager(nil)),
		WithEnviron(func() map[string]string { return environ }),
	)
	require.NoError(t, err)
	require.NoError(t, s.Init(config.Settings{ConfigDir: root, Env: "develop", CamelCase: true}))

	require.NoError(t, s.AddConfig("logger"))
	require.NoError(t, s.AddConfig("db"))
	assert.Equal(t, 2, s.Count())

	logger, ok := s.GetConfig("logger")
	require.True(t, ok)
	want := fragment.Fragment{
		"active":    fragment.Bool(false),
		"level":     fragment.String("info"),
		"colors":    fragment.Mapping(fragment.Fragment{"blue": fragment.Bool(true)}),
		"outputs":   fragment.Sequence(fragment.String("file")),
		"withColor": fragment.Bool(true),
		"path":      fragment.String("/var/log/app.log"),
	}
	assert.True(t, want.Equal(logger), "got %v", logger.Map())

	accessor, ok := s.Accessor("Db")
	require.True(t, ok)
	db, ok := accessor()
	require.True(t, ok)
	assert.Equal(t, fragment.Int(5432), db["port"])

	err = s.AddConfig("broken")
	assert.ErrorIs(t, err, loader.ErrFileParse)
	assert.Equal(t, 2, s.Count())

	assert.ErrorIs(t, s.AddConfig("missing"), ErrConfigNotFound)
}

// TestIntegration_DefaultsFromProcessEnv verifies the default environment
// source and file loader.
func TestIntegration_DefaultsFromProcessEnv(t *testing.T) {
	root := writeConfigTree(t)
	t.Setenv("NCM_CONFIG_DIR", root)
	t.Setenv("NCM_ENV", "")
	t.Setenv("DB__PORT", "6432")

	s, err := New()
	require.NoError(t, err)

	require.NoError(t, s.AddConfig("db"))
	db, _ := s.GetConfig("db")
	assert.Equal(t, fragment.String("localhost"), db["hostname"])
	assert.Equal(t, fragment.Int(6432), db["port"])
}

// TestIntegration_NameWithLevels verifies the environment overlay of a
// configuration whose name contains the level separator.
func TestIntegration_NameWithLevels(t *testing.T) {
	root := writeConfigTree(t)
	environ := map[string]string{
		"SERVICE__HTTP__PORT":    "8080",
		"SERVICE__HTTP__TLS__ON": "true",
		"SERVICE__GRPC__PORT":    "9090",
	}

	s, err := New(
		WithFileLoader(loader.NewFileManager(nil)),
		WithEnviron(func() map[string]string { return environ }),
	)
	require.NoError(t, err)
	require.NoError(t, s.Init(config.Settings{ConfigDir: root, CamelCase: true}))

	require.NoError(t, s.AddConfig("service__http"))
	cfg, ok := s.GetConfig("service__http")
	require.True(t, ok)

	want := fragment.Fragment{
		"port": fragment.Int(8080),
		"tls":  fragment.Mapping(fragment.Fragment{"on": fragment.Bool(true)}),
	}
	assert.True(t, want.Equal(cfg), "got %v", cfg.Map())
}
