package command

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-config-manager/internal/store"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "production"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "logger.json"),
		[]byte(`{"level": "debug", "colors": {"blue": false}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "production", "logger.yaml"),
		[]byte("level: error\n"), 0o644))
	return root
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// keep the host environment out of the store settings
	t.Setenv("NCM_CONFIG_DIR", "")
	t.Setenv("NCM_ENV", "")
	t.Setenv("NCM_CAMEL_CASE", "")

	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{"configctl"}, args...))
	return stdout.String(), err
}

// ── App ───────────────────────────────────────────────────────────────────────

// TestApp_Commands verifies the command set.
func TestApp_Commands(t *testing.T) {
	app := App()

	names := make(map[string]bool)
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}
	for _, name := range []string{"show", "get", "settings"} {
		assert.True(t, names[name], "missing command: %s", name)
	}
}

// ── show ──────────────────────────────────────────────────────────────────────

// TestShow_JSON verifies merged output keyed by configuration name.
func TestShow_JSON(t *testing.T) {
	root := writeTree(t)
	t.Setenv("LOGGER__COLORS__BLUE", "true")

	out, err := run(t, "--dir", root, "--env", "production", "show", "logger")
	require.NoError(t, err)

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "error", got["logger"]["level"])
	assert.Equal(t, map[string]any{"blue": true}, got["logger"]["colors"])
}

// TestShow_YAML verifies the yaml output format.
func TestShow_YAML(t *testing.T) {
	root := writeTree(t)

	out, err := run(t, "--dir", root, "-o", "yaml", "show", "logger")
	require.NoError(t, err)

	var got map[string]map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "debug", got["logger"]["level"])
}

// TestShow_PartialFailure verifies that loadable configurations are printed
// and the failures are returned.
func TestShow_PartialFailure(t *testing.T) {
	root := writeTree(t)

	out, err := run(t, "--dir", root, "show", "logger", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrConfigNotFound)
	assert.Contains(t, out, `"logger"`)
}

// TestShow_MissingArgument verifies the argument check.
func TestShow_MissingArgument(t *testing.T) {
	_, err := run(t, "show")
	assert.ErrorIs(t, err, ErrMissingArgument)
}

// ── get ───────────────────────────────────────────────────────────────────────

// TestGet_Value verifies lookups by dot path.
func TestGet_Value(t *testing.T) {
	root := writeTree(t)
	t.Setenv("LOGGER__MAX_SIZE", "4096")

	out, err := run(t, "--dir", root, "--camel-case", "get", "logger", "maxSize")
	require.NoError(t, err)
	assert.Equal(t, "4096\n", out)

	_, err = run(t, "--dir", root, "get", "logger", "colors.red")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

// ── settings ──────────────────────────────────────────────────────────────────

// TestSettings_Output verifies the effective settings are printed.
func TestSettings_Output(t *testing.T) {
	root := writeTree(t)

	out, err := run(t, "--dir", root, "--env", "production", "settings")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, root+string(filepath.Separator), got["configDir"])
	assert.Equal(t, "production", got["env"])
	assert.Equal(t, false, got["camelCase"])
}

// TestUnknownFormat verifies the output format check.
func TestUnknownFormat(t *testing.T) {
	_, err := run(t, "-o", "xml", "settings")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// TestGetStore_WithoutBefore verifies the error when no store is attached.
func TestGetStore_WithoutBefore(t *testing.T) {
	app := &cli.App{Metadata: map[string]any{}}
	_, err := GetStore(cli.NewContext(app, nil, nil))
	assert.ErrorIs(t, err, errNoStore)
}
