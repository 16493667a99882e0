package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── parseEnv ──────────────────────────────────────────────────────────────────

// TestParseEnv_AllFields verifies that every session variable is read from
// the injected environment.
func TestParseEnv_AllFields(t *testing.T) {
	s, err := parseEnv(map[string]string{
		"NCM_CONFIG_DIR": "/etc/app",
		"NCM_ENV":        "production",
		"NCM_CAMEL_CASE": "true",
	})
	require.NoError(t, err)

	assert.Equal(t, Settings{ConfigDir: "/etc/app", Env: "production", CamelCase: true}, s)
}

// TestParseEnv_CamelCaseValues verifies that only "true" enables camelCase.
func TestParseEnv_CamelCaseValues(t *testing.T) {
	for raw, want := range map[string]bool{"true": true, "false": false, "TRUE": false, "1": false, "": false} {
		s, err := parseEnv(map[string]string{"NCM_CAMEL_CASE": raw})
		require.NoError(t, err)
		assert.Equal(t, want, s.CamelCase, "NCM_CAMEL_CASE=%q", raw)
	}
}

// TestParseEnv_NilEnvironment verifies that a nil map does not fall back to
// the process environment.
func TestParseEnv_NilEnvironment(t *testing.T) {
	t.Setenv("NCM_ENV", "from-process")

	s, err := parseEnv(nil)
	require.NoError(t, err)
	assert.Empty(t, s.Env)
}

// ── Load ──────────────────────────────────────────────────────────────────────

// TestLoad_Defaults verifies the defaults when no variable is set.
func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	s, err := Load(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(wd, "config")+string(filepath.Separator), s.ConfigDir)
	assert.Empty(t, s.Env)
	assert.False(t, s.CamelCase)
}

// TestLoad_EnvOverridesDefaults verifies that environment values replace the
// defaults and the directory is normalised.
func TestLoad_EnvOverridesDefaults(t *testing.T) {
	dir := t.TempDir()

	s, err := Load(map[string]string{"NCM_CONFIG_DIR": dir, "NCM_ENV": "develop"})
	require.NoError(t, err)

	assert.Equal(t, dir+string(filepath.Separator), s.ConfigDir)
	assert.Equal(t, "develop", s.Env)
}

// TestLoad_OverridesWin verifies that explicit overrides have the highest
// priority and zero fields are ignored.
func TestLoad_OverridesWin(t *testing.T) {
	dir := t.TempDir()

	s, err := Load(
		map[string]string{"NCM_ENV": "develop"},
		Settings{ConfigDir: dir},
		Settings{CamelCase: true},
	)
	require.NoError(t, err)

	assert.Equal(t, dir+string(filepath.Separator), s.ConfigDir)
	assert.Equal(t, "develop", s.Env)
	assert.True(t, s.CamelCase)
}

// ── Apply ─────────────────────────────────────────────────────────────────────

// TestApply_KeepsTrueCamelCase verifies that a zero CamelCase does not clear
// a true one.
func TestApply_KeepsTrueCamelCase(t *testing.T) {
	base := Settings{ConfigDir: "/cfg/", Env: "test", CamelCase: true}

	got, err := Apply(base, Settings{Env: "production"})
	require.NoError(t, err)

	assert.Equal(t, Settings{ConfigDir: "/cfg/", Env: "production", CamelCase: true}, got)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// TestNormalizeDir verifies absolute paths with a single trailing separator.
func TestNormalizeDir(t *testing.T) {
	sep := string(filepath.Separator)
	dir := t.TempDir()

	got, err := NormalizeDir(dir + sep)
	require.NoError(t, err)
	assert.Equal(t, dir+sep, got)

	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err = NormalizeDir("")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSuffix(wd, sep)+sep, got)
}

// TestIsKnownKey verifies the set of setting keys.
func TestIsKnownKey(t *testing.T) {
	for _, k := range []string{"configDir", "env", "camelCase"} {
		assert.True(t, IsKnownKey(k), k)
	}
	assert.False(t, IsKnownKey("ConfigDir"))
	assert.False(t, IsKnownKey(""))
}
