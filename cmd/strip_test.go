package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveDialect checks the resolution order: forced type, config
// mapping, then built-in extension detection with the c_style fallback.
func TestResolveDialect(t *testing.T) {
	chdir(t, t.TempDir())

	// Forced known dialect wins regardless of extension.
	name, d := resolveDialect("script.py", "sql")
	assert.Equal(t, "sql", name)
	assert.Equal(t, "--", d.Single)

	// Forced unknown dialect falls back to extension detection.
	name, _ = resolveDialect("script.py", "klingon")
	assert.Equal(t, "python", name)

	// No hints at all degrades to the c_style fallback.
	name, d = resolveDialect("data.xyz", "")
	assert.Equal(t, "unknown", name)
	assert.Equal(t, "//", d.Single)
}

// TestResolveDialectConfig verifies that a .decomment.yaml in the working
// directory extends extension resolution, and that unknown dialect names
// in the config are ignored.
func TestResolveDialectConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfgContent := "dialects:\n  .xyz: sql\n  mjs: c_style\n  .bad: klingon\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configName), []byte(cfgContent), 0644))

	name, d := resolveDialect("data.xyz", "")
	assert.Equal(t, "sql", name)
	assert.Equal(t, "--", d.Single)

	// Keys without a leading dot are normalized.
	name, _ = resolveDialect("mod.mjs", "")
	assert.Equal(t, "c_style", name)

	// Unknown dialect name in the config: ignored, built-in fallback.
	name, _ = resolveDialect("file.bad", "")
	assert.Equal(t, "unknown", name)

	// Config never shadows a forced type.
	name, _ = resolveDialect("data.xyz", "python")
	assert.Equal(t, "python", name)
}

func TestBackupPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "app.js")
	now := time.Unix(1700000000, 0)

	backup := backupPath(input, now)
	assert.Equal(t, filepath.Join(dir, "app.1700000000.bak"), backup)

	// If the timestamped name is taken, fall back to <input>.bak.
	require.NoError(t, os.WriteFile(backup, []byte("x"), 0644))
	assert.Equal(t, input+".bak", backupPath(input, now))
}

// TestWriteInPlace checks that the original content survives in a backup
// and the input file holds the cleaned text afterwards.
func TestWriteInPlace(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "app.js")
	original := "int x = 1; // count\n"
	require.NoError(t, os.WriteFile(input, []byte(original), 0644))

	require.NoError(t, writeInPlace(input, "int x = 1;\n"))

	got, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, "int x = 1;\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".bak" {
			backups = append(backups, e.Name())
		}
	}
	require.Len(t, backups, 1)

	backed, err := os.ReadFile(filepath.Join(dir, backups[0]))
	require.NoError(t, err)
	assert.Equal(t, original, string(backed))
}

// TestStripOnce runs the end-to-end read/resolve/strip/write path used by
// the watch command.
func TestStripOnce(t *testing.T) {
	chdir(t, t.TempDir())

	dir := t.TempDir()
	input := filepath.Join(dir, "query.sql")
	output := filepath.Join(dir, "query.clean.sql")
	require.NoError(t, os.WriteFile(input, []byte("SELECT 1; -- one\n/* two */\nSELECT 2;\n"), 0644))

	require.NoError(t, stripOnce(input, output))

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;\n\nSELECT 2;\n", string(got))
}

// chdir switches the working directory for one test so config lookup sees
// a controlled directory.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
