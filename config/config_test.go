/*
File   : pitlang/config/config_test.go
Package: config
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg := Load(t.TempDir())
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesFromYAML(t *testing.T) {
	dir := t.TempDir()
	content := "version: v9.9.9\nprompt: \"? \"\nrecursion_limit: 42\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg := Load(dir)
	assert.Equal(t, "v9.9.9", cfg.Version)
	assert.Equal(t, "? ", cfg.Prompt)
	assert.Equal(t, 42, cfg.RecursionLimit)
}

func TestLoad_PartialFileKeepsOtherDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("recursion_limit: 7\n"), 0644))

	cfg := Load(dir)
	assert.Equal(t, 7, cfg.RecursionLimit)
	assert.Equal(t, Default().Prompt, cfg.Prompt)
	assert.Equal(t, Default().Version, cfg.Version)
}

func TestLoad_MalformedFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{{not yaml"), 0644))

	cfg := Load(dir)
	assert.Equal(t, Default(), cfg)
}
