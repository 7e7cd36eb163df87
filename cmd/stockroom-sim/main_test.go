package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TheBitDrifter/stockroom/internal/config"
	"gotest.tools/v3/assert"
)

func TestRunWithScenario(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := filepath.Join(dir, "bodies.yaml")
	assert.NilError(t, os.WriteFile(scenarioPath, []byte("entities:\n  - state: {x: 1, vx: 2}\n"), 0o644))

	cfgPath := filepath.Join(dir, "stockroom.toml")
	cfg := "[simulation]\nticks = 3\nscenario = \"" + filepath.ToSlash(scenarioPath) + "\"\n[logging]\nlevel = \"error\"\nformat = \"json\"\n"
	assert.NilError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	assert.NilError(t, run([]string{"-config", cfgPath}))
}

func TestRunMissingConfig(t *testing.T) {
	err := run([]string{"-config", filepath.Join(t.TempDir(), "nope.toml")})
	assert.ErrorContains(t, err, "load config")
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	log, err := newLogger(config.LoggingConfig{Level: "loud", Format: "console"})
	assert.NilError(t, err)
	assert.Assert(t, log.Core().Enabled(0))
	assert.Assert(t, !log.Core().Enabled(-1))
}
