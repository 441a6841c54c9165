package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh root command with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--log-level", "ERROR"}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeSpec(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "tsgen", root.Use)

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"kinds", "describe", "generate", "validate"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestKinds(t *testing.T) {
	out, err := execute(t, "kinds")
	require.NoError(t, err)

	var kinds []kindInfo
	require.NoError(t, json.Unmarshal([]byte(out), &kinds))
	require.Len(t, kinds, 7)
	assert.Equal(t, "linear", string(kinds[0].Kind))
	assert.False(t, kinds[0].Seeded)
}

func TestDescribe(t *testing.T) {
	out, err := execute(t, "describe", "uniform")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "uniform", got["kind"])
	assert.Equal(t, true, got["seeded"])
	assert.Len(t, got["options"], 2)
	assert.Len(t, got["constraints"], 2)

	_, err = execute(t, "describe", "brownian")
	assert.Error(t, err)
}

const cmdSpec = `
name: cli
samples: 12
components:
  - kind: normal
    instances: 2
  - kind: linear
    options: {slope: 0.5}
`

func TestGenerate_Reproducible(t *testing.T) {
	path := writeSpec(t, cmdSpec)

	run := func() [][]float64 {
		out, err := execute(t, "generate", "-f", path, "--seed", "11")
		require.NoError(t, err)
		var got struct {
			Series map[string]any `json:"series"`
			Data   [][]float64    `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "cli", got.Series["name"])
		return got.Data
	}

	first := run()
	require.Len(t, first, 2)
	assert.Len(t, first[0], 12)
	assert.Equal(t, first, run())
}

func TestGenerate_SamplesOverride(t *testing.T) {
	out, err := execute(t, "generate", "-f", writeSpec(t, cmdSpec), "--samples", "5")
	require.NoError(t, err)

	var got struct {
		Data [][]float64 `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Data[0], 5)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := execute(t, "generate")
	assert.Error(t, err, "--file is required")

	_, err = execute(t, "generate", "-f", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "generate", "-f", writeSpec(t, "components:\n  - kind: nope\n"))
	assert.Error(t, err)

	_, err = execute(t, "generate", "-f", writeSpec(t, "components:\n  - kind: normal\n    options: {sigma: -1}\n"))
	assert.ErrorIs(t, err, errInvalidSeries)
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", "-f", writeSpec(t, cmdSpec))
	require.NoError(t, err)
	var ok validateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &ok))
	assert.True(t, ok.Valid)
	assert.Len(t, ok.Components, 2)

	out, err = execute(t, "validate", "-f", writeSpec(t, "components:\n  - kind: uniform\n    options: {xMin: 3, xMax: 1}\n"))
	assert.ErrorIs(t, err, errInvalidSeries)
	var bad validateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &bad))
	assert.False(t, bad.Valid)
	assert.ElementsMatch(t, []string{"xMin", "xMax"}, bad.Components[0].Invalid)
}

func TestConfigFlag(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("generation:\n  samples: 7\n"), 0o644))

	out, err := execute(t, "--config", cfg, "generate", "-f", writeSpec(t, "components:\n  - kind: linear\n"))
	require.NoError(t, err)
	var got struct {
		Data [][]float64 `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Data[0], 7)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "kinds")
	assert.Error(t, err)
}

func TestLoggerClosedOnFailure(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	logDir := t.TempDir()
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logging:\n  dir: "+logDir+"\n  level: INFO\n"), 0o644))
	spec := writeSpec(t, "components:\n  - kind: normal\n    options: {sigma: -1}\n")

	a := &app{}
	root := a.rootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", cfg, "validate", "-f", spec})

	err := root.Execute()
	assert.ErrorIs(t, err, errInvalidSeries)
	assert.Nil(t, a.log, "logger closed even though the command failed")

	content, err := os.ReadFile(filepath.Join(logDir, "tsgen.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "series built")
}
