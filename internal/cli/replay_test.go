package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/navstack/pkg/navstack/script"
)

var scenarioDir = filepath.Join("..", "..", "pkg", "navstack", "script", "testdata")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReplay_TextMatchesGolden(t *testing.T) {
	out, err := execute(t, "replay", filepath.Join(scenarioDir, "scenarios", "basic.yaml"))
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join(scenarioDir, "golden", "basic.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestReplay_JSON(t *testing.T) {
	out, err := execute(t, "replay", "--format", "json", filepath.Join(scenarioDir, "scenarios", "replace.yaml"))
	require.NoError(t, err)

	var trace []script.TraceLine
	require.NoError(t, json.Unmarshal([]byte(out), &trace))
	require.Len(t, trace, 12)
	assert.Equal(t, script.OpReplace, trace[4].Op)
	assert.Equal(t, []string{"home", "list", "edit"}, trace[4].Names)
}

func TestReplay_InvalidFormat(t *testing.T) {
	_, err := execute(t, "replay", "--format", "xml", filepath.Join(scenarioDir, "scenarios", "basic.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestReplay_ConfigRoutes(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "nav.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[navigation]
sync_on_mutation = true

[[routes]]
name = "home"
launch_mode = "MOVE_TO_TOP_SINGLETON"
`), 0644))

	scriptPath := filepath.Join(dir, "nav.yaml")
	require.NoError(t, os.WriteFile(scriptPath, []byte(`
name: routed
steps:
  - op: push
    name: home
  - op: navigate
    name: detail
  - op: navigate
    name: home
`), 0644))

	out, err := execute(t, "replay", "--config", cfgPath, "--format", "json", scriptPath)
	require.NoError(t, err)

	var trace []script.TraceLine
	require.NoError(t, json.Unmarshal([]byte(out), &trace))
	require.Len(t, trace, 3)
	assert.Equal(t, []string{"detail", "home"}, trace[2].Names)
	// Both entries already have subtrees, so the pass only commits.
	assert.Equal(t, []string{"set_path", "check_need_create(0)", "check_need_create(1)", "sync_stack"}, trace[2].Calls)
}

func TestReplay_MissingScript(t *testing.T) {
	_, err := execute(t, "replay", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
