package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func runValidateCommand(t *testing.T, format string, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestValidateCleanFile(t *testing.T) {
	buf, err := runValidateCommand(t, "text", "testdata/reference.config")
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "3 references")
	assert.Contains(t, output, "0 malformed")
}

func TestValidateCleanFileJSON(t *testing.T) {
	buf, err := runValidateCommand(t, "json", "testdata/reference.config")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, float64(3), data["references"])
}

func TestValidateMixedFileFailsWithReport(t *testing.T) {
	buf, err := runValidateCommand(t, "json", "testdata/mixed.config")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status, "the report itself is produced, the exit code flags it")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, data["valid"])
	assert.Equal(t, float64(1), data["references"])
	assert.Len(t, data["malformed"], 3)
}

func TestValidateMissingFile(t *testing.T) {
	buf, err := runValidateCommand(t, "json", filepath.Join(t.TempDir(), "absent.config"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "OPEN_FAILED", resp.Error.Code)
}

func TestValidatePathFromHostConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "warden.yaml")
	writeFile(t, cfgPath, "reference-config-file: testdata/reference.config\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", Config: cfgPath}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "testdata/reference.config: 3 references")
}

func TestValidateBadHostConfig(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", Config: filepath.Join(t.TempDir(), "absent.yaml")}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "CONFIG_ERROR")
}
