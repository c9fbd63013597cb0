package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLookupCommand(t *testing.T, format string, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewLookupCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestLookupFound(t *testing.T) {
	buf, err := runLookupCommand(t, "text", "cve", "testdata/reference.config")
	require.NoError(t, err)
	assert.Equal(t, "cve http://cve.mitre.org/cgi-bin/cvename.cgi?name=\n", buf.String())
}

func TestLookupCaseInsensitive(t *testing.T) {
	buf, err := runLookupCommand(t, "json", "BugTraq", "testdata/reference.config")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "bugtraq", data["system"])
	assert.Equal(t, "http://www.securityfocus.com/bid/", data["url"])
}

func TestLookupNotFound(t *testing.T) {
	buf, err := runLookupCommand(t, "json", "nonexistent", "testdata/reference.config")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestLookupMissingFile(t *testing.T) {
	_, err := runLookupCommand(t, "text", "cve", filepath.Join(t.TempDir(), "absent.config"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestLookupPathFromHostConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "warden.yaml")
	writeFile(t, cfgPath, "reference-config-file: testdata/reference.config\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", Config: cfgPath}
	cmd := NewLookupCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"osvdb"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "osvdb http://osvdb.org/show/osvdb/\n", buf.String())
}
