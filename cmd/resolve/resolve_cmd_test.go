package resolve

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LegacyCodeHQ/depclosure/depgraph"
	"github.com/LegacyCodeHQ/depclosure/internal/testhelpers"
	"github.com/LegacyCodeHQ/depclosure/vcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeDependencyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deps.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func executeResolve(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestResolveCommand_TextOutput(t *testing.T) {
	path := writeDependencyFile(t, "A depends on B C\nB depends on C E\nC depends on G\nD depends on A\nE depends on F\nF depends on H\n")

	output, err := executeResolve(t, "", path)
	require.NoError(t, err)

	g := testhelpers.OutputGoldie(t)
	g.Assert(t, t.Name(), []byte(output))
}

func TestResolveCommand_ReadsStdin(t *testing.T) {
	output, err := executeResolve(t, "X depends on Y\nY depends on Z", vcs.StdinPath)

	require.NoError(t, err)
	assert.Equal(t, "X depends on Y Z\nY depends on Z\n", output)
}

func TestResolveCommand_JSONOutput(t *testing.T) {
	path := writeDependencyFile(t, "X depends on Y\nY depends on Z\nZ has no dependencies\n")

	output, err := executeResolve(t, "", path, "--format", "json")

	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"library": "X", "dependencies": ["Y", "Z"]},
		{"library": "Y", "dependencies": ["Z"]},
		{"library": "Z", "dependencies": []}
	]`, output)
}

func TestResolveCommand_YAMLOutput(t *testing.T) {
	path := writeDependencyFile(t, "app depends on http\nhttp depends on tls\napp depends on http log\n")

	output, err := executeResolve(t, "", path, "-f", "yaml")
	require.NoError(t, err)

	var resolutions []depgraph.Resolution
	require.NoError(t, yaml.Unmarshal([]byte(output), &resolutions))
	assert.Equal(t, []depgraph.Resolution{
		{Library: "app", Dependencies: []string{"http", "log", "tls"}},
		{Library: "http", Dependencies: []string{"tls"}},
		{Library: "app", Dependencies: []string{"http", "log", "tls"}},
	}, resolutions)
}

func TestResolveCommand_FormatFromEnvironment(t *testing.T) {
	t.Setenv("DEPCLOSURE_FORMAT", "json")
	path := writeDependencyFile(t, "A has no dependencies\n")

	output, err := executeResolve(t, "", path)

	require.NoError(t, err)
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.Len(t, decoded, 1)
}

func TestResolveCommand_FormatFlagOverridesInvalidEnvironment(t *testing.T) {
	t.Setenv("DEPCLOSURE_FORMAT", "xml")
	path := writeDependencyFile(t, "X depends on Y\n")

	output, err := executeResolve(t, "", path, "-f", "json")

	require.NoError(t, err)
	assert.JSONEq(t, `[{"library": "X", "dependencies": ["Y"]}]`, output)

	_, err = executeResolve(t, "", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")
}

func TestResolveCommand_MalformedLine(t *testing.T) {
	path := writeDependencyFile(t, "A depends on B\nX invalid format\n")

	output, err := executeResolve(t, "", path)

	var formatErr *depgraph.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "invalid dependency line format: X invalid format", err.Error())
	assert.Empty(t, output)
}

func TestResolveCommand_MissingFile(t *testing.T) {
	output, err := executeResolve(t, "", filepath.Join(t.TempDir(), "non", "existent"))

	var ioErr *vcs.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.True(t, strings.HasPrefix(err.Error(), "error reading file: "))
	assert.Empty(t, output)
}

func TestResolveCommand_RequiresExactlyOneArgument(t *testing.T) {
	_, err := executeResolve(t, "")
	require.Error(t, err)

	_, err = executeResolve(t, "", "a.txt", "b.txt")
	require.Error(t, err)
}

func TestResolveCommand_UnknownFormat(t *testing.T) {
	path := writeDependencyFile(t, "A has no dependencies\n")

	_, err := executeResolve(t, "", path, "--format", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")
}

func TestResolveCommand_EmptyFilePrintsNothing(t *testing.T) {
	path := writeDependencyFile(t, "\n")

	output, err := executeResolve(t, "", path)

	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestRender_EmptyResolutions(t *testing.T) {
	text, err := Render("text", nil)
	require.NoError(t, err)
	assert.Empty(t, text)

	_, err = Render("toml", nil)
	assert.Error(t, err)
}
