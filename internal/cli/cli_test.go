package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugr-lab/soma-go/selection"
)

const testDims = `dimensions:
  - name: x
    type: int32
    min: 0
    max: 100
  - name: soma_joinid
    type: uint64
    min: 0
    max: 18446744073709551615
  - name: y
    type: float64
    min: 0
    max: 0.5
  - name: label
    type: string
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "somaselect", cmd.Use)

	for _, name := range []string{"points", "ranges", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "version", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestParseDimensions(t *testing.T) {
	reg, err := ParseDimensions([]byte(testDims))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "soma_joinid", "y", "label"}, reg.Names())

	d, err := reg.Dimension("soma_joinid")
	require.NoError(t, err)
	assert.Equal(t, "[0, 18446744073709551615]", d.DomainString())

	_, err = ParseDimensions([]byte("dimensions:\n  - name: x\n    type: int32\n    min: 5\n    max: 1\n"))
	assert.Error(t, err)

	_, err = ParseDimensions([]byte("dimensions: []\n"))
	assert.Error(t, err)
}

func TestPointsCommand(t *testing.T) {
	dims := writeFile(t, "dims.yaml", testDims)
	req := writeFile(t, "req.yaml", "x: [50, 200, 7]\ny: [0.25]\n")

	stdout, _, err := execute(t, "points", "--dims", dims, "--request", req)
	require.NoError(t, err)
	assert.Equal(t, "Point(x, 50)\nPoint(x, 7)\nPoint(y, 0.25)\nWHERE (x IN (50, 7)) AND (y IN (0.25))\n", stdout)
}

func TestPointsCommandJSON(t *testing.T) {
	dims := writeFile(t, "dims.yaml", testDims)
	req := writeFile(t, "req.yaml", "soma_joinid: [18446744073709551615]\n")

	stdout, _, err := execute(t, "points", "--format", "json", "-d", dims, "-r", req)
	require.NoError(t, err)

	var res Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, []string{"Point(soma_joinid, 18446744073709551615)"}, res.Predicates)
	assert.Equal(t, "soma_joinid IN (18446744073709551615)", res.Where)
	assert.NotEmpty(t, res.QueryID)
}

func TestPointsCommandUnsuitable(t *testing.T) {
	dims := writeFile(t, "dims.yaml", testDims)
	req := writeFile(t, "req.yaml", "x: [1]\ny: [0.9]\n")

	stdout, _, err := execute(t, "points", "--dims", dims, "--request", req)
	require.Error(t, err)
	assert.ErrorIs(t, err, selection.ErrUnsuitableSelection)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "unsuitable dim points on dimension 'y' with domain [0, 0.5]")
	// x was installed before y failed
	assert.Contains(t, stdout, "Point(x, 1)")
}

func TestPointsCommandMissingFile(t *testing.T) {
	dims := writeFile(t, "dims.yaml", testDims)

	_, _, err := execute(t, "points", "--dims", dims, "--request", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRangesCommand(t *testing.T) {
	dims := writeFile(t, "dims.yaml", testDims)
	req := writeFile(t, "req.yaml", "x:\n  - [90, 150]\ny:\n  - [0.1, 0.2]\n")

	stdout, stderr, err := execute(t, "ranges", "-v", "--dims", dims, "--request", req)
	require.NoError(t, err)
	assert.Equal(t, "Range(x, 90, 100)\nRange(y, 0.1, 0.2)\nWHERE (x BETWEEN 90 AND 100) AND (y BETWEEN 0.1 AND 0.2)\n", stdout)
	assert.Contains(t, stderr, "Applying dim range")
}

func TestRangesCommandUnsupported(t *testing.T) {
	dims := writeFile(t, "dims.yaml", testDims)
	req := writeFile(t, "req.yaml", "label:\n  - [a, b]\n")

	_, _, err := execute(t, "ranges", "--dims", dims, "--request", req)
	require.Error(t, err)
	assert.ErrorIs(t, err, selection.ErrUnsupportedType)
}

func TestRangesCommandMsgpack(t *testing.T) {
	dims := writeFile(t, "dims.yaml", testDims)

	data, err := selection.EncodeRangeRequest(selection.RangeRequest{
		{Dim: "x", Pairs: [][2]int32{{0, 10}, {20, 30}}},
	}, true)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "req.zst")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	stdout, _, err := execute(t, "ranges", "--dims", dims, "--request", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "WHERE x BETWEEN 0 AND 10 OR x BETWEEN 20 AND 30")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "soma-go")
	assert.Contains(t, stdout, "engine")

	stdout, _, err = execute(t, "version", "--compact", "--major-minor")
	require.NoError(t, err)
	assert.Regexp(t, `^\d+\.\d+\n$`, stdout)
}
