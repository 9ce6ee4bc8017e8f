package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavepaths/config"
	"github.com/katalvlaran/cavepaths/dfs"
)

const smallCave = `start-A
start-b
A-c
A-b
b-d
A-end
b-end
`

// execute runs a fresh command tree with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

// writeFile stores content under a temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRoot_CountsFromFile(t *testing.T) {
	path := writeFile(t, "small.txt", smallCave)

	out, err := execute(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "single-visit: 10\none-small-twice: 36\n", out)
}

func TestCount_Stdin(t *testing.T) {
	out, err := execute(t, smallCave, "count", "-")
	require.NoError(t, err)
	assert.Equal(t, "single-visit: 10\none-small-twice: 36\n", out)

	out, err = execute(t, smallCave, "count")
	require.NoError(t, err)
	assert.Equal(t, "single-visit: 10\none-small-twice: 36\n", out)
}

func TestCount_PolicyFlag(t *testing.T) {
	out, err := execute(t, smallCave, "count", "--policy", "twice")
	require.NoError(t, err)
	assert.Equal(t, "one-small-twice: 36\n", out)
}

func TestCount_FlagStateIsPerRun(t *testing.T) {
	_, err := execute(t, smallCave, "count", "--max-paths", "3")
	require.ErrorIs(t, err, dfs.ErrPathLimit)

	// A second tree starts from defaults again.
	out, err := execute(t, smallCave, "count")
	require.NoError(t, err)
	assert.Equal(t, "single-visit: 10\none-small-twice: 36\n", out)
}

func TestCount_CustomEndpointsAndSeparator(t *testing.T) {
	in := "in>X\nX>y\nX>out\n"

	out, err := execute(t, in, "count", "--separator", ">", "--start", "in", "--end", "out", "-p", "single")
	require.NoError(t, err)
	assert.Equal(t, "single-visit: 2\n", out)
}

func TestList_SortedPaths(t *testing.T) {
	out, err := execute(t, smallCave, "list", "-p", "single")
	require.NoError(t, err)

	want := strings.Join([]string{
		"# single-visit: 10",
		"start,A,b,A,c,A,end",
		"start,A,b,A,end",
		"start,A,b,end",
		"start,A,c,A,b,A,end",
		"start,A,c,A,b,end",
		"start,A,c,A,end",
		"start,A,end",
		"start,b,A,c,A,end",
		"start,b,A,end",
		"start,b,end",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestInspect(t *testing.T) {
	out, err := execute(t, smallCave, "inspect")
	require.NoError(t, err)

	assert.Contains(t, out, "nodes: 6 (small [b c d end start], large [A]), edges: 7")
	assert.Contains(t, out, "reachable from start: 6 of 6")
	assert.Contains(t, out, "fewest hops to end: 2 via [start A end]")
}

func TestInspect_MissingStart(t *testing.T) {
	out, err := execute(t, "a-b\n", "inspect")
	require.NoError(t, err)
	assert.Contains(t, out, `start "start": not in graph`)
}

func TestConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "cavepaths.yaml", "policies: [single]\nmax_depth: 20\n")

	out, err := execute(t, smallCave, "count", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "single-visit: 10\n", out)

	out, err = execute(t, "", "config", "-c", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "start: start")
	assert.Contains(t, out, "max_depth: 20")
	assert.Contains(t, out, "- single")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  error
	}{
		{"unknown policy", smallCave, []string{"--policy", "bogus"}, config.ErrInvalidConfig},
		{"negative cap", smallCave, []string{"--max-paths", "-1"}, config.ErrInvalidConfig},
		{"missing endpoint", "start-A\nA-b\n", []string{"count"}, dfs.ErrMissingEndpoint},
		{"depth cap", smallCave, []string{"count", "--max-depth", "2"}, dfs.ErrDepthLimit},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.stdin, tc.args...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMalformedInput(t *testing.T) {
	_, err := execute(t, "start-A\nnot an edge\n", "count")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")
	assert.Contains(t, err.Error(), "line 2")
}

func TestMissingFile(t *testing.T) {
	_, err := execute(t, "", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input")
}
