package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/simoninireland/cncp-playground/experiment"
	"github.com/simoninireland/cncp-playground/network"
)

// execute runs the command tree with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()

	return out.String(), err
}

func TestGenerate_WritesNetwork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "path.yaml")
	_, err := execute(t, "generate", "--network", "path", "--nodes", "4", "-o", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	nw, err := network.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 4, nw.Order())
	assert.Equal(t, []network.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, nw.Edges())
}

func TestRun_CSVFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "path.yaml")
	_, err := execute(t, "generate", "--network", "path", "--nodes", "4", "-o", path)
	require.NoError(t, err)

	out, err := execute(t, "run", "--input", path, "--points", "0, 1", "--format", "csv", "--trials", "2")
	require.NoError(t, err)

	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 5)
	assert.Equal(t, sampleHeader, recs[0])
	for _, rec := range recs[1:] {
		switch rec[4] {
		case "0":
			assert.Equal(t, "1", rec[9])
		case "1":
			assert.Equal(t, "4", rec[9], "connected network percolates fully")
		default:
			t.Fatalf("unexpected p %q", rec[4])
		}
	}
}

func TestRun_ResidualJSONLines(t *testing.T) {
	out, err := execute(t, "run",
		"--network", "er", "--nodes", "60", "--edge-probability", "0.08", "--network-seed", "5",
		"--process", "residual", "--samples", "5", "--depth", "2",
		"--trials", "3", "--workers", "2", "--seed", "9")
	require.NoError(t, err)

	depths := map[int]int{}
	trials := map[int]bool{}
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var row sampleRow
		require.NoError(t, json.Unmarshal(sc.Bytes(), &row))
		assert.Len(t, row.Context, row.Depth)
		assert.NotEmpty(t, row.Trial)
		depths[row.Depth]++
		trials[row.Index] = true
	}
	require.NoError(t, sc.Err())
	assert.Len(t, trials, 3)
	assert.Contains(t, depths, 0)
	assert.Contains(t, depths, 1)
	assert.Contains(t, depths, 2)
}

func TestRun_SummaryYAML(t *testing.T) {
	out, err := execute(t, "run", "--network", "cycle", "--nodes", "10",
		"--samples", "3", "--trials", "4", "--summary", "--format", "yaml")
	require.NoError(t, err)

	var points []experiment.Point
	require.NoError(t, yaml.Unmarshal([]byte(out), &points))
	require.Len(t, points, 3)
	assert.Equal(t, 4, points[0].Trials)
	assert.Equal(t, 1.0, points[0].MeanGCC)
	assert.Equal(t, 10, points[2].MaxGCC)
}

func TestRun_ConfigFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "percolate.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("network: star\nnodes: 6\nsamples: 2\nformat: csv\n"), 0o600))
	t.Setenv("PERCOLATE_TRIALS", "3")

	out, err := execute(t, "run", "--config", cfgPath)
	require.NoError(t, err)
	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, recs, 1+3*2)
}

func TestRun_InvalidConfiguration(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"no network", []string{"run"}, "one of network or input is required"},
		{"both sources", []string{"run", "--network", "path", "--input", "x.yaml"}, "mutually exclusive"},
		{"bad generator", []string{"run", "--network", "lattice"}, "network must be one of"},
		{"bad format", []string{"run", "--network", "path", "--nodes", "3", "--format", "xml"}, "format must be one of"},
		{"bad probability", []string{"run", "--network", "er", "--nodes", "3", "--edge-probability", "2"}, "at most 1"},
		{"bad trials", []string{"run", "--network", "path", "--nodes", "3", "--trials", "0"}, "trials must be at least 1"},
		{"bad points", []string{"run", "--network", "path", "--nodes", "3", "--points", "0,x"}, "points"},
		{"out of range point", []string{"run", "--network", "path", "--nodes", "3", "--points", "1.5"}, "not in [0,1]"},
		{"bad policy", []string{"run", "--network", "path", "--nodes", "3", "--policy", "nearest"}, "policy must be one of"},
		{"too small", []string{"generate", "--network", "cycle", "--nodes", "2"}, "Cycle"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParsePoints(t *testing.T) {
	ps, err := parsePoints(" 0.5 ,1,0 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 0}, ps)

	ps, err = parsePoints("")
	require.NoError(t, err)
	assert.Nil(t, ps)
}

// failingFile accepts writes but cannot be closed, as when a flush fails.
type failingFile struct{ bytes.Buffer }

var errCloseFailed = errors.New("disk full")

func (*failingFile) Close() error { return errCloseFailed }

func TestOutput_CloseErrorIsReported(t *testing.T) {
	var f *failingFile
	orig := createOutput
	createOutput = func(string) (io.WriteCloser, error) {
		f = &failingFile{}
		return f, nil
	}
	t.Cleanup(func() { createOutput = orig })

	_, err := execute(t, "generate", "--network", "path", "--nodes", "3", "-o", "net.yaml")
	require.ErrorIs(t, err, errCloseFailed)
	assert.Contains(t, f.String(), "nodes: 3", "the document was written before the close failed")

	_, err = execute(t, "run", "--network", "path", "--nodes", "3", "--samples", "2", "-o", "out.jsonl")
	assert.ErrorIs(t, err, errCloseFailed)
}

func TestInitLogger_UnknownLevelWarns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "percolate.log")
	ctx, err := initLogger(context.Background(), LogConfig{LogLevel: "chatty", LogFormat: "json", LogFile: path})
	require.NoError(t, err)
	_ = ctxzap.Extract(ctx).Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"unknown log level, logging at debug"`)
	assert.Contains(t, string(raw), `"log_level":"chatty"`)
}

func TestRun_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"run", "--network", "path", "--nodes", "3", "--samples", "2",
		"--log-level", "info", "--log-file", path})
	require.NoError(t, root.Execute())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"trials complete"`)
}
