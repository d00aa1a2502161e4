package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

const bubbleDoc = `{
  "nodes": {
    "1+": {"length": 10, "assembly": ["ref"]},
    "2+": {"length": 10, "assembly": ["ref"]},
    "3+": {"length": 10, "assembly": ["ref"]},
    "9+": {"length": 25, "assembly": ["alt"]}
  },
  "edges": [
    {"starting_node": "1+", "ending_node": "2+"},
    {"starting_node": "2+", "ending_node": "3+"},
    {"starting_node": "1+", "ending_node": "9+"},
    {"starting_node": "9+", "ending_node": "3+"}
  ]
}`

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(bubbleDoc), 0o600))
	return path
}

func TestAssembliesCommand(t *testing.T) {
	out, _, err := execute(t, bubbleDoc, "assemblies")
	require.NoError(t, err)

	var got struct {
		Stats struct {
			NodeCount int `json:"nodeCount"`
			EdgeCount int `json:"edgeCount"`
		} `json:"stats"`
		Assemblies []assemblySummary `json:"assemblies"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 4, got.Stats.NodeCount)
	assert.Equal(t, 4, got.Stats.EdgeCount)
	assert.Equal(t, []assemblySummary{{Key: "alt", Nodes: 1}, {Key: "ref", Nodes: 3}}, got.Assemblies)
}

func TestWalksCommand(t *testing.T) {
	out, _, err := execute(t, "", "walks", "-i", writeDoc(t), "--keys", "ref", "--mode", "endpoint")
	require.NoError(t, err)

	var got struct {
		Assemblies []struct {
			Key  string `json:"key"`
			Walk struct {
				Paths []struct {
					Nodes []string `json:"nodes"`
					Mode  string   `json:"mode"`
				} `json:"paths"`
			} `json:"walk"`
		} `json:"assemblies"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Assemblies, 1)
	require.Len(t, got.Assemblies[0].Walk.Paths, 1)
	assert.Equal(t, []string{"1+", "2+", "3+"}, got.Assemblies[0].Walk.Paths[0].Nodes)
	assert.Equal(t, "endpoint", got.Assemblies[0].Walk.Paths[0].Mode)
}

func TestLinearizeCommand(t *testing.T) {
	out, _, err := execute(t, "", "linearize", "-i", writeDoc(t), "-k", "ref", "--origin", "100", "--log-level", "debug")
	require.NoError(t, err)

	var got struct {
		RunID      string `json:"runId"`
		Assemblies []struct {
			Linear struct {
				Segments []struct {
					BpStart int64 `json:"bpStart"`
				} `json:"segments"`
				Features []struct {
					ID    string `json:"id"`
					Delta int64  `json:"delta"`
					Sign  int    `json:"sign"`
				} `json:"features"`
			} `json:"linearization"`
		} `json:"assemblies"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotEmpty(t, got.RunID)
	require.Len(t, got.Assemblies, 1)
	lin := got.Assemblies[0].Linear
	require.Len(t, lin.Segments, 3)
	assert.EqualValues(t, 100, lin.Segments[0].BpStart)
	require.Len(t, lin.Features, 1)
	assert.Equal(t, "1+~3+", lin.Features[0].ID)
	assert.EqualValues(t, 15, lin.Features[0].Delta)
	assert.Equal(t, 1, lin.Features[0].Sign)
}

func TestTraceFlag(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, errOut, err := execute(t, bubbleDoc, "walks", "--trace")
	require.NoError(t, err)
	assert.Contains(t, errOut, "pipeline.extract")
}

func TestEnvironmentSettings(t *testing.T) {
	t.Setenv("PANGRAPH_WALK_KEYS", "alt")
	out, _, err := execute(t, bubbleDoc, "walks")
	require.NoError(t, err)
	assert.Contains(t, out, `"key": "alt"`)
	assert.NotContains(t, out, `"key": "ref"`)
}

func TestInvalidInput(t *testing.T) {
	_, _, err := execute(t, "[1, 2]", "walks", "--format", "json")
	assert.Error(t, err)

	_, _, err = execute(t, bubbleDoc, "walks", "--format", "xml")
	assert.Error(t, err)

	_, _, err = execute(t, bubbleDoc, "linearize", "--max-alt-paths", "0")
	assert.Error(t, err)
}
