package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spdisjoint/builder"
	"github.com/katalvlaran/spdisjoint/graphio"
)

func TestRun_Theta(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-k", "2", "--length", "2", "theta"}, &out))
	assert.Equal(t, "4\n4\nN0 N2 1\nN2 N1 1\nN0 N3 1\nN3 N1 1\n", out.String())
}

func TestRun_RandomDeterministic(t *testing.T) {
	args := []string{"-n", "12", "-p", "0.4", "--seed", "9", "--int-weights", "--wmin", "1", "--wmax", "3", "random"}
	var a, b bytes.Buffer
	require.NoError(t, run(args, &a))
	require.NoError(t, run(args, &b))
	assert.Equal(t, a.String(), b.String())

	doc, err := graphio.Parse(&a)
	require.NoError(t, err)
	assert.Equal(t, 12, doc.Nodes)
	for _, e := range doc.Edges {
		assert.Contains(t, []float64{1, 2, 3}, e.Weight)
	}
}

func TestRun_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, run([]string{"--rows", "2", "--cols", "3", "-o", path, "grid"}, nil))

	doc, err := graphio.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, doc.Nodes)
	assert.Equal(t, 7, doc.Declared)
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(nil, &out), "topology is required")
	assert.Error(t, run([]string{"hypercube"}, &out))
	assert.Error(t, run([]string{"--wmin", "3", "--wmax", "1", "path"}, &out))
	assert.ErrorIs(t, run([]string{"-n", "2", "cycle"}, &out), builder.ErrTooFewVertices)
	assert.ErrorIs(t, run([]string{"-p", "2", "random"}, &out), builder.ErrInvalidProbability)
}
