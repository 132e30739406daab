package graphio_test

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spdisjoint/builder"
	"github.com/katalvlaran/spdisjoint/core"
	"github.com/katalvlaran/spdisjoint/graphio"
)

func TestWrite_Format(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1.5))
	require.NoError(t, g.AddEdge(2, 1, -3))

	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, g))
	assert.Equal(t, "3\n2\nN0 N1 1.5\nN2 N1 -3\n", buf.String())

	assert.ErrorIs(t, graphio.Write(&buf, nil), graphio.ErrNilGraph)
}

func TestWrite_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeightFn(0, 10))},
		builder.RandomSparse(15, 0.3))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, math.Inf(1)))

	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, graphio.WriteFile(path, g))

	doc, err := graphio.ParseFile(path)
	require.NoError(t, err)
	back, err := graphio.Build(doc)
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), back.VertexCount())
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestWriteFile_BadPath(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)
	err = graphio.WriteFile(filepath.Join(t.TempDir(), "missing", "g.txt"), g)
	assert.Error(t, err)
}
