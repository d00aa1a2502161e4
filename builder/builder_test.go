package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pangraph/builder"
)

func TestChainAndBubble(t *testing.T) {
	doc, err := builder.BuildDocument(
		[]builder.BuilderOption{builder.WithAssembly("ref"), builder.WithUniformLength(5)},
		builder.Chain("1+", "2+", "3+"),
		builder.Bubble("1+", "3+", "9+"),
	)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 4)
	require.Len(t, doc.Edges, 4)
	assert.Equal(t, "1+", doc.Edges[2].From)
	assert.Equal(t, "9+", doc.Edges[2].To)
	assert.Equal(t, []string{"ref"}, doc.Nodes["9+"].Assemblies)
	assert.EqualValues(t, 5, *doc.Nodes["2+"].Length)
}

func TestPathUsesIDScheme(t *testing.T) {
	doc, err := builder.BuildDocument(
		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("s"))},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.Contains(t, doc.Nodes, "s1+")
	assert.Contains(t, doc.Nodes, "s3+")
}

func TestValidation(t *testing.T) {
	_, err := builder.BuildDocument(nil, builder.Cycle("1+", "2+"))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildDocument(nil, builder.RandomPangenome(10, 2))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildDocument([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomPangenome(2, 0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildDocument(nil, builder.Assign("x", "7+"))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildDocument(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomPangenomeDeterministic(t *testing.T) {
	build := func() int {
		g, problems, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(7), builder.WithAssembly("ref")},
			builder.RandomPangenome(50, 10),
		)
		require.NoError(t, err)
		require.True(t, problems.Empty())
		return g.EdgeCount()
	}
	assert.Equal(t, build(), build())
}

func TestInAssembly(t *testing.T) {
	doc, err := builder.BuildDocument(
		[]builder.BuilderOption{builder.WithAssembly("ref")},
		builder.Chain("1+", "2+"),
		builder.InAssembly("alt", builder.Bubble("1+", "2+", "9+")),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"ref"}, doc.Nodes["1+"].Assemblies)
	assert.Equal(t, []string{"alt"}, doc.Nodes["9+"].Assemblies)

	_, err = builder.BuildDocument(nil, builder.InAssembly("alt", nil))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}
