package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

func testIndex() *Index {
	return BuildIndex([]models.Artifact{
		{
			ArtifactType: models.ArtifactTypePage,
			SourceURL:    "https://docs.acme.dev/auth",
			Content:      "Authenticate by creating an API key in the dashboard.",
		},
		{
			ArtifactType: models.ArtifactTypePage,
			SourceURL:    "https://docs.acme.dev/quickstart",
			Content:      "Install the CLI and run the quickstart command.",
		},
	})
}

func TestIndex_ContainsIndexedChunks(t *testing.T) {
	idx := testIndex()
	assert.Equal(t, 2, idx.Size())

	hash := SnippetHash("Authenticate by creating an API key in the dashboard.")
	assert.True(t, idx.Contains("https://docs.acme.dev/auth", hash))

	// Hash and source must match the same chunk.
	assert.False(t, idx.Contains("https://docs.acme.dev/quickstart", hash))
	assert.False(t, idx.Contains("https://docs.acme.dev/auth", SnippetHash("other text")))
}

func TestIndex_TopKRanksByOverlap(t *testing.T) {
	idx := testIndex()

	scored := idx.TopK("create an API key to authenticate", 10)
	require.NotEmpty(t, scored)
	assert.Equal(t, "https://docs.acme.dev/auth", scored[0].Chunk.SourceURL)
	assert.Greater(t, scored[0].Score, 0.0)

	// Chunks sharing no query token are not returned at all.
	assert.Empty(t, idx.TopK("zebra xylophone", 10))
}

func TestIndex_TopKHonorsK(t *testing.T) {
	idx := testIndex()
	scored := idx.TopK("the", 1)
	assert.LessOrEqual(t, len(scored), 1)
}

func TestIndex_TopKDeterministicTieBreak(t *testing.T) {
	// Identical content under different sources scores identically; ties
	// break on (sourceUrl, snippetHash) so repeated queries agree.
	idx := BuildIndex([]models.Artifact{
		{SourceURL: "https://docs.acme.dev/b", Content: "Rotate your API key monthly."},
		{SourceURL: "https://docs.acme.dev/a", Content: "Rotate your API key monthly."},
	})

	first := idx.TopK("rotate api key", 2)
	require.Len(t, first, 2)
	assert.Equal(t, "https://docs.acme.dev/a", first[0].Chunk.SourceURL)
	assert.Equal(t, "https://docs.acme.dev/b", first[1].Chunk.SourceURL)

	second := idx.TopK("rotate api key", 2)
	assert.Equal(t, first, second)
}
