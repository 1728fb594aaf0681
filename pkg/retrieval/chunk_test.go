package retrieval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

func pageArtifact(content string) models.Artifact {
	return models.Artifact{
		ArtifactType: models.ArtifactTypePage,
		SourceURL:    "https://docs.acme.dev/guide",
		Content:      content,
	}
}

func TestChunkArtifact_AccumulatesParagraphsIntoOneChunk(t *testing.T) {
	content := "Authenticate by creating an API key in the dashboard.\n\n" +
		"Send the key in the Authorization header on every request."

	chunks := ChunkArtifact(pageArtifact(content))
	require.Len(t, chunks, 1)
	assert.Equal(t, content, chunks[0].Text)
	assert.Equal(t, SnippetHash(content), chunks[0].SnippetHash)
	assert.Equal(t, "https://docs.acme.dev/guide", chunks[0].SourceURL)
}

func TestChunkArtifact_SplitsWhenParagraphWouldOverflow(t *testing.T) {
	first := strings.Repeat("alpha ", 120)  // ~720 chars
	second := strings.Repeat("bravo ", 120) // ~720 chars, would overflow
	third := "charlie delta"                // small, joins the second chunk

	chunks := ChunkArtifact(pageArtifact(first + "\n\n" + second + "\n\n" + third))
	require.Len(t, chunks, 2)
	assert.Equal(t, strings.TrimSpace(first), chunks[0].Text)
	assert.Equal(t, strings.TrimSpace(second)+"\n\n"+third, chunks[1].Text)
	assert.NotEqual(t, chunks[0].SnippetHash, chunks[1].SnippetHash)
}

func TestChunkArtifact_OversizedParagraphStaysWhole(t *testing.T) {
	// A single paragraph over the limit is never split mid-sentence.
	paragraph := strings.TrimSpace(strings.Repeat("echo foxtrot ", 200))

	chunks := ChunkArtifact(pageArtifact(paragraph))
	require.Len(t, chunks, 1)
	assert.Equal(t, paragraph, chunks[0].Text)
}

func TestChunkArtifact_NormalizesCRLFAndBlankRuns(t *testing.T) {
	chunks := ChunkArtifact(pageArtifact("first paragraph\r\n\r\nsecond paragraph\n\n\n\n"))
	require.Len(t, chunks, 1)
	assert.Equal(t, "first paragraph\n\nsecond paragraph", chunks[0].Text)
}

func TestChunkArtifact_EmptyContent(t *testing.T) {
	assert.Empty(t, ChunkArtifact(pageArtifact("")))
	assert.Empty(t, ChunkArtifact(pageArtifact("   \n\n  ")))
}

func TestSnippetHash(t *testing.T) {
	h := SnippetHash("Authenticate by creating an API key.")
	assert.Len(t, h, 16)
	assert.Regexp(t, "^[0-9a-f]{16}$", h)

	// Identity is content-derived and collision-distinct for distinct text.
	assert.Equal(t, h, SnippetHash("Authenticate by creating an API key."))
	assert.NotEqual(t, h, SnippetHash("Authenticate by creating an API key"))
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Send the API-Key in the `Authorization` header, v2!")
	assert.Equal(t, []string{"send", "the", "api", "key", "the", "authorization", "header"}, tokens)
}
