package retrieval

import (
	"math"
	"sort"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// Index is an immutable, phase-scoped retrieval index. The optimized phase
// rebuilds it with the site skill artifact replaced by the generated skill.
type Index struct {
	chunks []Chunk
	byKey  map[string]struct{} // "source\x00hash" for citation integrity checks
}

// Scored pairs a chunk with its query score.
type Scored struct {
	Chunk Chunk
	Score float64
}

// BuildIndex chunks every artifact and assembles the index.
func BuildIndex(artifacts []models.Artifact) *Index {
	idx := &Index{byKey: make(map[string]struct{})}
	for _, a := range artifacts {
		for _, c := range ChunkArtifact(a) {
			idx.chunks = append(idx.chunks, c)
			idx.byKey[chunkKey(c.SourceURL, c.SnippetHash)] = struct{}{}
		}
	}
	return idx
}

// Size returns the number of chunks in the index.
func (idx *Index) Size() int { return len(idx.chunks) }

// Contains reports whether (source, snippetHash) identifies an indexed chunk.
func (idx *Index) Contains(source, snippetHash string) bool {
	_, ok := idx.byKey[chunkKey(source, snippetHash)]
	return ok
}

// TopK scores every chunk against the query and returns the K best.
// Ties break on lexicographic (sourceUrl, snippetHash) so two invocations
// with identical inputs return identical sequences.
func (idx *Index) TopK(query string, k int) []Scored {
	queryTokens := tokenSet(query)

	scored := make([]Scored, 0, len(idx.chunks))
	for _, c := range idx.chunks {
		s := score(queryTokens, c)
		if s > 0 {
			scored = append(scored, Scored{Chunk: c, Score: s})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Chunk.SourceURL != scored[j].Chunk.SourceURL {
			return scored[i].Chunk.SourceURL < scored[j].Chunk.SourceURL
		}
		return scored[i].Chunk.SnippetHash < scored[j].Chunk.SnippetHash
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

// score is |queryTokens ∩ chunkTokens| / sqrt(|chunkTokens|).
func score(queryTokens map[string]struct{}, c Chunk) float64 {
	if len(c.tokens) == 0 {
		return 0
	}
	overlap := 0
	for t := range queryTokens {
		if _, ok := c.tokens[t]; ok {
			overlap++
		}
	}
	if overlap == 0 {
		return 0
	}
	return float64(overlap) / math.Sqrt(float64(len(c.tokens)))
}

func chunkKey(source, hash string) string {
	return source + "\x00" + hash
}
