// Package retrieval builds a phase-scoped chunk index over ingested
// artifacts and answers deterministic top-K queries against it.
package retrieval

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// maxChunkChars bounds a chunk: paragraphs accumulate until the next one
// would push the accumulation past this size.
const maxChunkChars = 1200

// Chunk is a paragraph-aligned slice of one artifact.
type Chunk struct {
	SourceURL   string
	SnippetHash string
	Text        string
	tokens      map[string]struct{}
}

// SnippetHash returns the chunk identity hash for a piece of text:
// the first 16 hex characters of its SHA-256.
func SnippetHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:16]
}

// ChunkArtifact splits an artifact into chunks by blank-line paragraphs.
// An artifact with content that yields no chunks produces a single
// truncated chunk so every non-empty document is retrievable.
func ChunkArtifact(a models.Artifact) []Chunk {
	paragraphs := splitParagraphs(a.Content)

	var chunks []Chunk
	var acc []string
	accLen := 0
	flush := func() {
		if accLen == 0 {
			return
		}
		text := strings.Join(acc, "\n\n")
		chunks = append(chunks, newChunk(a.SourceURL, text))
		acc = acc[:0]
		accLen = 0
	}

	for _, p := range paragraphs {
		if accLen > 0 && accLen+len(p) > maxChunkChars {
			flush()
		}
		acc = append(acc, p)
		accLen += len(p)
	}
	flush()

	if len(chunks) == 0 && strings.TrimSpace(a.Content) != "" {
		text := a.Content
		if len(text) > maxChunkChars {
			text = text[:maxChunkChars]
		}
		chunks = append(chunks, newChunk(a.SourceURL, text))
	}
	return chunks
}

func newChunk(sourceURL, text string) Chunk {
	return Chunk{
		SourceURL:   sourceURL,
		SnippetHash: SnippetHash(text),
		Text:        text,
		tokens:      tokenSet(text),
	}
}

func splitParagraphs(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// tokenSet lowercases, strips non-alphanumeric runes, and drops tokens
// shorter than 3 characters.
func tokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// Tokenize implements the shared query/chunk tokenizer.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) >= 3 {
			out = append(out, f)
		}
	}
	return out
}
