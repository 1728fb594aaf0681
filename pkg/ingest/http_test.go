package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

func newDocsServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><head><title>Acme Docs</title><style>body{}</style></head>
			<body><h1>Acme Docs</h1><p>Create an API key in the dashboard.</p>
			<a href="/guide">Guide</a>
			<a href="/guide">Guide again</a>
			<a href="https://elsewhere.example/offsite">Offsite</a>
			<script>ignored()</script></body></html>`))
	})
	mux.HandleFunc("/guide", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h2>Guide</h2><p>Send the key in the Authorization header.</p></body></html>`))
	})
	mux.HandleFunc("/llms.txt", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# Acme\n\nLLM-friendly index."))
	})
	mux.HandleFunc("/skill.md", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# Purpose\n\nHelp agents use Acme."))
	})
	return httptest.NewServer(mux)
}

func artifactTypes(artifacts []models.Artifact) []string {
	out := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		out = append(out, a.ArtifactType)
	}
	return out
}

func TestHTTPIngestor(t *testing.T) {
	server := newDocsServer(t)
	defer server.Close()

	result, err := NewHTTPIngestor().Ingest(context.Background(), server.URL, Options{MaxPages: 5})
	require.NoError(t, err)

	assert.Equal(t, server.URL+"/", result.NormalizedDocsURL)
	assert.Equal(t, []string{
		models.ArtifactTypePage, models.ArtifactTypeLlmsTxt, models.ArtifactTypeSkill, models.ArtifactTypePage,
	}, artifactTypes(result.Artifacts))
	assert.Contains(t, result.LlmsText, "LLM-friendly")
	assert.Contains(t, result.SkillText, "# Purpose")
	assert.Empty(t, result.LlmsFullText)

	// Base page text is stripped HTML without script or style content.
	base := result.Artifacts[0]
	assert.Contains(t, base.Content, "Create an API key")
	assert.NotContains(t, base.Content, "ignored()")
	assert.NotEmpty(t, base.ContentHash)

	// Offsite and duplicate links are not discovered.
	require.Equal(t, []string{server.URL + "/guide"}, result.DiscoveredPages)
	assert.Contains(t, result.Artifacts[3].Content, "Authorization header")
}

func TestHTTPIngestor_MaxPagesZeroDiscovery(t *testing.T) {
	server := newDocsServer(t)
	defer server.Close()

	result, err := NewHTTPIngestor().Ingest(context.Background(), server.URL, Options{MaxPages: -1})
	require.NoError(t, err)
	// Negative falls back to the default, which still fetches /guide.
	assert.Len(t, result.DiscoveredPages, 1)
}

func TestHTTPIngestor_BaseFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewHTTPIngestor().Ingest(context.Background(), server.URL, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch docs url")
}

func TestNormalizeDocsURL(t *testing.T) {
	u, err := normalizeDocsURL("Docs.Acme.DEV/guide?utm=1#section")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.acme.dev/guide", u.String())

	_, err = normalizeDocsURL("://nope")
	assert.Error(t, err)
}

func TestExtractHTML_PlainTextPassthrough(t *testing.T) {
	base, _ := url.Parse("https://docs.acme.dev/")
	text, links := extractHTML("plain markdown, no markup", base)
	assert.Equal(t, "plain markdown, no markup", text)
	assert.Empty(t, links)
}

func TestExtractHTML_RelativeLinks(t *testing.T) {
	base, _ := url.Parse("https://docs.acme.dev/start/")
	text, links := extractHTML(`<html><body><p>hello</p><a href="../api">API</a></body></html>`, base)
	assert.True(t, strings.Contains(text, "hello"))
	assert.Equal(t, []string{"https://docs.acme.dev/api"}, links)
}
