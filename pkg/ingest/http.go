package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// maxBodyBytes caps a single fetched document.
const maxBodyBytes = 2 << 20

// Convention files probed relative to the normalized docs URL.
var conventionFiles = []struct {
	path         string
	artifactType string
}{
	{"llms.txt", models.ArtifactTypeLlmsTxt},
	{"llms-full.txt", models.ArtifactTypeLlmsFull},
	{"skill.md", models.ArtifactTypeSkill},
}

// HTTPIngestor fetches documentation over HTTP.
type HTTPIngestor struct {
	client *http.Client
}

// NewHTTPIngestor creates an ingestor with a bounded-timeout client.
func NewHTTPIngestor() *HTTPIngestor {
	return &HTTPIngestor{client: &http.Client{Timeout: 30 * time.Second}}
}

// Ingest implements Ingestor. The base page and reachable convention files
// always become artifacts; same-host links found on the base page are
// fetched up to opts.MaxPages. Individual page failures are logged and
// skipped; only an unreachable base URL fails the ingestion.
func (i *HTTPIngestor) Ingest(ctx context.Context, docsURL string, opts Options) (*models.IngestResult, error) {
	base, err := normalizeDocsURL(docsURL)
	if err != nil {
		return nil, err
	}
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	result := &models.IngestResult{NormalizedDocsURL: base.String()}

	baseBody, err := i.fetch(ctx, base.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch docs url %s: %w", base, err)
	}
	baseText, links := extractHTML(baseBody, base)
	result.Artifacts = append(result.Artifacts, newArtifact(models.ArtifactTypePage, base.String(), baseText))

	for _, cf := range conventionFiles {
		u := base.JoinPath(cf.path).String()
		body, err := i.fetch(ctx, u)
		if err != nil {
			slog.Debug("Convention file not available", "url", u, "error", err)
			continue
		}
		result.Artifacts = append(result.Artifacts, newArtifact(cf.artifactType, u, body))
		switch cf.artifactType {
		case models.ArtifactTypeLlmsTxt:
			result.LlmsText = body
		case models.ArtifactTypeLlmsFull:
			result.LlmsFullText = body
		case models.ArtifactTypeSkill:
			result.SkillText = body
		}
	}

	for _, link := range links {
		if len(result.DiscoveredPages) >= maxPages {
			break
		}
		body, err := i.fetch(ctx, link)
		if err != nil {
			slog.Warn("Failed to fetch discovered page", "url", link, "error", err)
			continue
		}
		text, _ := extractHTML(body, base)
		if strings.TrimSpace(text) == "" {
			continue
		}
		result.Artifacts = append(result.Artifacts, newArtifact(models.ArtifactTypePage, link, text))
		result.DiscoveredPages = append(result.DiscoveredPages, link)
	}

	slog.Info("Ingestion complete",
		"docs_url", result.NormalizedDocsURL,
		"artifacts", len(result.Artifacts),
		"discovered_pages", len(result.DiscoveredPages),
		"has_skill", result.SkillText != "")
	return result, nil
}

func (i *HTTPIngestor) fetch(ctx context.Context, u string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "mintaborate/1.0 (+docs evaluation)")

	resp, err := i.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// normalizeDocsURL forces a scheme, lowercases the host, and strips
// query/fragment so artifact keys are stable.
func normalizeDocsURL(raw string) (*url.URL, error) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid docs url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid docs url %q: missing host", raw)
	}
	u.Host = strings.ToLower(u.Host)
	u.RawQuery = ""
	u.Fragment = ""
	if u.Path == "" {
		u.Path = "/"
	}
	return u, nil
}

// extractHTML strips a document to visible text and collects unique
// same-host links. Non-HTML input comes back unchanged with no links.
func extractHTML(body string, base *url.URL) (string, []string) {
	if !strings.Contains(body, "<") {
		return body, nil
	}
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return body, nil
	}

	var text strings.Builder
	var links []string
	seen := map[string]struct{}{base.String(): {}}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "nav", "footer":
				return
			case "a":
				if link, ok := sameHostLink(n, base); ok {
					if _, dup := seen[link]; !dup {
						seen[link] = struct{}{}
						links = append(links, link)
					}
				}
			}
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				text.WriteString(t)
				text.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "section", "article", "li", "h1", "h2", "h3", "h4", "pre", "table":
				text.WriteString("\n")
			}
		}
	}
	walk(root)

	return strings.TrimSpace(text.String()), links
}

func sameHostLink(n *html.Node, base *url.URL) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key != "href" {
			continue
		}
		href, err := url.Parse(strings.TrimSpace(attr.Val))
		if err != nil {
			return "", false
		}
		resolved := base.ResolveReference(href)
		if resolved.Host != base.Host || (resolved.Scheme != "http" && resolved.Scheme != "https") {
			return "", false
		}
		resolved.Fragment = ""
		resolved.RawQuery = ""
		return resolved.String(), true
	}
	return "", false
}

func newArtifact(artifactType, sourceURL, content string) models.Artifact {
	sum := sha256.Sum256([]byte(content))
	return models.Artifact{
		ArtifactType: artifactType,
		SourceURL:    sourceURL,
		Content:      content,
		ContentHash:  hex.EncodeToString(sum[:]),
	}
}
