package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhiyaancnirmal/mintaborate/pkg/costing"
	"github.com/dhiyaancnirmal/mintaborate/pkg/events"
	"github.com/dhiyaancnirmal/mintaborate/pkg/ingest"
	"github.com/dhiyaancnirmal/mintaborate/pkg/llm/llmtest"
	"github.com/dhiyaancnirmal/mintaborate/pkg/metrics"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/orchestrator"
	"github.com/dhiyaancnirmal/mintaborate/pkg/retrieval"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

const apiDocText = "Authenticate by creating an API key in the dashboard."

type stubIngestor struct{}

func (stubIngestor) Ingest(_ context.Context, _ string, _ ingest.Options) (*models.IngestResult, error) {
	return &models.IngestResult{
		NormalizedDocsURL: "https://docs.acme.dev/",
		Artifacts: []models.Artifact{{
			ArtifactType: models.ArtifactTypePage,
			SourceURL:    "https://docs.acme.dev/",
			Content:      apiDocText,
		}},
	}, nil
}

type apiFixture struct {
	store  *store.MemoryStore
	client *llmtest.Client
	orch   *orchestrator.Orchestrator
	server *Server
	router *gin.Engine
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	client := llmtest.NewClient()
	hub := events.NewHub()
	publisher := events.NewPublisher(st, hub, nil)
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	orch := orchestrator.New(st, publisher, client, stubIngestor{}, costing.Default(), m)
	server := NewServer(orch, events.NewStreamer(st, hub), nil, registry)
	return &apiFixture{
		store:  st,
		client: client,
		orch:   orch,
		server: server,
		router: server.Router(),
	}
}

// scriptPassingTask scripts one single-iteration task and a passing judge
// verdict against the fixture's single artifact.
func (f *apiFixture) scriptPassingTask() {
	hash := retrieval.SnippetHash(apiDocText)
	f.client.AddRouted("agent_plan", llmtest.Entry{Text: `{"planItems": ["read the docs"]}`})
	f.client.AddRouted("agent_act", llmtest.Entry{Text: `{
		"answer": "Create an API key and send it in the Authorization header.",
		"stepOutput": "Read the auth docs.",
		"citations": [{"source": "https://docs.acme.dev/", "snippetHash": "` + hash + `", "excerpt": "creating an API key"}],
		"done": true
	}`})
	f.client.AddRouted("agent_reflect", llmtest.Entry{Text: `{"shouldContinue": false, "summary": "done", "confidence": 0.9}`})
	f.client.AddRouted("judge_alignment", llmtest.Entry{Text: `{"isSupportedByEvidence": true, "unsupportedClaims": []}`})
	f.client.AddRouted("judge_rubric", llmtest.Entry{Text: `{
		"scores": {"completeness": 9, "correctness": 9, "groundedness": 9, "actionability": 9},
		"rationale": "grounded", "confidence": 0.9
	}`})
}

func (f *apiFixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestCreateRun(t *testing.T) {
	f := newAPIFixture(t)
	f.scriptPassingTask()

	rec := f.do(http.MethodPost, "/api/runs", `{"docsUrl": "https://docs.acme.dev", "taskCount": 1, "workers": {"workerCount": 1}}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"queued"`)

	f.orch.Wait()
}

func TestCreateRun_ValidationError(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/runs", `{"taskCount": 1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"docsUrl"`)
}

func TestCreateRun_MalformedBody(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/runs", `{"docsUrl": 42}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRun_NotFound(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(http.MethodGet, "/api/runs/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRuns(t *testing.T) {
	f := newAPIFixture(t)
	require.NoError(t, f.store.CreateRun(context.Background(), &models.Run{
		ID:     "run-1",
		Status: models.RunStatusQueued,
	}))

	rec := f.do(http.MethodGet, "/api/runs?limit=10", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"run-1"`)
}

func TestCancelRun(t *testing.T) {
	f := newAPIFixture(t)
	require.NoError(t, f.store.CreateRun(context.Background(), &models.Run{
		ID:     "run-1",
		Status: models.RunStatusRunning,
	}))

	rec := f.do(http.MethodPost, "/api/runs/run-1/cancel", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	// A second cancel conflicts: the run is already terminal.
	rec = f.do(http.MethodPost, "/api/runs/run-1/cancel", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHealthz_MemoryStore(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"memory"`)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mintaborate_runs_started_total")
}

func TestStreamEvents_ReplaysThroughTerminal(t *testing.T) {
	ctx := context.Background()
	f := newAPIFixture(t)
	f.scriptPassingTask()

	rec := f.do(http.MethodPost, "/api/runs", `{"docsUrl": "https://docs.acme.dev", "taskCount": 1, "workers": {"workerCount": 1}}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	f.orch.Wait()

	runs, err := f.store.ListRuns(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	runID := runs[0].ID
	require.Equal(t, models.RunStatusCompleted, runs[0].Status)

	ts := httptest.NewServer(f.router)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/runs/" + runID + "/events"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	var got []models.RunEvent
	for {
		var event models.RunEvent
		require.NoError(t, wsjson.Read(ctx, conn, &event))
		got = append(got, event)
		if models.IsTerminalEvent(event.EventType) {
			break
		}
	}
	require.NotEmpty(t, got)
	assert.Equal(t, models.EventRunQueued, got[0].EventType)
	assert.Equal(t, models.EventRunCompleted, got[len(got)-1].EventType)
	for i, e := range got {
		assert.Equal(t, i+1, e.Seq)
	}
}

func TestStreamEvents_UnknownRun(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(http.MethodGet, "/api/runs/missing/events", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
