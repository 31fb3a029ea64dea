package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hitchmap/internal/api/handlers"
	"hitchmap/internal/config"
	eng "hitchmap/internal/engine"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewDefaultConfig()
	worker := eng.NewWorker(cfg, nil)
	t.Cleanup(worker.Close)

	queryHandler := handlers.NewQueryHandler(worker)
	router := NewRouter(queryHandler, nil)

	engine := gin.New()
	router.Setup(engine)
	return engine
}

func postQuery(t *testing.T, engine *gin.Engine, body string) (int, map[string]any) {
	t.Helper()

	req, _ := http.NewRequest("POST", "/query", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return w.Code, decoded
}

func TestHealthEndpoint(t *testing.T) {
	engine := setupTestServer(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestQueryEndpoint_FilterRoundTrip(t *testing.T) {
	engine := setupTestServer(t)

	body := `{
		"type": "filter",
		"id": "http-1",
		"spots": [
			{"id": "paris", "lat": 48.8566, "lng": 2.3522, "country": "France", "countryCode": "FR"},
			{"id": "berlin", "coordinates": {"lat": 52.52, "lng": 13.405}, "country": "Germany", "countryCode": "DE"},
			{"id": "lyon", "lat": 45.764, "lng": 4.8357, "country": "France", "countryCode": "FR"}
		],
		"filters": {"country": "fr"}
	}`

	code, resp := postQuery(t, engine, body)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	if resp["id"] != "http-1" || resp["type"] != "filter" {
		t.Errorf("envelope not echoed: %v", resp)
	}
	if resp["count"] != float64(2) {
		t.Errorf("count = %v, want 2", resp["count"])
	}
	if _, ok := resp["duration"].(float64); !ok {
		t.Errorf("duration missing or not numeric: %v", resp["duration"])
	}

	results, ok := resp["results"].([]any)
	if !ok || len(results) != 2 {
		t.Fatalf("results = %v, want 2 spots", resp["results"])
	}
	first := results[0].(map[string]any)
	if first["id"] != "paris" {
		t.Errorf("first result = %v, want paris", first["id"])
	}
}

func TestQueryEndpoint_AssignsCorrelationID(t *testing.T) {
	engine := setupTestServer(t)

	code, resp := postQuery(t, engine, `{"type": "haversine", "from": {"lat": 0, "lng": 0}, "to": {"lat": 0, "lng": 1}}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	id, ok := resp["id"].(string)
	if !ok || id == "" {
		t.Errorf("a correlation id should be assigned when absent, got %v", resp["id"])
	}
}

func TestQueryEndpoint_UnknownOperation(t *testing.T) {
	engine := setupTestServer(t)

	code, resp := postQuery(t, engine, `{"type": "bogus", "id": "http-2"}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (degraded result, not an HTTP fault)", code)
	}

	results, ok := resp["results"].(map[string]any)
	if !ok || results["error"] != "Unknown operation: bogus" {
		t.Errorf("results = %v, want error descriptor", resp["results"])
	}
	if _, present := resp["count"]; present {
		t.Error("count should be omitted for error results")
	}

	// The same server keeps serving well-formed requests afterward.
	code, resp = postQuery(t, engine, `{"type": "sort", "id": "http-3", "spots": [{"id": "a"}]}`)
	if code != http.StatusOK || resp["count"] != float64(1) {
		t.Errorf("server did not recover after unknown op: code=%d resp=%v", code, resp)
	}
}

func TestQueryEndpoint_MalformedJSON(t *testing.T) {
	engine := setupTestServer(t)

	code, _ := postQuery(t, engine, `{not json`)
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}
