package assessments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewService(NewMemoryRepo(), testCatalog())
	handler := NewHandler(svc)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router, svc
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, resp.Body.String())
	}
}

func TestAssessmentLifecycleOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/assessments", map[string]any{
		"name":        "Diagnostic 2026",
		"departments": []string{"D1"},
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", resp.Code, resp.Body.String())
	}
	var created Assessment
	decodeBody(t, resp, &created)
	if created.ID == "" {
		t.Fatal("created assessment has no id")
	}

	resp = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/assessments/%s/responses", created.ID), map[string]any{
		"questionId":   "qa1",
		"departmentId": "D1",
		"value":        1,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("response upsert: status %d, body %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/assessments/%s/scorecard", created.ID), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("scorecard: status %d, body %s", resp.Code, resp.Body.String())
	}
	var scorecard struct {
		Global   float64 `json:"global"`
		Maturity string  `json:"maturity"`
	}
	decodeBody(t, resp, &scorecard)
	if scorecard.Global != 20 {
		t.Fatalf("global = %v, want 20", scorecard.Global)
	}
	if scorecard.Maturity != "Initial" {
		t.Fatalf("maturity = %q, want Initial", scorecard.Maturity)
	}

	resp = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/assessments/%s/plan", created.ID), nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("plan: status %d, body %s", resp.Code, resp.Body.String())
	}
	var generated struct {
		Items []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"items"`
	}
	decodeBody(t, resp, &generated)
	if len(generated.Items) == 0 {
		t.Fatal("generated plan has no items")
	}

	itemID := generated.Items[0].ID
	resp = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/assessments/%s/plan/items/%s", created.ID, itemID), map[string]any{
		"status": "DONE",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("close without justification: status %d, want 400", resp.Code)
	}
	var failure struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, resp, &failure)
	if failure.Error.Code != "justification_required" {
		t.Fatalf("error code = %q, want justification_required", failure.Error.Code)
	}

	resp = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/assessments/%s/plan/items/%s", created.ID, itemID), map[string]any{
		"status":        "DONE",
		"justification": "Validé en comité de pilotage.",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("close with justification: status %d, body %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/assessments/%s/plan/summary", created.ID), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("summary: status %d, body %s", resp.Code, resp.Body.String())
	}
	var summary struct {
		ExecutiveSummary string `json:"executiveSummary"`
	}
	decodeBody(t, resp, &summary)
	if summary.ExecutiveSummary == "" {
		t.Fatal("empty executive summary")
	}

	resp = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/assessments/%s/history", created.ID), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("history: status %d, body %s", resp.Code, resp.Body.String())
	}
	var history struct {
		History []ScoreHistoryEntry `json:"history"`
	}
	decodeBody(t, resp, &history)
	if len(history.History) != 1 {
		t.Fatalf("len(history) = %d, want 1", len(history.History))
	}
}

func TestGetAssessmentNotFoundEnvelope(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/assessments/does-not-exist", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
	var failure struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, resp, &failure)
	if failure.Error.Code != "not_found" {
		t.Fatalf("error code = %q, want not_found", failure.Error.Code)
	}
}

func TestCreateAssessmentValidationEnvelope(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/assessments", map[string]any{
		"name":        "Diagnostic",
		"departments": []string{},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
	var failure struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, resp, &failure)
	if failure.Error.Code != "validation_error" {
		t.Fatalf("error code = %q, want validation_error", failure.Error.Code)
	}
}

func TestSuggestionsEndpointRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/assessments", map[string]any{
		"name":        "Diagnostic",
		"departments": []string{"D1"},
	})
	var created Assessment
	decodeBody(t, resp, &created)

	doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/assessments/%s/responses", created.ID), map[string]any{
		"questionId":   "qa1",
		"departmentId": "D1",
		"value":        1,
	})
	doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/assessments/%s/plan", created.ID), nil)

	resp = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/assessments/%s/plan/suggestions", created.ID), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("suggestions: status %d, body %s", resp.Code, resp.Body.String())
	}
	var listed struct {
		Suggestions []struct {
			ID      string `json:"id"`
			Horizon string `json:"horizon"`
		} `json:"suggestions"`
	}
	decodeBody(t, resp, &listed)
	if len(listed.Suggestions) == 0 {
		t.Fatal("no suggestions returned")
	}
	if listed.Suggestions[0].Horizon != "0-90j" {
		t.Fatalf("horizon = %q, want 0-90j for a category under 40%%", listed.Suggestions[0].Horizon)
	}

	resp = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/assessments/%s/plan/suggestions/accept", created.ID), map[string]any{
		"suggestionIds": []string{listed.Suggestions[0].ID},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("accept: status %d, body %s", resp.Code, resp.Body.String())
	}
	var merged struct {
		Items       []struct{ ID string } `json:"items"`
		Suggestions []struct{ ID string } `json:"suggestions"`
	}
	decodeBody(t, resp, &merged)
	if len(merged.Suggestions) != 0 {
		t.Fatalf("suggestions remaining = %d, want 0", len(merged.Suggestions))
	}
}
