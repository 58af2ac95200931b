package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("unexpected auth header: %s", r.Header.Get("Authorization"))
		}

		var req SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Prompt != "training pod" {
			t.Errorf("prompt = %q", req.Prompt)
		}
		if req.K != 5 {
			t.Errorf("k = %d, want 5", req.K)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SearchResponse{Results: []Result{
			{URL: "https://example.com/a", Abstract: "AI training pod", Score: 0.9, GuideType: "design_guide"},
		}})
	}))
	defer server.Close()

	client := New(server.URL, WithAPIKey("secret"))

	resp, err := client.Search(context.Background(), SearchRequest{Prompt: "training pod", K: 5})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(resp.Results))
	}
	if resp.Results[0].URL != "https://example.com/a" {
		t.Errorf("URL = %q", resp.Results[0].URL)
	}
	if resp.Results[0].Score != 0.9 {
		t.Errorf("Score = %f", resp.Results[0].Score)
	}
}

func TestClient_Search_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "validation_failed",
			"message": "query text is required",
		})
	}))
	defer server.Close()

	client := New(server.URL)

	_, err := client.Search(context.Background(), SearchRequest{Prompt: ""})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Code != "validation_failed" {
		t.Errorf("Code = %q", apiErr.Code)
	}
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status": "ok",
			"checks": map[string]string{"vector_store": "ok"},
		})
	}))
	defer server.Close()

	client := New(server.URL)

	status, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if status != "ok" {
		t.Errorf("status = %q, want ok", status)
	}
}
