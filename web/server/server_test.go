package server

import (
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/image/tiff"
)

func newTestServer() http.Handler {
	return NewServer(0, "../static").Handler()
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, newTestServer(), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Unexpected body %s", rec.Body.String())
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, newTestServer(), "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body struct {
		Scenes []struct {
			ID     string
			Width  int
			Height int
		} `json:"scenes"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(body.Scenes) < 5 {
		t.Fatalf("Expected at least 5 scenes, got %d", len(body.Scenes))
	}
	for _, sc := range body.Scenes {
		if sc.Width <= 0 || sc.Height <= 0 {
			t.Errorf("Scene %s has invalid size %dx%d", sc.ID, sc.Width, sc.Height)
		}
	}
}

func TestHandleRender_PNG(t *testing.T) {
	rec := get(t, newTestServer(), "/api/render?scene=single-sphere&width=8&height=6")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Invalid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("Expected 8x6 image, got %v", b)
	}
}

func TestHandleRender_TIFF(t *testing.T) {
	rec := get(t, newTestServer(), "/api/render?scene=shadow&width=16&height=9&format=tiff")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/tiff" {
		t.Errorf("Expected image/tiff, got %s", ct)
	}
	if _, err := tiff.Decode(rec.Body); err != nil {
		t.Errorf("Invalid TIFF: %v", err)
	}
}

func TestHandleRender_JSON(t *testing.T) {
	rec := get(t, newTestServer(), "/api/render?scene=mirrors&width=12&height=8&format=json&workers=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp RenderResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if resp.Width != 12 || resp.Height != 8 || resp.Stats.TotalPixels != 96 {
		t.Errorf("Unexpected frame info %+v", resp)
	}
	if resp.Stats.ReflectionRays == 0 {
		t.Error("Expected reflection rays in the mirrors scene")
	}
	if len(resp.Console) == 0 {
		t.Error("Expected console messages from the render")
	}

	data, err := base64.StdEncoding.DecodeString(resp.ImageData)
	if err != nil {
		t.Fatalf("Invalid base64: %v", err)
	}
	if _, err := png.Decode(strings.NewReader(string(data))); err != nil {
		t.Errorf("Invalid embedded PNG: %v", err)
	}
}

func TestHandleRender_Samples(t *testing.T) {
	rec := get(t, newTestServer(), "/api/render?scene=default&width=6&height=4&format=json&samples=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp RenderResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if resp.Stats.TotalPixels != 24 || resp.Stats.PrimaryRays != 4*24 {
		t.Errorf("Expected 24 pixels and 96 primary rays, got %+v", resp.Stats)
	}
}

func TestHandleRender_Errors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"unknown scene", "scene=nope", http.StatusNotFound},
		{"width too large", "width=5000&height=10", http.StatusBadRequest},
		{"width without height", "width=10", http.StatusBadRequest},
		{"bad number", "width=abc&height=10", http.StatusBadRequest},
		{"unknown format", "format=gif", http.StatusBadRequest},
		{"depth out of range", "maxDepth=0", http.StatusBadRequest},
		{"samples out of range", "samples=100", http.StatusBadRequest},
	}

	handler := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, handler, "/api/render?"+tt.query)
			if rec.Code != tt.expected {
				t.Errorf("Expected %d, got %d: %s", tt.expected, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	handler := newTestServer()

	rec := get(t, handler, "/api/inspect?scene=single-sphere&width=5&height=5&x=2&y=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if !resp.Hit || resp.GeometryType != "sphere" || resp.PrimitiveIndex != 0 {
		t.Errorf("Expected sphere hit, got %+v", resp)
	}
	if resp.Distance < 3.999 || resp.Distance > 4.001 {
		t.Errorf("Expected distance 4, got %f", resp.Distance)
	}
	geometry, ok := resp.Properties["geometry"].(map[string]interface{})
	if !ok || geometry["radius"] != 1.0 {
		t.Errorf("Expected sphere radius in properties, got %v", resp.Properties)
	}

	rec = get(t, handler, "/api/inspect?scene=single-sphere&width=5&height=5&x=0&y=0")
	resp = InspectResponse{}
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Hit {
		t.Errorf("Expected corner pixel to miss, got %+v", resp)
	}

	for _, query := range []string{"x=1", "x=9&y=0&width=5&height=5", "x=a&y=0"} {
		rec = get(t, handler, "/api/inspect?scene=single-sphere&"+query)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Query %q: expected 400, got %d", query, rec.Code)
		}
	}
}

func TestStaticFiles(t *testing.T) {
	rec := get(t, newTestServer(), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<canvas") {
		t.Error("Expected host page with a canvas")
	}
}
