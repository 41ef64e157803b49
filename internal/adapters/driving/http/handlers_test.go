package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/custodia-labs/textscan/internal/core/domain"
	"github.com/custodia-labs/textscan/internal/core/ports/driven/mocks"
	"github.com/custodia-labs/textscan/internal/core/services"
)

type uploadPart struct {
	name    string
	content string
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, cfg Config) (*Server, *mocks.MockDocumentStore) {
	t.Helper()

	store := mocks.NewMockDocumentStore()
	logger := discardLogger()
	scanner := services.NewScannerService(services.ScannerConfig{Store: store, Logger: logger})
	docService := services.NewDocumentService(store, scanner, logger)

	if cfg.Version == "" {
		cfg.Version = "test"
	}
	cfg.Logger = logger
	return NewServer(cfg, scanner, docService, store), store
}

func seed(t *testing.T, store *mocks.MockDocumentStore, pairs ...string) {
	t.Helper()
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := store.Save(context.Background(), pairs[i], []byte(pairs[i+1])); err != nil {
			t.Fatalf("seed %s: %v", pairs[i], err)
		}
	}
}

func newUploadRequest(t *testing.T, target string, parts ...uploadPart) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, p := range parts {
		fw, err := mw.CreateFormFile(uploadField, p.name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := io.WriteString(fw, p.content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rr.Body.String())
	}
	return v
}

// Health endpoints

func TestHandleHealth(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	rr := serve(s, httptest.NewRequest("GET", "/health", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if resp := decode[map[string]string](t, rr); resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
}

func TestHandleReady(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	rr := serve(s, httptest.NewRequest("GET", "/ready", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if resp := decode[map[string]string](t, rr); resp["status"] != "ready" {
		t.Errorf("expected status ready, got %q", resp["status"])
	}
}

func TestHandleReady_StoreDown(t *testing.T) {
	s, store := newTestServer(t, Config{})
	store.PingErr = errors.New("connection refused")

	rr := serve(s, httptest.NewRequest("GET", "/ready", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rr.Code)
	}
}

func TestHandleVersion(t *testing.T) {
	s, _ := newTestServer(t, Config{Version: "1.2.3"})

	rr := serve(s, httptest.NewRequest("GET", "/version", nil))

	if resp := decode[map[string]string](t, rr); resp["version"] != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %q", resp["version"])
	}
}

// Keyword endpoints

func TestHandleListKeywords(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	rr := serve(s, httptest.NewRequest("GET", "/api/v1/keywords", nil))

	resp := decode[KeywordsResponse](t, rr)
	want := []string{"resume", "job", "experience", "education", "python", "project"}
	if strings.Join(resp.Keywords, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, resp.Keywords)
	}
}

// Document endpoints

func TestHandleListDocuments(t *testing.T) {
	s, store := newTestServer(t, Config{})
	seed(t, store, "b.txt", "x", "notes.md", "y", "a.txt", "z")

	rr := serve(s, httptest.NewRequest("GET", "/api/v1/documents", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	resp := decode[DocumentListResponse](t, rr)
	if strings.Join(resp.Documents, ",") != "b.txt,a.txt" {
		t.Errorf("expected [b.txt a.txt], got %v", resp.Documents)
	}
}

func TestHandleListDocuments_Empty(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	rr := serve(s, httptest.NewRequest("GET", "/api/v1/documents", nil))

	if !strings.Contains(rr.Body.String(), `"documents":[]`) {
		t.Errorf("expected empty documents array, got %s", rr.Body.String())
	}
}

func TestHandleUploadDocuments(t *testing.T) {
	s, store := newTestServer(t, Config{})

	req := newUploadRequest(t, "/api/v1/documents",
		uploadPart{name: "cv.txt", content: "Python developer looking for a JOB"},
		uploadPart{name: "image.png", content: "not text"},
		uploadPart{name: "empty.txt", content: ""},
	)
	rr := serve(s, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	resp := decode[UploadResponse](t, rr)
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}

	cv := resp.Results[0]
	if cv.Name != "cv.txt" || cv.WordCount != 6 {
		t.Errorf("unexpected cv analysis %+v", cv)
	}
	if strings.Join(cv.FoundKeywords, ",") != "job,python" {
		t.Errorf("expected keywords [job python], got %v", cv.FoundKeywords)
	}

	empty := resp.Results[1]
	if empty.Name != "empty.txt" || empty.WordCount != 0 || len(empty.FoundKeywords) != 0 {
		t.Errorf("unexpected empty analysis %+v", empty)
	}

	if store.Len() != 2 {
		t.Errorf("expected 2 stored documents, got %d", store.Len())
	}
}

func TestHandleUploadDocuments_NotMultipart(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	req := httptest.NewRequest("POST", "/api/v1/documents", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	rr := serve(s, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleUploadDocuments_TooLarge(t *testing.T) {
	s, store := newTestServer(t, Config{MaxUploadBytes: 256})

	req := newUploadRequest(t, "/api/v1/documents",
		uploadPart{name: "big.txt", content: strings.Repeat("word ", 1000)},
	)
	rr := serve(s, req)

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status 413, got %d", rr.Code)
	}
	if store.Len() != 0 {
		t.Errorf("expected nothing stored, got %d", store.Len())
	}
}

func TestHandleGetDocument(t *testing.T) {
	s, store := newTestServer(t, Config{})
	content := "line one\r\nline two\xff\n"
	seed(t, store, "raw.txt", content)

	rr := serve(s, httptest.NewRequest("GET", "/api/v1/documents/raw.txt", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if rr.Body.String() != content {
		t.Errorf("expected exact bytes %q, got %q", content, rr.Body.String())
	}
}

func TestHandleGetDocument_NotFound(t *testing.T) {
	s, store := newTestServer(t, Config{})
	seed(t, store, "notes.md", "hidden")

	for _, path := range []string{"/api/v1/documents/missing.txt", "/api/v1/documents/notes.md"} {
		rr := serve(s, httptest.NewRequest("GET", path, nil))
		if rr.Code != http.StatusNotFound {
			t.Errorf("%s: expected status 404, got %d", path, rr.Code)
		}
	}
}

func TestHandleAnalyzeDocument(t *testing.T) {
	s, store := newTestServer(t, Config{})
	seed(t, store, "cv.txt", "Education and experience")

	rr := serve(s, httptest.NewRequest("GET", "/api/v1/documents/cv.txt/analysis", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	resp := decode[domain.AnalysisResult](t, rr)
	if resp.WordCount != 3 {
		t.Errorf("expected 3 words, got %d", resp.WordCount)
	}
	if strings.Join(resp.FoundKeywords, ",") != "experience,education" {
		t.Errorf("expected [experience education], got %v", resp.FoundKeywords)
	}
}

func TestHandleAnalyzeDocument_NotFound(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	rr := serve(s, httptest.NewRequest("GET", "/api/v1/documents/missing.txt/analysis", nil))

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestHandleDeleteDocument(t *testing.T) {
	s, store := newTestServer(t, Config{})
	seed(t, store, "a.txt", "x")

	rr := serve(s, httptest.NewRequest("DELETE", "/api/v1/documents/a.txt", nil))
	if resp := decode[DeleteResponse](t, rr); resp.Status != "deleted" {
		t.Errorf("expected deleted, got %q", resp.Status)
	}

	rr = serve(s, httptest.NewRequest("DELETE", "/api/v1/documents/a.txt", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200 on repeat delete, got %d", rr.Code)
	}
	if resp := decode[DeleteResponse](t, rr); resp.Status != "absent" {
		t.Errorf("expected absent, got %q", resp.Status)
	}
}

// Search endpoints

func searchBody(query, keyword string) io.Reader {
	b, _ := json.Marshal(searchRequest{Query: query, Keyword: keyword})
	return bytes.NewReader(b)
}

func TestHandleSearch(t *testing.T) {
	s, store := newTestServer(t, Config{})
	seed(t, store,
		"a.txt", "I like Python. PYTHON is great",
		"b.txt", "nothing here",
		"c.txt", "python",
	)

	rr := serve(s, httptest.NewRequest("POST", "/api/v1/search", searchBody("python", "")))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	resp := decode[domain.SearchResult](t, rr)
	if resp.TotalCount != 2 || len(resp.Hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", resp.TotalCount)
	}
	if resp.Hits[0].Name != "a.txt" || resp.Hits[1].Name != "c.txt" {
		t.Errorf("expected hits in store order, got %s, %s", resp.Hits[0].Name, resp.Hits[1].Name)
	}
	want := `I like <span class="highlight">Python</span>. <span class="highlight">PYTHON</span> is great`
	if resp.Hits[0].Highlighted != want {
		t.Errorf("expected %q, got %q", want, resp.Hits[0].Highlighted)
	}
}

func TestHandleSearch_Keyword(t *testing.T) {
	s, store := newTestServer(t, Config{})
	seed(t, store, "a.txt", "new Job offer", "b.txt", "python")

	rr := serve(s, httptest.NewRequest("POST", "/api/v1/search", searchBody("", "job")))

	resp := decode[domain.SearchResult](t, rr)
	if resp.Query != "job" || resp.TotalCount != 1 || resp.Hits[0].Name != "a.txt" {
		t.Errorf("unexpected keyword search result %+v", resp)
	}
}

func TestHandleSearch_FreeTextWins(t *testing.T) {
	s, store := newTestServer(t, Config{})
	seed(t, store, "a.txt", "job", "b.txt", "python")

	rr := serve(s, httptest.NewRequest("POST", "/api/v1/search", searchBody("python", "job")))

	resp := decode[domain.SearchResult](t, rr)
	if resp.Query != "python" || resp.TotalCount != 1 || resp.Hits[0].Name != "b.txt" {
		t.Errorf("expected free text to win, got %+v", resp)
	}
}

func TestHandleSearch_UnknownKeyword(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	rr := serve(s, httptest.NewRequest("POST", "/api/v1/search", searchBody("", "golang")))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleSearch_EmptyQuery(t *testing.T) {
	s, store := newTestServer(t, Config{})
	seed(t, store, "a.txt", "anything")

	rr := serve(s, httptest.NewRequest("POST", "/api/v1/search", searchBody("", "")))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if resp := decode[domain.SearchResult](t, rr); resp.TotalCount != 0 {
		t.Errorf("expected no hits, got %d", resp.TotalCount)
	}
}

func TestHandleSearch_InvalidBody(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	rr := serve(s, httptest.NewRequest("POST", "/api/v1/search", strings.NewReader("{")))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleSwaggerDoc(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	rr := serve(s, httptest.NewRequest("GET", "/swagger/doc.json", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &doc); err != nil {
		t.Fatalf("expected valid json, got %v", err)
	}
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		t.Fatal("expected paths object")
	}
	if _, ok := paths["/search"]; !ok {
		t.Error("expected /search path in api docs")
	}
}

func TestServer_RequestIDHeader(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	rr := serve(s, httptest.NewRequest("GET", "/health", nil))

	if rr.Header().Get(RequestIDHeader) == "" {
		t.Error("expected request id header on every response")
	}
}
