package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/custodia-labs/textscan/internal/core/domain"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{
			"pathEscape": url.PathEscape,
			"join":       strings.Join,
		}).
		ParseFS(templateFS, "templates/index.html"),
)

// indexPage is the view model of the web UI
type indexPage struct {
	Documents []string
	Results   []*domain.AnalysisResult
	Keywords  []string
	Query     string
	Searched  bool
	Hits      []previewHit
	Error     string
}

// previewHit is a search hit with its escaped, highlighted preview
type previewHit struct {
	Name    string
	Preview template.HTML
}

// handleIndex renders the upload form, the document list and, when a
// search or keyword parameter is present, the search results.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderIndex(w, r, nil)
}

// handleIndexUpload stores the uploaded files and renders their analyses
func (s *Server) handleIndexUpload(w http.ResponseWriter, r *http.Request) {
	files, err := s.readUploads(w, r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}

	results, err := s.docService.Upload(r.Context(), files)
	if err != nil {
		s.logger.Error("upload failed", "error", err)
		http.Error(w, "failed to store documents", http.StatusInternalServerError)
		return
	}

	s.renderIndex(w, r, results)
}

// handleDownload serves a stored document to the browser
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	s.serveDocument(w, r, false)
}

// handleDeletePage deletes a document and returns to the index page.
// Absent documents are ignored.
func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if _, err := s.docService.Delete(r.Context(), name); err != nil {
		s.logger.Error("delete document failed", "name", name, "error", err)
		http.Error(w, "failed to delete document", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) renderIndex(w http.ResponseWriter, r *http.Request, results []*domain.AnalysisResult) {
	ctx := r.Context()
	status := http.StatusOK

	page := indexPage{
		Results:  results,
		Keywords: s.scanner.Keywords().List(),
	}

	params := r.URL.Query()
	query, err := s.scanner.ResolveQuery(params.Get("search"), params.Get("keyword"))
	switch {
	case err != nil:
		page.Error = "Unknown keyword: " + params.Get("keyword")
		status = http.StatusBadRequest
	case query != "":
		result, err := s.scanner.SearchCollection(ctx, query)
		if err != nil {
			s.logger.Error("search failed", "query", query, "error", err)
			http.Error(w, "search failed", http.StatusInternalServerError)
			return
		}
		page.Query = query
		page.Searched = true
		page.Hits = previewHits(result, domain.DefaultHighlighter())
	}

	names, err := s.docService.List(ctx)
	if err != nil {
		s.logger.Error("list documents failed", "error", err)
		http.Error(w, "failed to list documents", http.StatusInternalServerError)
		return
	}
	page.Documents = names

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		s.logger.Error("render index failed", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func previewHits(result *domain.SearchResult, hl domain.Highlighter) []previewHit {
	hits := make([]previewHit, 0, len(result.Hits))
	for _, hit := range result.Hits {
		hits = append(hits, previewHit{
			Name:    hit.Name,
			Preview: highlightHTML(hit.Content, hit.Matches, hl),
		})
	}
	return hits
}

// highlightHTML escapes text and wraps each span with the highlighter's
// markers. Only the markers are emitted unescaped.
func highlightHTML(text string, spans []domain.Span, hl domain.Highlighter) template.HTML {
	var b strings.Builder
	last := 0
	for _, sp := range spans {
		b.WriteString(template.HTMLEscapeString(text[last:sp.Start]))
		b.WriteString(hl.Open)
		b.WriteString(template.HTMLEscapeString(text[sp.Start:sp.End]))
		b.WriteString(hl.Close)
		last = sp.End
	}
	b.WriteString(template.HTMLEscapeString(text[last:]))
	return template.HTML(b.String())
}
