package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/swaggo/swag"

	_ "github.com/custodia-labs/textscan/docs"
	"github.com/custodia-labs/textscan/internal/core/domain"
)

// multipartMemory is the in-memory threshold for parsed multipart forms.
const multipartMemory = 8 << 20

// uploadField is the multipart field carrying uploaded files.
const uploadField = "files"

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// KeywordsResponse lists the fixed keyword set
// @Description Fixed keyword set
type KeywordsResponse struct {
	Keywords []string `json:"keywords" example:"resume,job,experience"`
}

// DocumentListResponse lists stored document names
// @Description Stored document names in enumeration order
type DocumentListResponse struct {
	Documents []string `json:"documents" example:"cv.txt,notes.txt"`
}

// UploadResponse carries the analyses of an upload request
// @Description Analysis of each stored file
type UploadResponse struct {
	Results []*domain.AnalysisResult `json:"results"`
}

// DeleteResponse reports whether a document was removed
// @Description Delete outcome, "deleted" or "absent"
type DeleteResponse struct {
	Status string `json:"status" example:"deleted"`
}

// searchRequest is the search request body
type searchRequest struct {
	Query   string `json:"query" example:"python"`
	Keyword string `json:"keyword" example:"job"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns the readiness status of the API (checks the document store)
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "Document store unavailable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			s.logger.Warn("readiness check failed", "error", err)
			writeError(w, http.StatusServiceUnavailable, "document store unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Keyword endpoints

// handleListKeywords godoc
// @Summary      List keywords
// @Description  Returns the fixed keyword set in display order
// @Tags         Keywords
// @Produce      json
// @Success      200  {object}  KeywordsResponse
// @Router       /keywords [get]
func (s *Server) handleListKeywords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, KeywordsResponse{Keywords: s.scanner.Keywords().List()})
}

// Document endpoints

// handleListDocuments godoc
// @Summary      List documents
// @Description  Returns the names of all stored documents
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  DocumentListResponse
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /documents [get]
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	names, err := s.docService.List(r.Context())
	if err != nil {
		s.logger.Error("list documents failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, DocumentListResponse{Documents: names})
}

// handleUploadDocuments godoc
// @Summary      Upload documents
// @Description  Stores every .txt file of the multipart "files" field and returns its analysis. Other files are skipped.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "Text files"
// @Success      200    {object}  UploadResponse
// @Failure      400    {object}  ErrorResponse  "Invalid multipart body"
// @Failure      413    {object}  ErrorResponse  "Upload too large"
// @Failure      500    {object}  ErrorResponse  "Internal server error"
// @Router       /documents [post]
func (s *Server) handleUploadDocuments(w http.ResponseWriter, r *http.Request) {
	files, err := s.readUploads(w, r)
	if err != nil {
		s.writeUploadError(w, err)
		return
	}

	results, err := s.docService.Upload(r.Context(), files)
	if err != nil {
		s.logger.Error("upload failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store documents")
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{Results: results})
}

// handleGetDocument godoc
// @Summary      Download document
// @Description  Returns the exact stored bytes of a document
// @Tags         Documents
// @Produce      octet-stream
// @Param        name  path      string  true  "Document name"
// @Success      200   {file}    file
// @Failure      404   {object}  ErrorResponse  "Document not found"
// @Failure      500   {object}  ErrorResponse  "Internal server error"
// @Router       /documents/{name} [get]
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	s.serveDocument(w, r, false)
}

// handleAnalyzeDocument godoc
// @Summary      Analyze document
// @Description  Returns word count and found keywords of a stored document
// @Tags         Documents
// @Produce      json
// @Param        name  path      string  true  "Document name"
// @Success      200   {object}  domain.AnalysisResult
// @Failure      404   {object}  ErrorResponse  "Document not found"
// @Failure      500   {object}  ErrorResponse  "Internal server error"
// @Router       /documents/{name}/analysis [get]
func (s *Server) handleAnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	result, err := s.docService.Analyze(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		s.logger.Error("analyze document failed", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to analyze document")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleDeleteDocument godoc
// @Summary      Delete document
// @Description  Removes a document. Deleting an absent document succeeds with status "absent".
// @Tags         Documents
// @Produce      json
// @Param        name  path      string  true  "Document name"
// @Success      200   {object}  DeleteResponse
// @Failure      500   {object}  ErrorResponse  "Internal server error"
// @Router       /documents/{name} [delete]
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	deleted, err := s.docService.Delete(r.Context(), name)
	if err != nil {
		s.logger.Error("delete document failed", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete document")
		return
	}

	status := "absent"
	if deleted {
		status = "deleted"
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Status: status})
}

// Search endpoints

// handleSearch godoc
// @Summary      Search documents
// @Description  Case-insensitive literal search across every stored document. Free text wins over a keyword selection; an empty query returns no hits.
// @Tags         Search
// @Accept       json
// @Produce      json
// @Param        request  body      searchRequest  true  "Search query"
// @Success      200      {object}  domain.SearchResult
// @Failure      400      {object}  ErrorResponse  "Invalid request or unknown keyword"
// @Failure      500      {object}  ErrorResponse  "Search failed"
// @Router       /search [post]
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	query, err := s.scanner.ResolveQuery(req.Query, req.Keyword)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.scanner.SearchCollection(r.Context(), query)
	if err != nil {
		s.logger.Error("search failed", "query", query, "error", err)
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleSwaggerDoc serves the registered OpenAPI document
func (s *Server) handleSwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "api docs unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, doc)
}

// serveDocument writes the stored bytes of the named document. When
// attachment is set the response asks the browser to save the file.
func (s *Server) serveDocument(w http.ResponseWriter, r *http.Request, attachment bool) {
	name := r.PathValue("name")

	data, err := s.docService.Download(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		s.logger.Error("download document failed", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read document")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if attachment {
		w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(name))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// readUploads parses a multipart body and collects the files of the
// upload field in submission order.
func (s *Server) readUploads(w http.ResponseWriter, r *http.Request) ([]domain.UploadFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, err
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	headers := r.MultipartForm.File[uploadField]
	files := make([]domain.UploadFile, 0, len(headers))
	for _, fh := range headers {
		data, err := readPart(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, domain.UploadFile{Name: fh.Filename, Data: data})
	}
	return files, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

func (s *Server) writeUploadError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
		return
	}
	writeError(w, http.StatusBadRequest, "invalid multipart body")
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
