package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/curadolabs/labelgen/pkg/errors"
	"github.com/curadolabs/labelgen/pkg/label"
	"github.com/curadolabs/labelgen/pkg/pipeline"
	"github.com/curadolabs/labelgen/pkg/render"
)

// generateRequest is the POST /api/labels payload: a label request plus
// the formats to render.
type generateRequest struct {
	label.Request
	Formats []string `json:"formats,omitempty"`
}

// generateResponse is returned on successful generation. Failed formats
// are reported without failing the request as long as one format survived.
type generateResponse struct {
	ID     string            `json:"id"`
	URLs   map[string]string `json:"urls"`
	Embed  string            `json:"embed,omitempty"`
	Failed map[string]string `json:"failed_formats,omitempty"`
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field,omitempty"`
	} `json:"error"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidRequest, err, "malformed JSON body"))
		return
	}

	stored, err := s.runner.GenerateAndStore(r.Context(), pipeline.Options{
		Request: &req.Request,
		Formats: req.Formats,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := generateResponse{
		ID:    stored.ID,
		URLs:  stored.URLs,
		Embed: stored.Embed,
	}
	if len(stored.Result.Errors) > 0 {
		resp.Failed = make(map[string]string, len(stored.Result.Errors))
		for format, ferr := range stored.Result.Errors {
			resp.Failed[format] = errors.UserMessage(ferr)
		}
	}
	s.writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	rec, err := s.runner.Store.Get(r.Context(), chi.URLParam(r, "labelID"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	formats := make([]string, 0, len(rec.Artifacts))
	for f := range rec.Artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"id":           rec.ID,
		"recipe_title": rec.Model.RecipeTitle,
		"label_type":   rec.Model.LabelType,
		"formats":      formats,
		"created_at":   rec.CreatedAt,
	})
}

func (s *Server) handleEmbed(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, render.FormatHTML, "")
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if _, ok := render.ContentTypes[format]; !ok {
		s.writeError(w, errors.NewField(errors.ErrCodeInvalidFormat, "format",
			"unknown format %q", format))
		return
	}
	s.serveArtifact(w, r, format, "attachment")
}

func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, format, disposition string) {
	id := chi.URLParam(r, "labelID")
	rec, err := s.runner.Store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	data, ok := rec.Artifacts[format]
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeNotFound,
			"label %q has no %s artifact", id, format))
		return
	}

	w.Header().Set("Content-Type", render.ContentTypes[format])
	if disposition != "" {
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`%s; filename="label-%s.%s"`, disposition, id, format))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsValidation(err):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrCodeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errors.ErrCodeRenderFailed), errors.Is(err, errors.ErrCodeTimeout):
		status = http.StatusBadGateway
	}

	var body errorBody
	body.Error.Code = string(errors.GetCode(err))
	if body.Error.Code == "" {
		body.Error.Code = string(errors.ErrCodeInternal)
	}
	body.Error.Message = errors.UserMessage(err)
	body.Error.Field = errors.Field(err)

	if status >= 500 {
		s.logger.Error("request failed", "status", status, "error", err)
	}
	s.writeJSON(w, status, body)
}
