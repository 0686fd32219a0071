package question

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

// HTTPHandler exposes the category and question REST endpoints.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a question HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// Register mounts the handler's routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/categories", h.HandleCategories)
	mux.HandleFunc("/api/v1/categories/{id}/questions", h.HandleCategoryQuestions)
	mux.HandleFunc("/api/v1/questions", h.HandleQuestions)
	mux.HandleFunc("/api/v1/questions/{id}", h.HandleQuestion)
}

// HandleCategories handles GET /api/v1/categories
func (h *HTTPHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.logError(r, err, "list categories failed")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

// HandleQuestions handles GET and POST /api/v1/questions
func (h *HTTPHandler) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.createOrSearch(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

// HandleQuestion handles DELETE /api/v1/questions/{id}
func (h *HTTPHandler) HandleQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w, "")
		return
	}
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			httperrors.RespondNotFound(w, "Question not found.")
			return
		}
		h.logError(r, err, "delete question failed")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"deleted_question": id,
	})
}

// HandleCategoryQuestions handles GET /api/v1/categories/{id}/questions
func (h *HTTPHandler) HandleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w, "")
		return
	}
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	result, err := h.svc.ByCategory(r.Context(), id)
	if err != nil {
		h.logError(r, err, "list category questions failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": result.CurrentCategory,
	})
}

func (h *HTTPHandler) listQuestions(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r.URL.Query().Get("page"))

	result, err := h.svc.ListPage(r.Context(), page)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			httperrors.RespondNotFound(w, "")
			return
		}
		h.logError(r, err, "list questions failed")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": result.CurrentCategory,
		"categories":       result.Categories,
	})
}

func (h *HTTPHandler) createOrSearch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	req, err := DecodeQuestionsRequest(body)
	if err != nil {
		if errors.Is(err, ErrBadRequest) {
			httperrors.RespondBadRequest(w)
			return
		}
		httperrors.RespondUnprocessable(w)
		return
	}

	switch req.Kind {
	case KindSearch:
		h.search(w, r, req.SearchTerm)
	default:
		h.create(w, r, req.Create)
	}
}

func (h *HTTPHandler) search(w http.ResponseWriter, r *http.Request, term string) {
	result, err := h.svc.Search(r.Context(), term)
	if err != nil {
		h.logError(r, err, "search questions failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": nil,
	})
}

func (h *HTTPHandler) create(w http.ResponseWriter, r *http.Request, req CreateRequest) {
	if _, err := h.svc.Create(r.Context(), req); err != nil {
		h.logError(r, err, "create question failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Question saved!",
	})
}

// parsePage reads the page query parameter; anything that is not an integer means page 1.
func parsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

func (h *HTTPHandler) logError(r *http.Request, err error, msg string) {
	h.logger.Error().
		Err(err).
		Str("request_id", logging.RequestID(r.Context())).
		Str("path", r.URL.Path).
		Msg(msg)
}

func (h *HTTPHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
