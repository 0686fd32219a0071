package quiz

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

// HTTPHandler exposes the quiz endpoint.
type HTTPHandler struct {
	selector *Selector
	logger   zerolog.Logger
}

// NewHTTPHandler constructs a quiz HTTP handler.
func NewHTTPHandler(selector *Selector, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		selector: selector,
		logger:   logger.With().Str("component", "quiz_http").Logger(),
	}
}

// Register mounts the handler's routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/quizzes", h.HandleNext)
}

// HandleNext handles POST /api/v1/quizzes
func (h *HTTPHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	req, err := DecodeRequest(body)
	if err != nil {
		if errors.Is(err, ErrBadRequest) {
			httperrors.RespondBadRequest(w)
			return
		}
		httperrors.RespondUnprocessable(w)
		return
	}

	next, err := h.selector.Next(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrPoolExhausted) {
			httperrors.RespondNotFound(w, "No questions found, that match your criteria")
			return
		}
		h.logger.Error().
			Err(err).
			Str("request_id", logging.RequestID(r.Context())).
			Msg("quiz selection failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":  true,
		"question": next,
	})
}
