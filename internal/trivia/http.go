package trivia

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandler exposes the trivia catalog and quiz endpoints.
type HTTPHandler struct {
	svc *Service
}

// NewHTTPHandler constructs a trivia HTTP handler.
func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Register mounts the trivia routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories", h.ListCategories)
	mux.HandleFunc("GET /categories/{id}/questions", h.QuestionsByCategory)
	mux.HandleFunc("GET /questions", h.ListQuestions)
	mux.HandleFunc("POST /questions", h.PostQuestions)
	mux.HandleFunc("DELETE /questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("POST /quizzes", h.NextQuizQuestion)
}

// ListCategories handles GET /categories
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": CategoryMap(categories),
	})
}

// ListQuestions handles GET /questions?page=N
func (h *HTTPHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       listing.Page.Questions,
		"totalQuestions":  listing.Page.Total,
		"categories":      CategoryMap(listing.Categories),
		"currentCategory": nil,
	})
}

// QuestionsByCategory handles GET /categories/{id}/questions
func (h *HTTPHandler) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondBadRequest(w, "category id must be an integer")
		return
	}

	result, err := h.svc.QuestionsByCategory(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"totalQuestions":  len(result.Questions),
		"currentCategory": result.Category.Type,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondBadRequest(w, "question id must be an integer")
		return
	}

	deleted, err := h.svc.DeleteQuestion(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":           true,
		"deletedQuestionId": deleted,
	})
}

// PostQuestions handles POST /questions, which either searches or creates
// depending on the request variant.
func (h *HTTPHandler) PostQuestions(w http.ResponseWriter, r *http.Request) {
	var req QuestionsPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			// An empty body is a create request with every field missing.
			req = QuestionsPostRequest{Create: &CreateQuestionRequest{}}
		case errors.Is(err, ErrInvalidQuestion):
			h.respondError(w, r, err)
			return
		default:
			httperrors.RespondBadRequest(w, "Invalid JSON payload")
			return
		}
	}

	switch {
	case req.Search != nil:
		h.searchQuestions(w, r, *req.Search)
	case req.Create != nil:
		h.createQuestion(w, r, *req.Create)
	}
}

func (h *HTTPHandler) searchQuestions(w http.ResponseWriter, r *http.Request, req SearchRequest) {
	matches, err := h.svc.SearchQuestions(r.Context(), req.Term)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"questions":      matches,
		"totalQuestions": len(matches),
	})
}

func (h *HTTPHandler) createQuestion(w http.ResponseWriter, r *http.Request, req CreateQuestionRequest) {
	id, err := h.svc.CreateQuestion(r.Context(), req.NewQuestion())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"questionId": id,
	})
}

// NextQuizQuestion handles POST /quizzes
func (h *HTTPHandler) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.RespondBadRequest(w, err.Error())
		return
	}

	q, err := h.svc.NextQuizQuestion(r.Context(), *req.QuizCategory, req.PreviousQuestions)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": q,
	})
}

// respondError maps service errors onto status codes. Invalid new questions
// keep answering 500, which existing clients expect.
func (h *HTTPHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context())

	switch {
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w, httperrors.MsgNotFound)
	case errors.Is(err, ErrInvalidPage):
		httperrors.RespondBadRequest(w, err.Error())
	case errors.Is(err, ErrInvalidQuestion):
		logger.Warn().Err(err).Msg("rejected question")
		httperrors.RespondInternalError(w, err.Error())
	default:
		logger.Error().Err(err).Msg("trivia request failed")
		httperrors.RespondInternalError(w, httperrors.MsgInternalError)
	}
}

// pageParam reads ?page=, defaulting to 1 when absent or not a number.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
