package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/attendly-app/attendly-lambda/internal/auth"
	"github.com/attendly-app/attendly-lambda/internal/config"
	"github.com/attendly-app/attendly-lambda/internal/user"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if _, err := auth.GetUserClaimsFromContext(r.Context()); err != nil {
		log.Warn("User not authenticated to create quiz")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for quiz creation")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.CreateQuiz(r.Context(), dto)
	if err != nil {
		if IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to create quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, quiz)
}

func (h *Handler) GetQuizzesByCourse(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	courseID := chi.URLParam(r, "courseId")
	quizzes, err := h.service.GetQuizzesByCourse(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, ErrInvalidID) {
			http.Error(w, "invalid course id", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to list quizzes by course")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

// GetQuiz branches on the caller's role: students get the take view with
// correctness stripped, professors get the full authoring view.
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID := chi.URLParam(r, "id")

	var payload interface{}
	if claims.Role == string(user.RoleStudent) {
		payload, err = h.service.GetQuizForTake(r.Context(), quizID)
	} else {
		payload, err = h.service.GetQuizByID(r.Context(), quizID)
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid quiz id", http.StatusBadRequest)
		case errors.Is(err, ErrQuizNotFound):
			http.Error(w, "quiz not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to fetch quiz")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, payload)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	if err := h.service.DeleteQuiz(r.Context(), quizID); err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid quiz id", http.StatusBadRequest)
		case errors.Is(err, ErrQuizNotFound):
			http.Error(w, "quiz not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to delete quiz")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz deleted successfully",
	})
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated to submit quiz")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto SubmitQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for quiz submission")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Answers == nil {
		http.Error(w, "answers are required", http.StatusBadRequest)
		return
	}

	studentID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID := chi.URLParam(r, "id")
	submission, err := h.service.SubmitQuiz(r.Context(), quizID, studentID, dto.Answers)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid quiz id", http.StatusBadRequest)
		case errors.Is(err, ErrQuizNotFound):
			http.Error(w, "quiz not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to submit quiz")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, submission)
}

func (h *Handler) GetQuizResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	results, err := h.service.GetQuizResults(r.Context(), quizID)
	if err != nil {
		if errors.Is(err, ErrInvalidID) {
			http.Error(w, "invalid quiz id", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to fetch quiz results")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, results)
}
