package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/0xfrait/auth-service/internal/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			h.log.Error("response encoding failed", slog.Any("error", err))
		}
	}
}

// writeDomainError maps the auth error taxonomy onto status codes. The
// response body never carries the cause of an unexpected error; that goes to
// the log only.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid credentials"})
	case errors.Is(err, domain.ErrUserAlreadyExists):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: "User already exists"})
	case errors.Is(err, domain.ErrIncorrectCredentials):
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Incorrect credentials"})
	case errors.Is(err, domain.ErrMissingToken):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing token"})
	case errors.Is(err, domain.ErrInvalidToken):
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid token"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Unexpected error"})
	}
}

// writeMalformed rejects requests whose JSON shape is wrong before the
// orchestrator sees them. Distinct from domain validation (400).
func (h *Handler) writeMalformed(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "Malformed request"})
}
