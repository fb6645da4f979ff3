package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/0xfrait/auth-service/internal/auth"
	"github.com/0xfrait/auth-service/pkg/cookie"
)

// Request DTOs use pointer fields so a missing key is distinguishable from a
// present-but-empty value: missing or mistyped fields are a 422, while a
// syntactically present value that fails domain validation is a 400.

type signupRequest struct {
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Require2FA *bool   `json:"require2FA"`
}

type loginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type verifyTwoFactorRequest struct {
	Email          *string `json:"email"`
	LoginAttemptID *string `json:"loginAttemptId"`
	TwoFACode      *string `json:"2FACode"`
}

type verifyTokenRequest struct {
	Token *string `json:"token"`
}

type loginAttemptResponse struct {
	Message        string `json:"message"`
	LoginAttemptID string `json:"loginAttemptId"`
}

// decodeJSON decodes the body strictly: unknown fields, type mismatches,
// trailing data, and empty bodies all fail.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil || req.Email == nil || req.Password == nil || req.Require2FA == nil {
		h.writeMalformed(w)
		return
	}

	if err := h.svc.Signup(r.Context(), *req.Email, *req.Password, *req.Require2FA); err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, messageResponse{Message: "User created successfully!"})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil || req.Email == nil || req.Password == nil {
		h.writeMalformed(w)
		return
	}

	result, err := h.svc.Login(r.Context(), *req.Email, *req.Password)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	if result.TwoFARequired {
		h.writeJSON(w, http.StatusPartialContent, loginAttemptResponse{
			Message:        "2FA required",
			LoginAttemptID: result.LoginAttemptID,
		})
		return
	}

	h.setAuthCookie(w, result.SignedToken)
	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Login successful"})
}

func (h *Handler) handleVerifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	var req verifyTwoFactorRequest
	if err := decodeJSON(r, &req); err != nil || req.Email == nil || req.LoginAttemptID == nil || req.TwoFACode == nil {
		h.writeMalformed(w)
		return
	}

	token, err := h.svc.VerifyTwoFactor(r.Context(), *req.Email, *req.LoginAttemptID, *req.TwoFACode)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.setAuthCookie(w, token)
	h.writeJSON(w, http.StatusOK, messageResponse{Message: "2FA verified"})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	token, err := h.cookies.Get(r, auth.CookieName)
	if err != nil {
		// No cookie at all is a missing token, never an invalid one.
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing token"})
		return
	}

	if err := h.svc.Logout(r.Context(), token); err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.cookies.Delete(w, auth.CookieName)
	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Logout successful"})
}

func (h *Handler) handleVerifyToken(w http.ResponseWriter, r *http.Request) {
	var req verifyTokenRequest
	if err := decodeJSON(r, &req); err != nil || req.Token == nil {
		h.writeMalformed(w)
		return
	}

	if _, err := h.svc.VerifyToken(r.Context(), *req.Token); err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Token valid"})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	for _, probe := range h.probes {
		if err := probe(r.Context()); err != nil {
			h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
			return
		}
	}
	h.writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}

// setAuthCookie attaches the bearer token under the fixed cookie contract:
// name jwt, path /, HttpOnly, SameSite=Lax, expiring with the token.
func (h *Handler) setAuthCookie(w http.ResponseWriter, token string) {
	h.cookies.Set(w, auth.CookieName, token, cookie.WithMaxAge(int(auth.TokenTTL.Seconds())))
}
