package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/joestump/promptsmith/internal/auth"
)

// authHandler checks a submitted password against the gate.
type authHandler struct {
	gate *auth.Gate
}

// Auth checks the submitted password.
// POST /auth
//
// @Summary      Check the app password
// @Description  Compares the submitted password with the server-held secret. Stateless: no session is issued.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      AuthRequest   true  "Password attempt"
// @Success      200   {object}  AuthResponse
// @Failure      400   {object}  AuthResponse
// @Failure      401   {object}  AuthResponse
// @Failure      405   {object}  AuthResponse
// @Failure      500   {object}  AuthResponse
// @Router       /auth [post]
func (h *authHandler) Auth(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeAuthResult(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	err := h.gate.Check(req.Password)
	switch {
	case err == nil:
		writeAuthResult(w, http.StatusOK, "")
	case errors.Is(err, auth.ErrNotConfigured):
		log.Printf("api: auth rejected: %v (set APP_PASSWORD)", err)
		writeAuthResult(w, http.StatusInternalServerError, auth.ConfigurationMessage)
	default:
		writeAuthResult(w, http.StatusUnauthorized, auth.MismatchMessage)
	}
}

func (h *authHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeAuthResult(w, http.StatusMethodNotAllowed, "Method not allowed")
}
