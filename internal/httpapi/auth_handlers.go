package httpapi

import (
	"net/http"
	"time"

	"crosspay.org/internal/audit"
	"crosspay.org/internal/auth"
)

// credentialsRequest is the shared body of register and login.
type credentialsRequest struct {
	Username      string `json:"username"`
	AccountNumber string `json:"account_number"`
	Password      string `json:"password"`
}

type registerResponse struct {
	Message  string       `json:"message"`
	Identity auth.Summary `json:"identity"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	Identity  auth.Summary `json:"identity"`
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	identity, err := a.authn.Register(r.Context(), req.Username, req.AccountNumber, req.Password)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.identity.registered", map[string]any{
		"identity_id": identity.ID,
		"username":    identity.Username,
		"role":        string(identity.Role),
	})

	writeJSON(w, http.StatusCreated, registerResponse{
		Message:  "registration successful",
		Identity: identity.Summary(),
	})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	token, expiresAt, identity, err := a.authn.Login(r.Context(), req.Username, req.AccountNumber, req.Password)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.login.succeeded", map[string]any{
		"identity_id": identity.ID,
		"username":    identity.Username,
		"expires_at":  expiresAt.Format(time.RFC3339),
	})

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Identity:  identity.Summary(),
	})
}
