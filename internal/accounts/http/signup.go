package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/procurehub/eproc/internal/accounts/service"
	"github.com/procurehub/eproc/pkg/api"
	"github.com/procurehub/eproc/pkg/httpx"
	"github.com/procurehub/eproc/pkg/slogx"
)

type SignupHandler struct {
	RegistryService *service.RegistryService
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates an account and returns it with a fresh access token.
//	@Description	Email and username are stored lowercase and must be unique.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		api.SignupRequest	true	"Registration payload"
//	@Success		201		{object}	api.Response		"status, message, data.user, data.token"
//	@Failure		400		{object}	api.Response		"Validation failure"
//	@Failure		409		{object}	api.Response		"Email or username already taken"
//	@Failure		500		{object}	api.Response		"Internal server error"
//	@Router			/api/auth/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req api.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, api.Error("Invalid request body"))
		return
	}

	res, err := h.RegistryService.Register(ctx, service.RegisterInput{
		Name:            req.Name,
		Username:        req.Username,
		Title:           req.Title,
		Department:      req.Department,
		Email:           req.Email,
		Role:            req.Role,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteJSON(w, http.StatusBadRequest,
				api.Error("Required fields: name, username, email, password, confirmPassword"))
		case errors.Is(err, service.ErrPasswordMismatch):
			httpx.WriteJSON(w, http.StatusBadRequest, api.Error("Passwords do not match"))
		case errors.Is(err, service.ErrPasswordTooShort):
			httpx.WriteJSON(w, http.StatusBadRequest,
				api.Error("Password must be at least 6 characters long"))
		case errors.Is(err, service.ErrAccountExists):
			httpx.WriteJSON(w, http.StatusConflict,
				api.Error("User with this email or username already exists"))
		default:
			log.Error("signup failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, api.Error("Registration failed"))
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, api.Success("User registered successfully", api.AuthData{
		User:  userView(res.Account),
		Token: res.Token,
	}))
}
