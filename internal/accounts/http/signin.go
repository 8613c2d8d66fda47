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

type SigninHandler struct {
	RegistryService *service.RegistryService
}

// ServeHTTP godoc
//
//	@Summary		Sign in
//	@Description	Authenticates by email or username plus password and returns
//	@Description	the account with a fresh access token. Unknown identifiers
//	@Description	and wrong passwords produce the same response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		api.SigninRequest	true	"Login payload; email also accepts a username"
//	@Success		200		{object}	api.Response		"status, message, data.user, data.token"
//	@Failure		400		{object}	api.Response		"Missing identifier or password"
//	@Failure		401		{object}	api.Response		"Invalid credentials"
//	@Failure		500		{object}	api.Response		"Internal server error"
//	@Router			/api/auth/signin [post].
func (h *SigninHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req api.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, api.Error("Invalid request body"))
		return
	}

	res, err := h.RegistryService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteJSON(w, http.StatusBadRequest, api.Error("Email and password are required"))
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteJSON(w, http.StatusUnauthorized,
				api.Error("Invalid email/username or password"))
		default:
			log.Error("signin failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, api.Error("Login failed"))
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, api.Success("Login successful", api.AuthData{
		User:  userView(res.Account),
		Token: res.Token,
	}))
}
