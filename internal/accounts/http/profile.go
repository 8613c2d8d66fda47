package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/procurehub/eproc/internal/accounts/domain"
	"github.com/procurehub/eproc/internal/accounts/service"
	"github.com/procurehub/eproc/pkg/api"
	"github.com/procurehub/eproc/pkg/httpx"
	"github.com/procurehub/eproc/pkg/slogx"
)

type ProfileHandler struct {
	RegistryService *service.RegistryService
}

// HandleGet godoc
//
//	@Summary		Get the authenticated profile
//	@Description	Returns the account identified by the access token, including
//	@Description	lastLogin.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	api.Response	"status, data.user"
//	@Failure		401	{object}	api.Response	"Missing or invalid token"
//	@Failure		404	{object}	api.Response	"Account no longer exists"
//	@Failure		500	{object}	api.Response	"Internal server error"
//	@Router			/api/auth/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, api.Error("Access denied. Invalid token."))
		return
	}

	account, err := h.RegistryService.GetProfile(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, api.Error("User not found"))
			return
		}
		log.Error("profile load failed", "account_id", claims.UserID, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, api.Error("Failed to get profile"))
		return
	}

	httpx.WriteJSON(w, http.StatusOK, api.Success("", api.ProfileData{
		User: profileView(account),
	}))
}

// HandlePut godoc
//
//	@Summary		Update the authenticated profile
//	@Description	Updates the account's name and, when supplied, title,
//	@Description	department and role. Omitted fields keep their stored value;
//	@Description	fields sent as null or "" are cleared.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		api.UpdateProfileRequest	true	"Profile update payload"
//	@Success		200		{object}	api.Response				"status, message, data.user"
//	@Failure		400		{object}	api.Response				"Name missing"
//	@Failure		401		{object}	api.Response				"Missing or invalid token"
//	@Failure		404		{object}	api.Response				"Account no longer exists"
//	@Failure		500		{object}	api.Response				"Internal server error"
//	@Router			/api/auth/profile [put].
func (h *ProfileHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, api.Error("Access denied. Invalid token."))
		return
	}

	var req api.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, api.Error("Invalid request body"))
		return
	}

	account, err := h.RegistryService.UpdateProfile(ctx, claims.UserID, domain.ProfileUpdate{
		Name:       req.Name,
		Title:      patchOf(req.Title),
		Department: patchOf(req.Department),
		Role:       patchOf(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteJSON(w, http.StatusBadRequest, api.Error("Name is required"))
		case errors.Is(err, service.ErrNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, api.Error("User not found"))
		default:
			log.Error("profile update failed", "account_id", claims.UserID, "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, api.Error("Failed to update profile"))
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, api.Success("Profile updated successfully", api.ProfileData{
		User: userView(account),
	}))
}

func patchOf(o api.OptionalString) domain.Patch {
	return domain.Patch{Set: o.Set, Value: o.Value}
}
