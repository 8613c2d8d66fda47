package http

import (
	"github.com/procurehub/eproc/internal/accounts/domain"
	"github.com/procurehub/eproc/pkg/api"
)

// userView renders an account for signup, signin and update responses.
// Those payloads never include lastLogin.
func userView(a domain.Account) api.User {
	return api.User{
		ID:         a.ID,
		Name:       a.Name,
		Username:   a.Username,
		Title:      a.Title,
		Department: a.Department,
		Email:      a.Email,
		Role:       a.Role,
		CreatedAt:  a.CreatedAt,
	}
}

// profileView renders an account for the profile read, which is the one
// place lastLogin is exposed.
func profileView(a domain.Account) api.User {
	u := userView(a)
	u.LastLogin = a.LastLogin
	return u
}
