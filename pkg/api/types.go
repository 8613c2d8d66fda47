// Package api holds the wire types shared by the HTTP handlers and any
// client code (including the test suites). Field names are part of the
// public contract; existing procurement clients depend on them.
package api

import (
	"encoding/json"
	"time"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	// Status is "success" or "error".
	Status string `json:"status"`

	// Message is a human-readable summary. Optional on success responses.
	Message string `json:"message,omitempty"`

	// Data carries the endpoint-specific payload on success.
	Data any `json:"data,omitempty"`
}

// Success builds a success envelope.
func Success(message string, data any) Response {
	return Response{Status: "success", Message: message, Data: data}
}

// Error builds an error envelope.
func Error(message string) Response {
	return Response{Status: "error", Message: message}
}

// SignupRequest is the registration payload.
type SignupRequest struct {
	Name            string `json:"name"`
	Username        string `json:"username"`
	Title           string `json:"title,omitempty"`
	Department      string `json:"department,omitempty"`
	Email           string `json:"email"`
	Role            string `json:"role,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SigninRequest is the login payload. The email field also accepts a
// username; both resolve through the same lookup.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OptionalString distinguishes a field that was absent from one that was
// explicitly supplied, including supplied as null or "". Set is only true
// when the key appeared in the JSON document.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON is only invoked for keys present in the document, which is
// what makes the presence tracking work.
func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// MarshalJSON round-trips the value; an unset field marshals as null.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// UpdateProfileRequest is the profile-update payload. A field is applied if
// and only if the caller supplied it; supplying null or "" clears it.
type UpdateProfileRequest struct {
	Name       string         `json:"name"`
	Title      OptionalString `json:"title"`
	Department OptionalString `json:"department"`
	Role       OptionalString `json:"role"`
}

// User is the account view returned to callers. It never carries the
// password hash.
type User struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Username   string     `json:"username"`
	Title      *string    `json:"title"`
	Department *string    `json:"department"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

// AuthData is the payload for signup and signin responses.
type AuthData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ProfileData is the payload for profile responses.
type ProfileData struct {
	User User `json:"user"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
