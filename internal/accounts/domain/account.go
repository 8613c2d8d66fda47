package domain

import "time"

// Account is a stored user identity with credentials and profile fields.
// Email and Username are persisted lowercase; callers normalize before the
// store ever sees them.
type Account struct {
	ID           int64
	Name         string
	Username     string
	Title        *string // nullable
	Department   *string // nullable
	Email        string
	Role         string
	PasswordHash string // bcrypt encoded, never serialized to callers
	CreatedAt    time.Time
	LastLogin    *time.Time // nullable, set on each successful login
}

// Patch represents one optional column in a partial update. A field is
// written if and only if Set is true; Value nil then writes NULL. This
// keeps "absent" distinct from "explicitly cleared".
type Patch struct {
	Set   bool
	Value *string
}

// PatchOf builds a set Patch carrying the given value.
func PatchOf(v string) Patch {
	return Patch{Set: true, Value: &v}
}

// ProfileUpdate captures a partial profile mutation. Name always applies;
// the Patch fields only when Set.
type ProfileUpdate struct {
	Name       string
	Title      Patch
	Department Patch
	Role       Patch
}
