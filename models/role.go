package models

// Role is derived from which profile row exists for a user. It is
// resolved once at authentication time and carried through the request
// context, never stored on its own.
type Role string

const (
	RoleClient Role = "client"
	RoleDoctor Role = "doctor"
	RoleAdmin  Role = "admin"
)
