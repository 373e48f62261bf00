package model

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Viewer is the trusted actor context for one request. It is built only by
// the auth boundary (token middleware plus a Users lookup) and never
// deserialized from a request body.
type Viewer struct {
	ActorID string
	Role    Role
}

// Elevated viewers (admins and managers) bypass per-employee client filtering.
func (v Viewer) Elevated() bool {
	return v.Role == RoleAdmin || v.Role == RoleManager
}
