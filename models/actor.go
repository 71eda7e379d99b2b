package models

// ActorRole tags who is acting on a request. Handlers resolve it from the
// auth middleware and pass it down explicitly; services never read identity
// from ambient state.
type ActorRole string

const (
	ActorOwner    ActorRole = "owner"
	ActorCustomer ActorRole = "user"
	ActorAdmin    ActorRole = "admin"
)

// Actor is the request-scoped identity handed to service calls that need
// display-name or permission logic.
type Actor struct {
	Role ActorRole `json:"role"`
	ID   string    `json:"id"`
}

// IsOwner reports whether the actor is a spa owner.
func (a Actor) IsOwner() bool { return a.Role == ActorOwner }

// IsAdmin reports whether the actor has admin privileges.
func (a Actor) IsAdmin() bool { return a.Role == ActorAdmin }
