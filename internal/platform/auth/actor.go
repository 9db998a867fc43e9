package auth

import "context"

// Portal roles, ordered by increasing privilege.
const (
	RoleStaff       = "Staff"
	RoleAdmin       = "Admin"
	RoleSystemAdmin = "System Admin"
)

// Actor is the authenticated portal user attached to every request.
type Actor struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	ClinicID   string `json:"clinicId"`
	ClinicName string `json:"clinicName"`
}

// IsElevated reports whether the actor sees records beyond their own
// assignments. Staff users are scoped to tasks assigned to them.
func (a Actor) IsElevated() bool {
	return a.Role == RoleAdmin || a.Role == RoleSystemAdmin
}

type contextKey string

const actorKey contextKey = "actor"

// WithActor returns a context carrying the authenticated actor.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext returns the actor stored on the request context.
// The zero Actor is returned for unauthenticated requests.
func ActorFromContext(ctx context.Context) Actor {
	actor, _ := ctx.Value(actorKey).(Actor)
	return actor
}
