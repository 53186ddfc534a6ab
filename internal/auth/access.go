package auth

// Requirement is the role a route declares.
type Requirement string

const (
	RequireNone          Requirement = "none"
	RequireAuthenticated Requirement = "authenticated"
	RequireAdmin         Requirement = "admin"
)

// DenyReason tells the consuming view which denial message to render.
type DenyReason string

const (
	DenyNotAuthenticated DenyReason = "not_authenticated"
	DenyWrongRole        DenyReason = "wrong_role"
)

// Decision is advisory: views decide whether to redirect, render a denial
// message, or ignore it. This is not a trust boundary.
type Decision struct {
	Allow  bool
	Reason DenyReason
}

var allowed = Decision{Allow: true}

// Decide evaluates a route requirement against a session snapshot. Pure and
// side-effect free.
func Decide(req Requirement, snap Snapshot) Decision {
	switch req {
	case RequireAuthenticated:
		if !snap.Authenticated {
			return Decision{Reason: DenyNotAuthenticated}
		}
	case RequireAdmin:
		if !snap.Authenticated {
			return Decision{Reason: DenyNotAuthenticated}
		}
		if snap.User == nil || snap.User.Role != RoleAdmin {
			return Decision{Reason: DenyWrongRole}
		}
	}
	return allowed
}
