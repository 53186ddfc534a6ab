package auth

// Role is the client-visible authorization level. There are only two; role
// assignment is derived from the email address at registration, there is no
// invitation flow.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// AdminEmail is the single reserved address that maps to the admin role.
const AdminEmail = "admin@susanalopez.com"

// DetermineRole derives the role for an email address.
func DetermineRole(email string) Role {
	if email == AdminEmail {
		return RoleAdmin
	}
	return RoleClient
}

// User is a directory record. The email is the unique key, matched
// case-sensitively. Passwords are stored as bcrypt hashes only.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         Role   `json:"role"`
}

// Session is the current authenticated identity, as exposed to consumers.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// sessionRecord is the persisted session shape. IsDemo marks sessions opened
// through a reserved demo address so demo data can be re-attached on restart.
type sessionRecord struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	IsDemo bool   `json:"isDemo,omitempty"`
}
