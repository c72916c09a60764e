package entities

// Role is the custom role claim carried by an auth record.

type Role string

const (
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// IsStaff reports whether the role may act on the factory side of the
// portal. Absent or unknown roles are treated as non-staff.
func (r Role) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

// Actor is the resolved identity of the caller of a mutating operation.
// It is threaded explicitly from the transport layer into the usecases
// instead of being read from an ambient per-request global.

type Actor struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// ClientProfile is the denormalized profile document kept alongside the auth
// record. Email lookups fall back to it when the auth record cannot be
// resolved.
//
// Storage model (DynamoDB):
//   - PK: id (auth user id)

type ClientProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
