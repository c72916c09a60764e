package entities

// DirectoryEntry is a user as seen through the authentication service's
// paginated listing. It is derived on demand, never stored.

type DirectoryEntry struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role,omitempty"`
}
