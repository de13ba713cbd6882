package domain

// Role determines what a user may do: normal users classify and report,
// admins review reports.
type Role string

const (
	RoleNormal Role = "normal"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleNormal || r == RoleAdmin
}

// GuestUsername is the well-known account unauthenticated submissions run as.
// It always exists after initialization.
const GuestUsername = "guest"

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	// SecretHash is the bcrypt hash of the user's secret. Never serialized.
	SecretHash string `json:"-"`
	Role       Role   `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) IsGuest() bool {
	return u.Username == GuestUsername
}
