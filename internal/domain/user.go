package domain

type UserRole string

const (
	RoleSyndic   UserRole = "syndic"
	RoleResident UserRole = "resident"
)

// UserRef is the author block the backend embeds in notices, rules and occurrences.
type UserRef struct {
	ID        int64  `json:"id,omitempty"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Me is the payload of GET /auth/me.
type Me struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Role     UserRole `json:"role,omitempty"`
	IsLinked bool     `json:"isLinked"`
}
