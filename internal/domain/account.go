package domain

type Account struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (a Account) RecordID() int64 { return a.ID }

const (
	RoleUser    = "USER"
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
)

func AccountRoles() []string {
	return []string{RoleUser, RoleAdmin, RoleManager}
}
