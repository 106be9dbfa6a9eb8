package entity

// User cuenta de usuario tal como la expone el backend.
type User struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	RoleName  string `json:"roleName"`
}
