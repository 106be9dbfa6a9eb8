package dto

// RegisterUserRequest alta de cuenta desde el panel de administración.
// Password solo existe en el formulario; nunca se guarda en esta app.
type RegisterUserRequest struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Email     string `form:"email"`
	RoleName  string `form:"roleName"`
	Password  string `form:"password"`
}

// LoginRequest formulario de inicio de sesión.
type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}
